package cli

import (
	"fmt"
	"time"

	"github.com/brightofhouse/site/internal/asset"
	"github.com/brightofhouse/site/internal/db"
	"github.com/brightofhouse/site/internal/metrics"
	"github.com/brightofhouse/site/internal/storage"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete media objects that no record references",
	Long: `Compare the objects under each media prefix with the URLs stored in the
database and delete the unreferenced ones. These are left behind when an
upload succeeds but the record write after it fails.

Objects newer than --min-age are never touched, so a sweep can run while the
site is taking uploads.

  sitectl sweep --dry-run        # Only list what would be deleted
  sitectl sweep --min-age 24h`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

var (
	sweepDryRun bool
	sweepMinAge time.Duration
)

func init() {
	sweepCmd.Flags().BoolVar(&sweepDryRun, "dry-run", false, "List orphaned objects without deleting them")
	sweepCmd.Flags().DurationVar(&sweepMinAge, "min-age", asset.DefaultSweepMinAge, "Skip objects modified more recently than this")
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	store, err := storage.Open(ctx, cfg.StorageBackend, cfg.Storage())
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}

	report, err := asset.Sweep(ctx, metrics.NewInstrumentedStorage(store), storage.NewKeys(cfg.PublicBaseURL()), db.New(pool), asset.SweepOptions{
		DryRun: sweepDryRun,
		MinAge: sweepMinAge,
	})
	if err != nil {
		return err
	}

	printSweep(report, sweepDryRun)
	return printer.Result(report)
}

func printSweep(report *asset.SweepReport, dryRun bool) {
	for _, key := range report.Orphans {
		printer.Orphan("%s", key)
	}

	printer.Header("Sweep summary")
	printer.KeyValue("referenced", report.Referenced)
	printer.KeyValue("too recent", report.Young)
	printer.KeyValue("orphaned", len(report.Orphans))
	if report.Rebased > 0 {
		printer.KeyValue("under another host", report.Rebased)
	}
	if dryRun {
		printer.Info("dry run, nothing deleted")
		return
	}
	printer.KeyValue("deleted", report.Deleted)
	if report.Failed > 0 {
		printer.Error("%d object(s) could not be deleted", report.Failed)
		return
	}
	printer.Success("sweep complete")
}
