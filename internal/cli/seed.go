package cli

import (
	"fmt"

	"github.com/brightofhouse/site/internal/db"
	"github.com/brightofhouse/site/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load initial site content from a YAML file",
	Long: `Load hero, company, service areas, menus and the service catalog from a
YAML file. Sections that already hold content are skipped unless --force is
given, in which case they are replaced. The whole file is applied in one
transaction.

  sitectl seed --file content.yaml
  sitectl seed --file content.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

var (
	seedFile  string
	seedForce bool
)

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed file (YAML)")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Replace sections that already hold content")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	content, err := seed.LoadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", seedFile, err)
	}

	ctx := cmd.Context()
	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	results, err := seed.Apply(ctx, db.New(tx), content, seedForce)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	for _, r := range results {
		if r.Skipped {
			printer.Skip("%s: already has content (use --force to replace)", r.Section)
			continue
		}
		printer.Success("%s: %d row(s)", r.Section, r.Rows)
	}
	return printer.Result(results)
}
