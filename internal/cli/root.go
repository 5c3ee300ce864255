// Package cli implements sitectl, the operator tool for migrations, content
// seeding and storage reconciliation.
package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/brightofhouse/site/internal/config"
	"github.com/brightofhouse/site/internal/db"
	"github.com/brightofhouse/site/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

var (
	jsonOutput bool
	quietMode  bool
	cfg        *config.Config
	printer    *Printer
)

var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "brightofhouse site operations",
	Long: `sitectl runs maintenance tasks against the site's database and media storage.

It reads the same environment (and .env file) as the API server.

  sitectl migrate up             # Apply pending migrations
  sitectl seed --file content.yaml
  sitectl sweep --dry-run        # List unreferenced media objects
  sitectl hash-password          # Print a bcrypt hash for ADMIN_PASS`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		printer = NewPrinter(
			WithJSON(jsonOutput),
			WithQuiet(quietMode),
			WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if !jsonOutput {
			// Human output goes through the printer; keep JSON log lines for problems.
			level = "warn"
		}
		logger.InitWithOptions(logger.Options{Level: level, Output: cmd.ErrOrStderr()})
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON (for scripting)")
	rootCmd.PersistentFlags().BoolVar(&quietMode, "quiet", false, "Suppress non-error output")

	rootCmd.SetVersionTemplate("sitectl version {{.Version}}\n")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

// connect opens the database named by DATABASE_URL.
func connect(ctx context.Context) (*pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return db.Open(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
}
