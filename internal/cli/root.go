// Package cli wires the cobra command tree. Each command loads config,
// opens the store it needs, runs, and prints a plain-text result;
// anything reusable lives in the internal packages the commands call.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danuwp/leaserev/internal/config"
	"github.com/danuwp/leaserev/internal/logging"
	"github.com/danuwp/leaserev/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "leaserev",
	Short: "Import, query, and export lease revenue records",
	Long: `leaserev tracks revenue for leased retail units.

It imports tenant billing sheets (CSV, Excel) with user-declared column
mappings, normalizes and upserts them into PostgreSQL, and exposes the
stored records for querying, manual maintenance, and spreadsheet export.`,
	Example: `
  # Apply database migrations
  leaserev migrate up

  # Inspect a file's headers before importing
  leaserev headers -f january.csv

  # Import with an explicit column mapping
  leaserev import -f january.csv -m "Unique ID=unique_id" -m "Customer=customer_name"

  # Import with a mapping file
  leaserev import -f january.xlsx --map-file mapping.json

  # List unpaid records for one mall
  leaserev list --mall "Central Park" --status unpaid

  # Export everything to a workbook
  leaserev export -o revenue.xlsx
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; the environment may carry everything.
		_ = godotenv.Load()
		logging.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig is the shared config entry point for commands that need
// more than the logging env vars.
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// openStore loads config and connects. The caller closes the store.
func openStore(ctx context.Context) (*store.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	return st, cfg, nil
}
