package cli

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/danuwp/leaserev/migrations"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate {up|down|status}",
	Short:     "Apply database schema migrations",
	Long:      `Run the embedded schema migrations against the configured database.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			return err
		}

		switch args[0] {
		case "up":
			return goose.Up(db, ".")
		case "down":
			return goose.Down(db, ".")
		case "status":
			return goose.Status(db, ".")
		default:
			return fmt.Errorf("unknown migrate action %q", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
