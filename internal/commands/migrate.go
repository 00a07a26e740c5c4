package commands

import (
	"errors"
	"fmt"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/logging"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations and seeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, closeDB, err := openMigrationRunner()
			if err != nil {
				return err
			}
			defer closeDB()
			return runner.Run()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, closeDB, err := openMigrationRunner()
			if err != nil {
				return err
			}
			defer closeDB()
			return runner.Down()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, closeDB, err := openMigrationRunner()
			if err != nil {
				return err
			}
			defer closeDB()

			version, dirty, err := runner.Status()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	})

	return cmd
}

func openMigrationRunner() (*database.MigrationRunner, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return nil, nil, fmt.Errorf("migrations need DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	logger := logging.Discard()
	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return database.NewMigrationRunner(sqlDB, &cfg.Database, logger), func() { _ = db.Close() }, nil
}
