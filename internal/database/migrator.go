package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finance-dashboard/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies the SQL migrations in migrationsPath and, when
// enabled, the seed files in seedsPath.
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seed           bool
	logger         *slog.Logger

	maxRetries    int
	retryInterval time.Duration
}

func NewMigrationRunner(db *sql.DB, cfg *config.DatabaseConfig, logger *slog.Logger) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: cfg.MigrationsPath,
		seedsPath:      cfg.SeedsPath,
		seed:           cfg.SeedDatabase,
		logger:         logger,
		maxRetries:     30,
		retryInterval:  2 * time.Second,
	}
}

// Run waits for the database, migrates up and loads seeds.
func (mr *MigrationRunner) Run() error {
	if err := mr.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := mr.Up(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := mr.LoadSeeds(); err != nil {
		mr.logger.Warn("seed data loading failed", "error", err)
	}

	return nil
}

func (mr *MigrationRunner) WaitForDatabase() error {
	for i := 0; i < mr.maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			return nil
		}

		mr.logger.Info("database not ready", "attempt", i+1, "max_attempts", mr.maxRetries, "error", err)
		time.Sleep(mr.retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", mr.maxRetries)
}

// Up applies all pending migrations. A missing directory is not an error.
func (mr *MigrationRunner) Up() error {
	m, err := mr.instance()
	if errors.Is(err, ErrMigrationsNotFound) {
		mr.logger.Info("migrations directory not found, skipping", "path", mr.migrationsPath)
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.Warn("database is dirty, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.logger.Info("no new migrations to apply", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.logger.Info("applied migrations", "from", version, "to", newVersion)
	return nil
}

// Down rolls back one migration.
func (mr *MigrationRunner) Down() error {
	m, err := mr.instance()
	if err != nil {
		return err
	}
	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

func (mr *MigrationRunner) Status() (version uint, dirty bool, err error) {
	m, err := mr.instance()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// LoadSeeds executes each *.sql file in seedsPath in name order. A failing
// file is logged and skipped.
func (mr *MigrationRunner) LoadSeeds() error {
	if !mr.seed {
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		mr.logger.Info("seeds directory not found, skipping", "path", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			mr.logger.Warn("failed to execute seed file", "file", filepath.Base(file), "error", err)
			continue
		}
		mr.logger.Info("executed seed file", "file", filepath.Base(file))
	}

	return nil
}

func (mr *MigrationRunner) instance() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, ErrMigrationsNotFound
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}
