package database

import (
	"fmt"
	"log/slog"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
	logger *slog.Logger
}

func Open(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverSQLite {
		return sqlite.Open(cfg.DSN())
	}
	return postgres.Open(cfg.DSN())
}

func New(cfg *config.DatabaseConfig, log *slog.Logger) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(Open(cfg), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// sqlite serialises writers; one connection avoids "database is locked".
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
		logger: log,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.BlacklistedToken{},
		&models.AuditLog{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Initialize connects and brings the schema up to date. Postgres uses the SQL
// migrations when AUTO_MIGRATE is on and falls back to AutoMigrate if they
// fail; sqlite always uses AutoMigrate.
func Initialize(cfg *config.Config, log *slog.Logger) (*DB, error) {
	db, err := New(&cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == config.DriverSQLite || !cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to auto-migrate: %w", err)
		}
		log.Info("database initialized", "driver", cfg.Database.Driver, "migrations", "gorm")
		return db, nil
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := NewMigrationRunner(sqlDB, &cfg.Database, log)
	if err := runner.Run(); err != nil {
		log.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	log.Info("database initialized", "driver", cfg.Database.Driver, "migrations", "sql")
	return db, nil
}
