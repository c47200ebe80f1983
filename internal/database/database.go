package database

import (
	"fmt"
	"log"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	dialect string
	config  *config.DatabaseConfig
}

// New opens the SQL database selected by the storage backend, sqlite or postgres.
func New(storage *config.StorageConfig, cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch storage.Backend {
	case config.StorageBackendPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.StorageBackendSQLite:
		dialector = sqlite.Open(storage.SQLitePath)
	default:
		return nil, fmt.Errorf("storage backend %q is not a SQL database", storage.Backend)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if storage.Backend == config.StorageBackendSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:      db,
		dialect: storage.Backend,
		config:  cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.LedgerState{},
	)
}

// Dialect returns the storage backend name the connection was opened for
func (db *DB) Dialect() string {
	return db.dialect
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

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Storage, &cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	applied, err := RunMigrationsIfEnabled(sqlDB, db.dialect)
	if err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
	}

	if !applied {
		log.Println("Falling back to GORM AutoMigrate...")
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	log.Printf("Database initialized successfully (dialect: %s)", db.dialect)

	return db, nil
}
