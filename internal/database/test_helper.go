package database

import (
	"testing"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the ledger schema applied.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection would otherwise see its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB:      db,
		dialect: config.StorageBackendSQLite,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM ledger_state").Error; err != nil {
		t.Logf("failed to cleanup table ledger_state: %v", err)
	}
}

// SeedState writes a raw value for key, bypassing the repositories.
func SeedState(t *testing.T, db *DB, key, value string) {
	t.Helper()

	if err := db.Create(&models.LedgerState{Key: key, Value: value}).Error; err != nil {
		t.Fatalf("failed to seed ledger state %q: %v", key, err)
	}
}
