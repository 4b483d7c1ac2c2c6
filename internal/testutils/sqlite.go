package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"majel-backend/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// OpenTestDB opens a fresh in-memory SQLite database with the full schema
// migrated. Each call gets its own database, so tests never see each
// other's rows. The shared-cache URI keeps the database alive across the
// connections in GORM's pool.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := database.Initialize("sqlite", dsn, &database.Options{
		LogLevel:     logger.Silent,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
