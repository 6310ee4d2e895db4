// Package testutil provides shared helpers for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/camden-git/pvtheatresbackend/database"
)

// NewDB opens a migrated sqlite database in a temporary directory that is
// removed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.InitGormDB(database.Options{
		SQLitePath: filepath.Join(t.TempDir(), "archive.db"),
		LogLevel:   logger.Silent,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := database.AutoMigrateModels(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// MustCreate inserts each record or fails the test.
func MustCreate(t testing.TB, db *gorm.DB, records ...interface{}) {
	t.Helper()
	for _, record := range records {
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("create %T: %v", record, err)
		}
	}
}

// Ref returns a pointer to id, for nullable references.
func Ref(id uint) *uint {
	return &id
}
