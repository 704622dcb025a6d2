package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/aurora/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "aurora-test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestProfile(t *testing.T, database *gorm.DB, email string, xp int) models.Profile {
	t.Helper()

	profile := models.Profile{
		Email:        email,
		PasswordHash: "hash",
		Level:        models.DefaultLevel,
		XP:           xp,
	}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return profile
}

func testDueDate(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
