package db

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	embeddedmigrations "github.com/terraincognita07/aurora/migrations"
	"gorm.io/gorm"
)

const (
	sqliteMigrationsDir   = "sqlite"
	postgresMigrationsDir = "postgres"
)

func newMigrationProvider(database *gorm.DB, dialect goose.Dialect, dir string) (*goose.Provider, error) {
	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("resolve sql db: %w", err)
	}

	migrationFiles, err := fs.Sub(embeddedmigrations.Files, dir)
	if err != nil {
		return nil, fmt.Errorf("open embedded %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, sqlDB, migrationFiles)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return provider, nil
}

func applyEmbeddedMigrations(database *gorm.DB, dialect goose.Dialect, dir string) error {
	provider, err := newMigrationProvider(database, dialect, dir)
	if err != nil {
		return err
	}

	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("run %s migrations: %w", dir, err)
	}
	return nil
}
