package main

import (
	"fmt"

	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Globals holds the flags shared by every command.
type Globals struct {
	DBDriver    string `name:"db-driver" env:"DB_DRIVER" default:"sqlite" enum:"sqlite,postgres" help:"Database driver (sqlite|postgres)."`
	DBPath      string `name:"db-path" env:"DB_PATH" default:"data/aurora.db" help:"SQLite database file."`
	DatabaseURL string `name:"database-url" env:"DATABASE_URL" help:"Postgres connection string."`
	LogLevel    string `name:"log-level" env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level."`
	LogFile     string `name:"log-file" env:"LOG_FILE" help:"Also write logs to this rotating file."`
}

func (globals *Globals) logger() (*zap.Logger, error) {
	logger, err := logging.New(logging.Config{Level: globals.LogLevel, File: globals.LogFile})
	if err != nil {
		return nil, fmt.Errorf("logger init failed: %w", err)
	}
	return logger, nil
}

func (globals *Globals) openDatabase(logger *zap.Logger) (*gorm.DB, func(), error) {
	database, err := db.Open(globals.DBDriver, globals.DBPath, globals.DatabaseURL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}

	closeDatabase := func() {
		sqlDB, err := database.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}
	return database, closeDatabase, nil
}
