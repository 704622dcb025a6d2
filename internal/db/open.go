package db

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Open connects to the configured store and brings its schema up to date.
func Open(driver string, sqlitePath string, postgresDSN string, logger *zap.Logger) (*gorm.DB, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSQLite:
		return OpenSQLite(sqlitePath, logger)
	case DriverPostgres:
		if strings.TrimSpace(postgresDSN) == "" {
			return nil, errors.New("postgres driver requires a DATABASE_URL")
		}
		return OpenPostgres(postgresDSN, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}
