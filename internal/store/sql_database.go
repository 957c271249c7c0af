package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/migrations"
)

// DB wraps a *sql.DB together with the dialect details the repositories
// need to build statements for it.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the audit database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// Classify runs the dialect's classifier over err.
func (db *DB) Classify(err error) ErrorClassification {
	if err == nil || db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
