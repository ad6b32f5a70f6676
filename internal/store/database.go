// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/agromatch/internal/config"
	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/migrations"
)

// DB is a connection pool bound to one SQL dialect.
//
// Statements are built with builder, which carries the dialect's
// placeholder format, and driver errors are interpreted by
// errorClassifier.
type DB struct {
	*sql.DB
	dialect         string
	builder         sq.StatementBuilderType
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// HealthCheck pings the database.
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}

// queryError wraps a failed statement error into the store's sentinel
// errors, keeping the driver error in the chain.
func (db *DB) queryError(err error) error {
	if db.classify(err) == ConnectionFailure {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassifier == nil {
		return Unclassified
	}
	return db.errorClassifier.Classify(err)
}

func newDB(conn *sql.DB, dialect string, placeholder sq.PlaceholderFormat, classifier ErrorClassifier, log *logger.Logger) *DB {
	return &DB{
		DB:              conn,
		dialect:         dialect,
		builder:         sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassifier: classifier,
		logger:          log,
	}
}
