// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/agromatch/internal/config"
	"github.com/MKhiriev/agromatch/internal/logger"
)

// Storages aggregates the repositories built on one database connection.
type Storages struct {
	UserRepository    UserRepository
	CompanyRepository CompanyRepository
	HealthChecker     HealthChecker

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("func", "NewStorages").Msg("database migrations applied")

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already opened connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		CompanyRepository: NewCompanyRepository(db, log),
		HealthChecker:     db,
		db:                db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
