// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists agromatch users and companies in a SQL database
// (PostgreSQL in production, SQLite for development).
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/agromatch/models"
)

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts user. Returns ErrEmailAlreadyExists when the email
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with email or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user with id or ErrUserNotFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// CompanyRepository is the company store.
type CompanyRepository interface {
	// ListCompanies returns one page of companies ordered by name, then id.
	ListCompanies(ctx context.Context, page models.PageRequest) ([]models.Company, error)
	// CountCompanies returns the total number of companies.
	CountCompanies(ctx context.Context) (int, error)
	// FindCompanyByID returns the company with id or ErrCompanyNotFound.
	FindCompanyByID(ctx context.Context, id string) (models.Company, error)
	// CreateCompany inserts company.
	CreateCompany(ctx context.Context, company models.Company) (models.Company, error)
	// UpdateCompany replaces the business fields and updatedAt of the
	// company with company.ID. Returns ErrCompanyNotFound when it is gone.
	UpdateCompany(ctx context.Context, company models.Company) (models.Company, error)
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
