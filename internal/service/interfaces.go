// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the agromatch API: account
// signup and login, token issuing, company records and the simulated email
// sender. Services depend on the store and crypto packages only through
// interfaces.
package service

import (
	"context"

	"github.com/MKhiriev/agromatch/models"
)

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Me(ctx context.Context, userID string) (models.Profile, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type CompanyService interface {
	ListCompanies(ctx context.Context, page models.PageRequest) (models.CompanyPage, error)
	GetCompany(ctx context.Context, id string) (models.Company, error)
	CreateCompany(ctx context.Context, input models.CompanyInput) (models.Company, error)
	UpdateCompany(ctx context.Context, id string, input models.CompanyInput) (models.Company, error)
}

// EmailService accepts outgoing messages. No message is delivered; sends are
// validated and logged only.
type EmailService interface {
	SendEmail(ctx context.Context, msg models.EmailMessage) (models.EmailResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the storage backend is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
