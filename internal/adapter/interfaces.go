// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the agromatch REST API.
//
// The primary abstraction is [ServerAdapter], implemented over HTTP by
// [NewHTTPServerAdapter]. Non-2xx responses are mapped by mapHTTPError to the
// sentinel errors in errors.go so that callers can use [errors.Is] (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/agromatch/models"
)

// ServerAdapter talks to the agromatch server. Implementations handle
// serialisation, the bearer token and error mapping.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Signup registers a new account. It does not log the user in.
	Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me returns the profile of the token owner.
	Me(ctx context.Context) (models.Profile, error)

	ListCompanies(ctx context.Context, page models.PageRequest) (models.CompanyPage, error)
	GetCompany(ctx context.Context, id string) (models.Company, error)
	CreateCompany(ctx context.Context, input models.CompanyInput) (models.Company, error)
	UpdateCompany(ctx context.Context, id string, input models.CompanyInput) (models.Company, error)

	SendEmail(ctx context.Context, msg models.EmailMessage) (models.EmailResult, error)

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)
}
