// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/ratelimit"
	"github.com/MKhiriev/agromatch/internal/service"
	"github.com/MKhiriev/agromatch/models"
)

type mockAuthService struct {
	signupFn     func(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	meFn         func(ctx context.Context, userID string) (models.Profile, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Me(ctx context.Context, userID string) (models.Profile, error) {
	return m.meFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(context.Context, models.User) (models.Token, error) {
	panic("CreateToken is not used by handlers")
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockCompanyService struct {
	listFn   func(ctx context.Context, page models.PageRequest) (models.CompanyPage, error)
	getFn    func(ctx context.Context, id string) (models.Company, error)
	createFn func(ctx context.Context, input models.CompanyInput) (models.Company, error)
	updateFn func(ctx context.Context, id string, input models.CompanyInput) (models.Company, error)
}

func (m *mockCompanyService) ListCompanies(ctx context.Context, page models.PageRequest) (models.CompanyPage, error) {
	return m.listFn(ctx, page)
}

func (m *mockCompanyService) GetCompany(ctx context.Context, id string) (models.Company, error) {
	return m.getFn(ctx, id)
}

func (m *mockCompanyService) CreateCompany(ctx context.Context, input models.CompanyInput) (models.Company, error) {
	return m.createFn(ctx, input)
}

func (m *mockCompanyService) UpdateCompany(ctx context.Context, id string, input models.CompanyInput) (models.Company, error) {
	return m.updateFn(ctx, id, input)
}

type mockEmailService struct {
	sendFn func(ctx context.Context, msg models.EmailMessage) (models.EmailResult, error)
}

func (m *mockEmailService) SendEmail(ctx context.Context, msg models.EmailMessage) (models.EmailResult, error) {
	return m.sendFn(ctx, msg)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(context.Context) error {
	return m.err
}

type mockLimiter struct {
	allowFn func(ctx context.Context, key string) (ratelimit.Result, error)
}

func (m *mockLimiter) Allow(ctx context.Context, key string) (ratelimit.Result, error) {
	return m.allowFn(ctx, key)
}

func (m *mockLimiter) Close() error { return nil }

// newTestHandler returns a handler with nop logging and no rate limiting.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, nil, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}
