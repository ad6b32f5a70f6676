// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/agromatch/internal/config"
	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/utils"
	"github.com/MKhiriev/agromatch/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises the base URL from cfg.HTTPAddress and seeds the token from
// cfg.Token.
//
// Returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	var out models.SignupResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/auth/signup")
	if err != nil {
		return models.SignupResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignupResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(out.Token)
	h.logger.Debug().Str("user_id", out.User.ID).Msg("logged in")
	return out, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.Profile, error) {
	var out models.Profile
	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Get("/api/auth/me")
	if err != nil {
		return models.Profile{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return out, nil
}

// ListCompanies omits non-positive page and limit so the server defaults apply.
func (h *httpServerAdapter) ListCompanies(ctx context.Context, page models.PageRequest) (models.CompanyPage, error) {
	req := h.client.R().SetContext(ctx)
	if page.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page.Page))
	}
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(page.Limit))
	}

	var out models.CompanyPage
	resp, err := req.SetResult(&out).Get("/api/companies")
	if err != nil {
		return models.CompanyPage{}, fmt.Errorf("list companies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CompanyPage{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) GetCompany(ctx context.Context, id string) (models.Company, error) {
	var out models.Company
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		Get("/api/companies/{id}")
	if err != nil {
		return models.Company{}, fmt.Errorf("get company request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Company{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) CreateCompany(ctx context.Context, input models.CompanyInput) (models.Company, error) {
	var out models.Company
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&out).
		Post("/api/companies")
	if err != nil {
		return models.Company{}, fmt.Errorf("create company request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Company{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) UpdateCompany(ctx context.Context, id string, input models.CompanyInput) (models.Company, error) {
	var out models.Company
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(input).
		SetResult(&out).
		Patch("/api/companies/{id}")
	if err != nil {
		return models.Company{}, fmt.Errorf("update company request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Company{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) SendEmail(ctx context.Context, msg models.EmailMessage) (models.EmailResult, error) {
	var out models.EmailResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(msg).
		SetResult(&out).
		Post("/api/email/send")
	if err != nil {
		return models.EmailResult{}, fmt.Errorf("send email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EmailResult{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
