// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/ratelimit"
	"github.com/MKhiriev/agromatch/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  ratelimit.Limiter

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A nil limiter disables rate limiting.
func NewHandler(services *service.Services, limiter ratelimit.Limiter, logger *logger.Logger) *Handler {
	if limiter == nil {
		limiter = ratelimit.NopLimiter{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		logger:   logger,
	}
}
