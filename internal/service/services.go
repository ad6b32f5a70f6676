// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/agromatch/internal/config"
	"github.com/MKhiriev/agromatch/internal/crypto"
	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/store"
	"github.com/MKhiriev/agromatch/internal/validators"
	"github.com/MKhiriev/agromatch/models"
)

type Services struct {
	AuthService    AuthService
	CompanyService CompanyService
	EmailService   EmailService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.BuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRequestValidator()
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, validator, cfg.App, logger),
		CompanyService: NewCompanyService(storages.CompanyRepository, validator, logger),
		EmailService:   NewEmailService(validator, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.HealthChecker, logger),
	}, nil
}
