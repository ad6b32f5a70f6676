// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/agromatch/internal/config"
	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/models"
)

type appInfoService struct {
	version string
	build   models.BuildInfo

	logger *logger.Logger
}

// NewAppInfoService resolves the version GET /api/version reports.
//
// A configured version wins over the linked one, except for the "dev"
// default, which yields to a release version stamped into the binary.
func NewAppInfoService(cfg config.App, build models.BuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if (version == "" || version == config.DefaultVersion) && build.Linked() {
		version = build.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("version", version).
		Str("build", build.String()).
		Msg("agromatch version resolved")

	return &appInfoService{
		version: version,
		build:   build,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
