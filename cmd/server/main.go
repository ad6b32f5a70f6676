// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/agromatch/internal/config"
	"github.com/MKhiriev/agromatch/internal/handler"
	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/ratelimit"
	"github.com/MKhiriev/agromatch/internal/server"
	"github.com/MKhiriev/agromatch/internal/service"
	"github.com/MKhiriev/agromatch/internal/store"
	"github.com/MKhiriev/agromatch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("agromatch-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("agromatch-server", cfg.App.LogLevel)
	log.Debug().Str("env", cfg.App.Env).Str("db_driver", cfg.Storage.DB.Driver).Msg("received configs")

	if cfg.App.UsesDevTokenSignKey() {
		log.Warn().Msg("using the built-in development token sign key, set APP_TOKEN_SIGN_KEY outside development")
	}

	if err = run(cfg, build, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, build models.BuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	limiter := ratelimit.NewLimiter(cfg.RateLimit, log)
	defer limiter.Close()

	handlers, err := handler.NewHandlers(services, limiter, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
