// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/store"
	"github.com/MKhiriev/agromatch/internal/utils"
	"github.com/MKhiriev/agromatch/internal/validators"
	"github.com/MKhiriev/agromatch/models"
)

type companyService struct {
	companyRepository store.CompanyRepository
	validator         validators.Validator
	ids               IDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewCompanyService(companyRepository store.CompanyRepository, validator validators.Validator, logger *logger.Logger) CompanyService {
	return &companyService{
		companyRepository: companyRepository,
		validator:         validator,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// ListCompanies returns one page of companies ordered by name. The page is
// normalised first, so a zero PageRequest lists the first eight companies.
// A page past the end has no companies but a full pagination block, and is
// answered without querying the rows.
func (s *companyService) ListCompanies(ctx context.Context, page models.PageRequest) (models.CompanyPage, error) {
	page = page.Normalize()

	total, err := s.companyRepository.CountCompanies(ctx)
	if err != nil {
		return models.CompanyPage{}, fmt.Errorf("counting companies failed: %w", err)
	}

	if page.Offset() >= total {
		return models.CompanyPage{
			Companies:  []models.Company{},
			Pagination: models.NewPagination(total, page),
		}, nil
	}

	companies, err := s.companyRepository.ListCompanies(ctx, page)
	if err != nil {
		return models.CompanyPage{}, fmt.Errorf("listing companies failed: %w", err)
	}
	if companies == nil {
		companies = []models.Company{}
	}

	return models.CompanyPage{
		Companies:  companies,
		Pagination: models.NewPagination(total, page),
	}, nil
}

func (s *companyService) GetCompany(ctx context.Context, id string) (models.Company, error) {
	company, err := s.companyRepository.FindCompanyByID(ctx, id)
	if err != nil {
		return models.Company{}, fmt.Errorf("company search by id failed: %w", err)
	}

	return company, nil
}

func (s *companyService) CreateCompany(ctx context.Context, input models.CompanyInput) (models.Company, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Str("func", "*companyService.CreateCompany").Msg("invalid company")
		return models.Company{}, err
	}

	now := s.now().UTC()
	company := models.Company{
		ID:        s.ids.Generate(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	company.Apply(input)

	created, err := s.companyRepository.CreateCompany(ctx, company)
	if err != nil {
		log.Err(err).Str("func", "*companyService.CreateCompany").Msg("company creation ended with error")
		return models.Company{}, fmt.Errorf("company creation ended with error: %w", err)
	}

	log.Info().Str("func", "*companyService.CreateCompany").Str("company_id", created.ID).Msg("company created")
	return created, nil
}

// UpdateCompany replaces the business fields of the company with id.
//
// Existence is checked before the payload, so an unknown id yields
// store.ErrCompanyNotFound even for an invalid input. CreatedAt is kept and
// UpdatedAt is set to the current time.
func (s *companyService) UpdateCompany(ctx context.Context, id string, input models.CompanyInput) (models.Company, error) {
	log := logger.FromContext(ctx)

	company, err := s.companyRepository.FindCompanyByID(ctx, id)
	if err != nil {
		return models.Company{}, fmt.Errorf("company search by id failed: %w", err)
	}

	if err = s.validator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Str("func", "*companyService.UpdateCompany").Msg("invalid company")
		return models.Company{}, err
	}

	company.Apply(input)
	company.UpdatedAt = s.now().UTC()

	updated, err := s.companyRepository.UpdateCompany(ctx, company)
	if err != nil {
		log.Err(err).Str("func", "*companyService.UpdateCompany").Msg("company update ended with error")
		return models.Company{}, fmt.Errorf("company update ended with error: %w", err)
	}

	return updated, nil
}
