// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/models"
)

// companyRepository is the SQL-backed implementation of [CompanyRepository].
type companyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCompanyRepository constructs a [CompanyRepository] backed by db.
func NewCompanyRepository(db *DB, logger *logger.Logger) CompanyRepository {
	logger.Debug().Msg("creating company repository")
	return &companyRepository{
		db:     db,
		logger: logger,
	}
}

// ListCompanies returns the requested page. A page past the end yields an
// empty, non-nil slice.
func (r *companyRepository) ListCompanies(ctx context.Context, page models.PageRequest) ([]models.Company, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCompaniesPageQuery(r.db.builder, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*companyRepository.ListCompanies").Msg("error querying companies")
		return nil, r.db.queryError(err)
	}
	defer rows.Close()

	companies := make([]models.Company, 0, page.Limit)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			log.Err(err).Str("func", "*companyRepository.ListCompanies").Msg("error scanning company")
			return nil, err
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*companyRepository.ListCompanies").Msg("error iterating companies")
		return nil, r.db.queryError(err)
	}

	return companies, nil
}

func (r *companyRepository) CountCompanies(ctx context.Context) (int, error) {
	query, args, err := buildCountCompaniesQuery(r.db.builder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*companyRepository.CountCompanies").Msg("error counting companies")
		return 0, r.db.queryError(err)
	}

	return total, nil
}

func (r *companyRepository) FindCompanyByID(ctx context.Context, id string) (models.Company, error) {
	query, args, err := buildSelectCompanyByIDQuery(r.db.builder, id)
	if err != nil {
		return models.Company{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	company, err := scanCompany(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return company, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Company{}, ErrCompanyNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*companyRepository.FindCompanyByID").Msg("error querying company")
		return models.Company{}, r.db.queryError(err)
	}
}

func (r *companyRepository) CreateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	query, args, err := buildInsertCompanyQuery(r.db.builder, company)
	if err != nil {
		return models.Company{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*companyRepository.CreateCompany").Msg("error inserting company")
		return models.Company{}, r.db.queryError(err)
	}

	return company, nil
}

func (r *companyRepository) UpdateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCompanyQuery(r.db.builder, company)
	if err != nil {
		return models.Company{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*companyRepository.UpdateCompany").Msg("error updating company")
		return models.Company{}, r.db.queryError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Company{}, r.db.queryError(err)
	}
	if affected == 0 {
		return models.Company{}, ErrCompanyNotFound
	}

	return company, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCompany reads one row selected with companyColumns. sql.ErrNoRows is
// passed through unchanged; other failures are wrapped in ErrScanningRow.
func scanCompany(row rowScanner) (models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Name, &c.LogoURL, &c.Description, &c.Email, &c.Phone, &c.Website, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Company{}, err
		}
		return models.Company{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return c, nil
}
