// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/models"
)

var companyRowColumns = []string{"id", "name", "logo_url", "description", "email", "phone", "website", "address", "createdAt", "updatedAt"}

func testCompany(id, name string) models.Company {
	ts := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return models.Company{
		ID:          id,
		Name:        name,
		LogoURL:     "https://logo.example/" + id + ".png",
		Description: "Seeds and grain",
		Email:       "hello@" + id + ".example",
		Phone:       "+1 555 0100",
		Website:     "https://" + id + ".example",
		Address:     "1 Field Rd",
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func addCompanyRow(rows *sqlmock.Rows, c models.Company) *sqlmock.Rows {
	return rows.AddRow(c.ID, c.Name, c.LogoURL, c.Description, c.Email, c.Phone, c.Website, c.Address, c.CreatedAt, c.UpdatedAt)
}

func TestListCompanies_Page(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())

	a, b := testCompany("a", "Alpha"), testCompany("b", "Beta")
	rows := sqlmock.NewRows(companyRowColumns)
	addCompanyRow(rows, a)
	addCompanyRow(rows, b)

	mock.ExpectQuery(`SELECT .+ FROM companies ORDER BY name ASC, id ASC LIMIT 8 OFFSET 8`).
		WillReturnRows(rows)

	companies, err := repo.ListCompanies(context.Background(), models.PageRequest{Page: 2, Limit: 8})
	require.NoError(t, err)
	assert.Equal(t, []models.Company{a, b}, companies)
}

func TestListCompanies_PastTheEndIsEmptyNotNil(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT .+ FROM companies`).
		WillReturnRows(sqlmock.NewRows(companyRowColumns))

	companies, err := repo.ListCompanies(context.Background(), models.PageRequest{Page: 4, Limit: 8})
	require.NoError(t, err)
	assert.NotNil(t, companies)
	assert.Empty(t, companies)
}

func TestListCompanies_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT .+ FROM companies`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a"))

	_, err := repo.ListCompanies(context.Background(), models.PageRequest{Page: 1, Limit: 8})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListCompanies_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT .+ FROM companies`).WillReturnError(errors.New("boom"))

	_, err := repo.ListCompanies(context.Background(), models.PageRequest{Page: 1, Limit: 8})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCountCompanies(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM companies`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(20))

	total, err := repo.CountCompanies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, total)
}

func TestFindCompanyByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())
	c := testCompany("a", "Alpha")

	mock.ExpectQuery(`SELECT .+ FROM companies WHERE id = \$1`).
		WithArgs("a").
		WillReturnRows(addCompanyRow(sqlmock.NewRows(companyRowColumns), c))

	found, err := repo.FindCompanyByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, c, found)
}

func TestFindCompanyByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT .+ FROM companies WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(companyRowColumns))

	_, err := repo.FindCompanyByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCreateCompany(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())
	c := testCompany("a", "Alpha")

	mock.ExpectExec(`INSERT INTO companies`).
		WithArgs(c.ID, c.Name, c.LogoURL, c.Description, c.Email, c.Phone, c.Website, c.Address, c.CreatedAt, c.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateCompany(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, c, created)
}

func TestCreateCompany_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())

	mock.ExpectExec(`INSERT INTO companies`).WillReturnError(errors.New("boom"))

	_, err := repo.CreateCompany(context.Background(), testCompany("a", "Alpha"))
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestUpdateCompany(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())
	c := testCompany("a", "Alpha Renamed")
	c.UpdatedAt = c.UpdatedAt.Add(time.Hour)

	mock.ExpectExec(`UPDATE companies SET name = \$1, .+ "updatedAt" = \$8 WHERE id = \$9`).
		WithArgs(c.Name, c.LogoURL, c.Description, c.Email, c.Phone, c.Website, c.Address, c.UpdatedAt, c.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateCompany(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, c, updated)
}

func TestUpdateCompany_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCompanyRepository(db, logger.Nop())

	mock.ExpectExec(`UPDATE companies`).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateCompany(context.Background(), testCompany("gone", "Gone"))
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}
