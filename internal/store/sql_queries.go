// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/agromatch/models"
)

const (
	usersTable     = "users"
	companiesTable = "companies"
)

var userColumns = []string{
	"id",
	"name",
	"email",
	`"passwordHash"`,
	`"createdAt"`,
	`"updatedAt"`,
}

var companyColumns = []string{
	"id",
	"name",
	"logo_url",
	"description",
	"email",
	"phone",
	"website",
	"address",
	`"createdAt"`,
	`"updatedAt"`,
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectCompaniesPageQuery(b sq.StatementBuilderType, page models.PageRequest) (string, []any, error) {
	return b.Select(companyColumns...).
		From(companiesTable).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
}

func buildCountCompaniesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(companiesTable).
		ToSql()
}

func buildSelectCompanyByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(companyColumns...).
		From(companiesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertCompanyQuery(b sq.StatementBuilderType, c models.Company) (string, []any, error) {
	return b.Insert(companiesTable).
		Columns(companyColumns...).
		Values(c.ID, c.Name, c.LogoURL, c.Description, c.Email, c.Phone, c.Website, c.Address, c.CreatedAt, c.UpdatedAt).
		ToSql()
}

func buildUpdateCompanyQuery(b sq.StatementBuilderType, c models.Company) (string, []any, error) {
	return b.Update(companiesTable).
		Set("name", c.Name).
		Set("logo_url", c.LogoURL).
		Set("description", c.Description).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("website", c.Website).
		Set("address", c.Address).
		Set(`"updatedAt"`, c.UpdatedAt).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
}
