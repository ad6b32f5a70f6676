// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int
		page  PageRequest
		want  Pagination
	}{
		{"exact pages", 16, PageRequest{Page: 1, Limit: 8}, Pagination{16, 2, 1, 8}},
		{"partial last page", 20, PageRequest{Page: 1, Limit: 8}, Pagination{20, 3, 1, 8}},
		{"page past the end", 20, PageRequest{Page: 4, Limit: 8}, Pagination{20, 3, 4, 8}},
		{"empty", 0, PageRequest{Page: 1, Limit: 8}, Pagination{0, 0, 1, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.total, tt.page))
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 8}.Offset())
	assert.Equal(t, 24, PageRequest{Page: 4, Limit: 8}.Offset())

	huge := PageRequest{Page: math.MaxInt, Limit: MaxLimit}.Normalize()
	assert.Equal(t, (MaxPage-1)*MaxLimit, huge.Offset())
	assert.Positive(t, huge.Offset())
}

func TestUser_PasswordHashIsNotSerialized(t *testing.T) {
	u := User{ID: "id", Name: "Ana", Email: "ana@x.io", PasswordHash: "secret-hash", CreatedAt: time.Now()}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
	assert.NotContains(t, string(b), "passwordHash")
	assert.Contains(t, string(b), `"createdAt"`)
}

func TestCompany_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Company{ID: "1", LogoURL: "https://logo"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, key := range []string{"id", "name", "logo_url", "description", "email", "phone", "website", "address", "createdAt", "updatedAt"} {
		assert.Contains(t, raw, key)
	}
}

func TestCompany_Apply(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Company{ID: "1", Name: "Old", CreatedAt: created}

	c.Apply(CompanyInput{Name: "New", LogoURL: "l", Description: "d", Email: "e@x.io", Phone: "p", Website: "w", Address: "a"})

	assert.Equal(t, "1", c.ID)
	assert.Equal(t, "New", c.Name)
	assert.Equal(t, "e@x.io", c.Email)
	assert.Equal(t, created, c.CreatedAt)
}

func TestClaims_Validate(t *testing.T) {
	assert.Error(t, Claims{}.Validate())
	assert.NoError(t, Claims{ID: "u1"}.Validate())
}

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{"zero values", PageRequest{}, PageRequest{Page: 1, Limit: 8}},
		{"negative", PageRequest{Page: -3, Limit: -1}, PageRequest{Page: 1, Limit: 8}},
		{"kept", PageRequest{Page: 3, Limit: 20}, PageRequest{Page: 3, Limit: 20}},
		{"capped", PageRequest{Page: 2, Limit: 500}, PageRequest{Page: 2, Limit: 100}},
		{"huge page", PageRequest{Page: math.MaxInt, Limit: math.MaxInt}, PageRequest{Page: MaxPage, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}
