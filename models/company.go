// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Company is a business-directory record.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LogoURL     string    `json:"logo_url"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Website     string    `json:"website"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CompanyInput carries the seven business fields accepted on create and
// update. Every field is required; updates replace all of them.
type CompanyInput struct {
	Name        string `json:"name" validate:"required"`
	LogoURL     string `json:"logo_url" validate:"required"`
	Description string `json:"description" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Website     string `json:"website" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

// Apply copies the business fields of in onto c.
func (c *Company) Apply(in CompanyInput) {
	c.Name = in.Name
	c.LogoURL = in.LogoURL
	c.Description = in.Description
	c.Email = in.Email
	c.Phone = in.Phone
	c.Website = in.Website
	c.Address = in.Address
}

// Listing defaults of GET /api/companies.
const (
	DefaultPage  = 1
	DefaultLimit = 8
	MaxLimit     = 100
	// MaxPage keeps (MaxPage-1)*MaxLimit inside a 32-bit int.
	MaxPage = 1 << 24
)

// PageRequest selects a page of an ordered listing. Page is 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize replaces values below 1 with the defaults and caps Page at
// MaxPage and Limit at MaxLimit.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the number of rows preceding the requested page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes the position of a page inside a listing.
type Pagination struct {
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

// NewPagination computes the pagination block for total rows split into
// pages of p.Limit rows.
func NewPagination(total int, p PageRequest) Pagination {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: p.Page,
		Limit:       p.Limit,
	}
}

// CompanyPage is the response of GET /api/companies.
type CompanyPage struct {
	Companies  []Company  `json:"companies"`
	Pagination Pagination `json:"pagination"`
}
