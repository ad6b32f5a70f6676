// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/agromatch/internal/utils"
	"github.com/MKhiriev/agromatch/models"
)

// listCompanies serves GET /api/companies?page=&limit=. Missing or
// non-numeric values are passed on as zero and replaced by the defaults.
func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	companies, err := h.services.CompanyService.ListCompanies(r.Context(), models.PageRequest{Page: page, Limit: limit})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, companies, http.StatusOK)
}

func (h *Handler) getCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.services.CompanyService.GetCompany(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, company, http.StatusOK)
}

func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	var input models.CompanyInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	company, err := h.services.CompanyService.CreateCompany(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, company, http.StatusCreated)
}

// updateCompany serves PATCH /api/companies/{id}. An unknown id is reported
// as 404 even when the body is not valid JSON.
func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var input models.CompanyInput
	if decodeErr := decodeJSON(r, &input); decodeErr != nil {
		if _, err := h.services.CompanyService.GetCompany(ctx, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeError(w, r, decodeErr)
		return
	}

	company, err := h.services.CompanyService.UpdateCompany(ctx, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, company, http.StatusOK)
}
