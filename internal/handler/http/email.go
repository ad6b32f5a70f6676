// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/agromatch/internal/utils"
	"github.com/MKhiriev/agromatch/models"
)

func (h *Handler) sendEmail(w http.ResponseWriter, r *http.Request) {
	var msg models.EmailMessage
	if err := decodeJSON(r, &msg); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.EmailService.SendEmail(r.Context(), msg)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
