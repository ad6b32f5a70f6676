// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/flate"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/ratelimit"
	"github.com/MKhiriev/agromatch/internal/service"
	"github.com/MKhiriev/agromatch/internal/store"
	"github.com/MKhiriev/agromatch/internal/utils"
	"github.com/MKhiriev/agromatch/internal/validators"
	"github.com/MKhiriev/agromatch/models"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:  http.StatusBadRequest,
	validators.ErrInvalidJSON: http.StatusBadRequest,
	ErrInvalidGzip:            http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrTokenNotProvided:                http.StatusUnauthorized,

	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrCompanyNotFound: http.StatusNotFound,
	ErrNotFound:              http.StatusNotFound,

	store.ErrEmailAlreadyExists: http.StatusConflict,

	ratelimit.ErrLimitExceeded: http.StatusTooManyRequests,
}

// statusFromError returns the status of the first known sentinel in err's
// chain together with that sentinel. Unknown errors are 500.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, errInternal
}

// writeError maps err to its status and writes the JSON error body.
//
// Validation failures carry per-field details. Internal errors are logged
// with the request trace id and only that id is exposed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, target := statusFromError(err)

	body := models.ErrorResponse{Error: target.Error()}

	var verr *validators.ValidationError
	switch {
	case errors.As(err, &verr):
		if errors.Is(err, validators.ErrInvalidJSON) {
			body.Error = validators.ErrInvalidJSON.Error()
		} else {
			body.Error = validators.ErrValidation.Error()
		}
		body.Details = verr.Fields
	case status == http.StatusInternalServerError:
		body.ErrorID = utils.GetTraceIDFromContext(r.Context())
		log.Err(err).Str("func", "writeError").Str("error_id", body.ErrorID).Msg("internal server error")
	}

	if status != http.StatusInternalServerError {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, body, status)
}

// decodeJSON decodes the request body into dst. On failure it returns the
// invalid JSON validation error for the caller to report, or ErrInvalidGzip
// when the compressed body itself is broken.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if isGzipStreamError(err) {
			logger.FromRequest(r).Debug().Err(err).Msg("corrupt gzip body")
			return fmt.Errorf("%w: %w", ErrInvalidGzip, err)
		}
		logger.FromRequest(r).Debug().Err(err).Msg("invalid json was passed")
		return validators.NewInvalidJSONError()
	}
	return nil
}

// isGzipStreamError reports whether err comes from a gzip body that broke
// after its header was accepted.
func isGzipStreamError(err error) bool {
	var corrupt flate.CorruptInputError
	return errors.As(err, &corrupt) ||
		errors.Is(err, gzip.ErrChecksum) ||
		errors.Is(err, gzip.ErrHeader)
}
