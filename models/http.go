// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	// Error is the human readable message.
	Error string `json:"error"`

	// Details maps request fields to validation messages. Present on 400s
	// caused by validation only.
	Details map[string]string `json:"details,omitempty"`

	// ErrorID is the request trace id. Present on 500s only so that an
	// operator can find the logged cause.
	ErrorID string `json:"errorId,omitempty"`
}

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status string `json:"status"`
}
