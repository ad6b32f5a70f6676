// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides request validation for the agromatch API.
//
// Rules are declared with `validate` struct tags on the request models and
// enforced by go-playground/validator. Failures are reported as a
// *ValidationError mapping JSON field names to human readable messages.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
