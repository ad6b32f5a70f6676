// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrInvalidJSON     = errors.New("invalid json")
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError carries per-field validation messages keyed by JSON
// field name. It matches ErrValidation with errors.Is, and ErrInvalidJSON
// when the request body could not be decoded.
type ValidationError struct {
	Fields map[string]string
	cause  error
}

// NewValidationError returns a ValidationError for the given field messages.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields, cause: ErrValidation}
}

// NewInvalidJSONError returns the ValidationError reported for a body that
// is not valid JSON.
func NewInvalidJSONError() *ValidationError {
	return &ValidationError{
		Fields: map[string]string{"payload": "invalid json"},
		cause:  ErrInvalidJSON,
	}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return e.cause.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation or the specific cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || target == e.cause
}
