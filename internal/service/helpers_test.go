// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/agromatch/internal/validators"
)

// fixedIDs is an IDGenerator that always returns id.
type fixedIDs struct {
	id string
}

func (f fixedIDs) Generate() string {
	return f.id
}

var fixedNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

// requireValidationFields asserts that err is a *validators.ValidationError
// naming every field in fields.
func requireValidationFields(t *testing.T, err error, fields ...string) *validators.ValidationError {
	t.Helper()

	require.ErrorIs(t, err, validators.ErrValidation)
	var verr *validators.ValidationError
	require.True(t, errors.As(err, &verr))
	for _, f := range fields {
		require.Contains(t, verr.Fields, f)
	}
	return verr
}
