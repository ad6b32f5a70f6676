// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrTokenNotProvided is returned by the auth middleware when the
	// "Authorization" header is missing, is not a Bearer header, or carries
	// an empty token.
	ErrTokenNotProvided = errors.New("token not provided")

	// ErrNotFound answers unknown routes and unsupported methods.
	ErrNotFound = errors.New("not found")

	// ErrInvalidGzip rejects a request declared as gzip whose body is not
	// a valid gzip stream.
	ErrInvalidGzip = errors.New("invalid gzip data")

	errInternal = errors.New("internal server error")
)
