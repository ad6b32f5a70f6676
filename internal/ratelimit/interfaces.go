// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements the fixed-window request limiter applied to
// the signup and login endpoints. Counters live in Redis so that every
// server instance shares the same windows.
package ratelimit

//go:generate mockgen -source=interfaces.go -destination=../mock/rate_counter_mock.go -package=mock

import (
	"context"
	"time"
)

// Limiter decides whether one more request under key is allowed.
type Limiter interface {
	// Allow counts a request under key. An error means the decision could
	// not be made; callers let the request through.
	Allow(ctx context.Context, key string) (Result, error)

	Close() error
}

// Counter is the storage of fixed windows.
type Counter interface {
	// Increment adds one to the counter of key, starting a window of the
	// given length when the counter is new. It returns the new count and
	// the time left in the window.
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Result describes the state of a window after a request was counted.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	// Reset is the time left until the window restarts.
	Reset time.Duration
}
