// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"io"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/agromatch/internal/config"
	"github.com/MKhiriev/agromatch/internal/logger"
)

// FixedWindowLimiter allows MaxRequests requests per key and window.
type FixedWindowLimiter struct {
	counter Counter
	closer  io.Closer
	cfg     config.RateLimit
}

// NewLimiter returns a Redis-backed limiter, or a NopLimiter when no Redis
// address is configured.
func NewLimiter(cfg config.RateLimit, log *logger.Logger) Limiter {
	if !cfg.Enabled() {
		log.Info().Str("func", "ratelimit.NewLimiter").Msg("rate limiting disabled")
		return NopLimiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	log.Info().
		Str("func", "ratelimit.NewLimiter").
		Str("redis", cfg.RedisAddress).
		Int("max_requests", cfg.MaxRequests).
		Dur("window", cfg.Window).
		Msg("rate limiting enabled")

	return NewFixedWindowLimiter(NewRedisCounter(client), client, cfg)
}

func NewFixedWindowLimiter(counter Counter, closer io.Closer, cfg config.RateLimit) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		counter: counter,
		closer:  closer,
		cfg:     cfg,
	}
}

func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (Result, error) {
	count, ttl, err := l.counter.Increment(ctx, key, l.cfg.Window)
	if err != nil {
		return Result{}, err
	}

	remaining := l.cfg.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   count <= int64(l.cfg.MaxRequests),
		Limit:     l.cfg.MaxRequests,
		Remaining: remaining,
		Reset:     ttl,
	}, nil
}

func (l *FixedWindowLimiter) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// NopLimiter allows every request.
type NopLimiter struct{}

func (NopLimiter) Allow(context.Context, string) (Result, error) {
	return Result{Allowed: true}, nil
}

func (NopLimiter) Close() error {
	return nil
}
