// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScripter answers EvalSha with a fixed reply and records the call.
type fakeScripter struct {
	reply any
	err   error

	keys []string
	args []any
}

func (f *fakeScripter) EvalSha(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	f.keys, f.args = keys, args
	return redis.NewCmdResult(f.reply, f.err)
}

func (f *fakeScripter) Eval(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.EvalSha(ctx, "", keys, args...)
}

func (f *fakeScripter) EvalRO(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return f.Eval(ctx, script, keys, args...)
}

func (f *fakeScripter) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return f.EvalSha(ctx, sha1, keys, args...)
}

func (f *fakeScripter) ScriptExists(context.Context, ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult([]bool{true}, nil)
}

func (f *fakeScripter) ScriptLoad(context.Context, string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func TestRedisCounter_Increment(t *testing.T) {
	scripter := &fakeScripter{reply: []any{int64(2), int64(59500)}}
	counter := NewRedisCounter(scripter)

	count, ttl, err := counter.Increment(context.Background(), "rl:key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 59500*time.Millisecond, ttl)
	assert.Equal(t, []string{"rl:key"}, scripter.keys)
	assert.Equal(t, []any{int64(60000)}, scripter.args)
}

func TestRedisCounter_Increment_NegativeTTL(t *testing.T) {
	counter := NewRedisCounter(&fakeScripter{reply: []any{int64(1), int64(-1)}})

	_, ttl, err := counter.Increment(context.Background(), "rl:key", time.Minute)
	require.NoError(t, err)
	assert.Zero(t, ttl)
}

func TestRedisCounter_Increment_Errors(t *testing.T) {
	tests := []struct {
		name     string
		scripter *fakeScripter
	}{
		{"redis error", &fakeScripter{err: errors.New("connection refused")}},
		{"short reply", &fakeScripter{reply: []any{int64(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewRedisCounter(tt.scripter).Increment(context.Background(), "rl:key", time.Minute)
			assert.Error(t, err)
		})
	}
}
