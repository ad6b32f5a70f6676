// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import "errors"

// ErrLimitExceeded is reported to clients that used up their window.
var ErrLimitExceeded = errors.New("rate limit exceeded")
