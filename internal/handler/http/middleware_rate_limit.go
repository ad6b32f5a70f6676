// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/ratelimit"
)

// withRateLimit counts the request under the client IP and route path and
// rejects it with 429 once the window is used up. Limiter failures let the
// request through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key := "rl:path:" + r.URL.Path + ":ip:" + clientIP(r)
		res, err := h.limiter.Allow(r.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, request allowed")
			next.ServeHTTP(w, r)
			return
		}

		if res.Limit > 0 {
			resetSeconds := strconv.Itoa(int(math.Ceil(res.Reset.Seconds())))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			w.Header().Set("X-RateLimit-Reset", resetSeconds)

			if !res.Allowed {
				if res.Reset > 0 {
					w.Header().Set("Retry-After", resetSeconds)
				}
				writeError(w, r, ratelimit.ErrLimitExceeded)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
	return host
}
