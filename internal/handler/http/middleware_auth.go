// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/utils"
)

// auth is an HTTP middleware that enforces token-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the verified
// claims in the request context under [utils.ClaimsCtxKey] before delegating
// to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The header is absent, is not a Bearer header, or carries an empty
//     token ([ErrTokenNotProvided]).
//   - The token is expired, carries a bad signature or issuer, or cannot be
//     parsed ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no bearer token in request")
			writeError(w, r, ErrTokenNotProvided)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		// Downstream handlers read the caller from the context instead of
		// re-parsing the token.
		ctx = utils.WithClaims(ctx, token.Claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
