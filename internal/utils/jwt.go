// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/agromatch/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token carrying the
// user's identity claims.
//
// Registered claims are filled in from the arguments:
//   - Issuer    (iss): issuer
//   - Subject   (sub): claims.ID
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus duration
//
// issuer, duration, signKey and claims.ID are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.Claims{ID: id}, "agromatch", time.Now(), 7*24*time.Hour, "secret")
func GenerateJWTToken(claims models.Claims, issuer string, issuedAt time.Time, duration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || duration <= 0 || signKey == "" || claims.ID == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.ID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - HMAC signing method and signature verification with signKey
//   - Issuer (iss) claim check against issuer
//   - Expiration (exp) claim presence and check
//   - presence of the user id claim
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.Token, error) {
	var claims models.Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errors.New("invalid authorization header")
	}
	return token, nil
}
