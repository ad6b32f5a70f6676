// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every AgroMatch token.
//
// Besides the registered claims (iss, sub, iat, exp) it carries the user's
// identity so that authenticated handlers do not need a lookup to know who
// is calling. The subject claim always equals ID.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`

	jwt.RegisteredClaims
}

// Validate is called by the jwt parser after the registered claims have
// been checked. A token without a user id is never valid.
func (c Claims) Validate() error {
	if c.ID == "" {
		return errors.New("token has no user id")
	}
	return nil
}

// Token wraps a parsed or freshly signed JWT.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}
