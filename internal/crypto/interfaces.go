// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing used by the credential flows.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks one-way password hashes.
type PasswordHasher interface {
	// Hash returns a salted hash of plain. Two calls with the same input
	// return different hashes.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches hash. A mismatch is (false, nil);
	// an error means hash could not be checked at all (e.g. it is malformed).
	Verify(plain, hash string) (bool, error)
}
