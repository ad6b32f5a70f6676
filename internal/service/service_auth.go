// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/agromatch/internal/config"
	"github.com/MKhiriev/agromatch/internal/crypto"
	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/store"
	"github.com/MKhiriev/agromatch/internal/utils"
	"github.com/MKhiriev/agromatch/internal/validators"
	"github.com/MKhiriev/agromatch/models"
)

// authService is the concrete implementation of AuthService.
// It handles user signup, credential verification and the token lifecycle
// using a UserRepository for persistence and a PasswordHasher for
// one-way password hashes.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	ids            IDGenerator
	now            func() time.Time

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher and populated with token parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new account.
//
// Emails are compared exactly as given, so case matters. An email that is
// already registered yields store.ErrEmailAlreadyExists without any write;
// the same error is returned when a concurrent signup wins the race on the
// unique constraint.
//
// Returns:
//   - *validators.ValidationError when the request is malformed.
//   - store.ErrEmailAlreadyExists when the email is taken.
//   - a wrapped storage or hashing error otherwise.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Signup").Msg("invalid signup request")
		return models.SignupResponse{}, err
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Debug().Str("func", "*authService.Signup").Str("email", req.Email).Msg("email already registered")
		return models.SignupResponse{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Signup").Msg("user search by email failed")
		return models.SignupResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.SignupResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := a.now().UTC()
	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.SignupResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Signup").Str("user_id", user.ID).Msg("user signed up")

	return models.SignupResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Login authenticates an existing user and issues a token.
//
// An unknown email and a wrong password both return ErrInvalidCredentials so
// that callers cannot tell which accounts exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("invalid login request")
		return models.LoginResponse{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "*authService.Login").Msg("unknown email")
			return models.LoginResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("password verification failed")
		return models.LoginResponse{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("creation of token failed")
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		User: models.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Token: token.SignedString,
	}, nil
}

// Me returns the profile of the user with userID.
// A deleted or unknown user yields store.ErrUserNotFound.
func (a *authService) Me(ctx context.Context, userID string) (models.Profile, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return models.NewProfile(user), nil
}

// CreateToken issues a signed token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	claims := models.Claims{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}

	token, err := utils.GenerateJWTToken(claims, a.tokenIssuer, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
