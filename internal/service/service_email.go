// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/internal/validators"
	"github.com/MKhiriev/agromatch/models"
)

type emailService struct {
	validator validators.Validator

	logger *logger.Logger
}

func NewEmailService(validator validators.Validator, logger *logger.Logger) EmailService {
	return &emailService{
		validator: validator,
		logger:    logger,
	}
}

// SendEmail validates msg and logs it instead of delivering it.
func (s *emailService) SendEmail(ctx context.Context, msg models.EmailMessage) (models.EmailResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, msg); err != nil {
		log.Debug().Err(err).Str("func", "*emailService.SendEmail").Msg("invalid email message")
		return models.EmailResult{}, err
	}

	log.Info().
		Str("func", "*emailService.SendEmail").
		Int("recipients", len(msg.To)).
		Str("subject", msg.Subject).
		Msg("email send simulated")

	return models.EmailResult{
		Success: true,
		Message: fmt.Sprintf("email sent to %d recipients", len(msg.To)),
	}, nil
}
