// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Recipient is a single addressee of an email message.
type Recipient struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

// EmailMessage is the payload of POST /api/email/send.
type EmailMessage struct {
	To      []Recipient `json:"to" validate:"required,min=1,dive"`
	Subject string      `json:"subject" validate:"required"`
	Body    string      `json:"body" validate:"required"`
}

// EmailResult reports the outcome of a simulated send.
type EmailResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
