package usecase

import (
	"context"

	"meeting-notes-backend/pkg/mailer"
)

// EmailUsecase defines the interface for email use cases
type EmailUsecase interface {
	SendSummary(ctx context.Context, summary string, recipients []string, subject string) error
}

// Sender delivers a composed message. *mailer.Relay implements it.
type Sender interface {
	Send(msg *mailer.Message) error
}

// RelayConfig is the part of the process configuration the email path reads.
type RelayConfig struct {
	Server   string
	Port     int
	Username string
	Password string
}
