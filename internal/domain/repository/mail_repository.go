package repository

import (
	"context"

	"haven-booking-service/internal/domain/entity"
)

// MailRepository defines the interface for sending transactional email.
// Send returns the provider message id on success.
type MailRepository interface {
	Send(ctx context.Context, mail *entity.EmailNotification) (string, error)
}
