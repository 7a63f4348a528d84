package repository

import (
	"context"

	"haven-booking-service/internal/domain/entity"
)

// MessageRepository defines the interface for contact message storage operations
type MessageRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) (string, error)
	FindByID(ctx context.Context, id string) (*entity.ContactMessage, error)
	List(ctx context.Context) ([]*entity.ContactMessage, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
