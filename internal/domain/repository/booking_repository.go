package repository

import (
	"context"

	"haven-booking-service/internal/domain/entity"
)

// BookingRepository defines the interface for booking storage operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) (string, error)
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	List(ctx context.Context) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
