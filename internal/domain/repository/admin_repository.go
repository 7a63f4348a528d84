package repository

import (
	"context"

	"haven-booking-service/internal/domain/entity"
)

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	Create(ctx context.Context, user *entity.AdminUser) error
	Count(ctx context.Context) (int64, error)
}
