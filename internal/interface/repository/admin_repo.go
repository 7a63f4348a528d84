package repository

import (
	"context"
	"errors"
	"time"

	"haven-booking-service/internal/domain/entity"
	"haven-booking-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAdminRepository implements the AdminRepository interface
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GORM admin repository
func NewGormAdminRepository(db *gorm.DB) (repository.AdminRepository, error) {
	if err := db.AutoMigrate(&AdminUsers{}); err != nil {
		return nil, err
	}
	return &GormAdminRepository{
		db: db,
	}, nil
}

// AdminUsers GORM model for database mapping
type AdminUsers struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"column:email;unique"`
	PasswordHash string `gorm:"column:password_hash"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (AdminUsers) TableName() string {
	return "admin_users"
}

// FindByEmail finds an admin account by email
func (r *GormAdminRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var admin AdminUsers
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&admin)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, result.Error
	}

	// Convert GORM model to domain entity
	return &entity.AdminUser{
		ID:           admin.ID,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}, nil
}

// Create inserts a new admin account
func (r *GormAdminRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	admin := AdminUsers{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}
	result := r.db.WithContext(ctx).Create(&admin)
	if result.Error != nil {
		return result.Error
	}
	user.ID = admin.ID
	return nil
}

// Count returns the number of admin accounts
func (r *GormAdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&AdminUsers{}).Count(&count)
	return count, result.Error
}
