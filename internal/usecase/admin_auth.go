package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"haven-booking-service/internal/domain/entity"
	"haven-booking-service/internal/domain/repository"
	"haven-booking-service/pkg/auth"
	"haven-booking-service/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a failed sign-in. It deliberately
// does not distinguish unknown emails from wrong passwords.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminAuth signs operators in to the admin dashboard
type AdminAuth struct {
	adminRepo repository.AdminRepository
	jwtSecret []byte
	jwtExpiry time.Duration
	logger    logger.Logger
}

// NewAdminAuth creates a new admin auth usecase
func NewAdminAuth(adminRepo repository.AdminRepository, jwtSecret string, jwtExpiry time.Duration, logger logger.Logger) *AdminAuth {
	return &AdminAuth{
		adminRepo: adminRepo,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: jwtExpiry,
		logger:    logger,
	}
}

// SignIn checks the credentials and returns a session token
func (a *AdminAuth) SignIn(ctx context.Context, email, password string) (string, error) {
	admin, err := a.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", &entity.PersistenceError{Op: "find admin", Err: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := auth.CreateAccessToken(a.jwtSecret, strconv.FormatUint(uint64(admin.ID), 10), admin.Email, a.jwtExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Admin signed in", "email", admin.Email)
	return token, nil
}

// Verify validates a session token and returns its claims
func (a *AdminAuth) Verify(tokenStr string) (*auth.Claims, error) {
	return auth.ParseValidate(a.jwtSecret, tokenStr)
}

// Bootstrap creates the initial admin account when the table is empty and
// bootstrap credentials are configured.
func (a *AdminAuth) Bootstrap(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := a.adminRepo.Count(ctx)
	if err != nil {
		return &entity.PersistenceError{Op: "count admins", Err: err}
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.adminRepo.Create(ctx, &entity.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
	}); err != nil {
		return &entity.PersistenceError{Op: "create admin", Err: err}
	}

	a.logger.Info("Bootstrap admin created", "email", email)
	return nil
}
