package entity

import "time"

// AdminUser represents an operator account for the admin dashboard
type AdminUser struct {
	ID           uint
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
