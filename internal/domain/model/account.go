package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the login credential of a gym owner. Login is a lowercased e-mail address.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}

// Admin is the gym owner profile attached to a user account. It is never deleted.
type Admin struct {
	ID         uuid.UUID
	UserID     int64
	Name       string
	GymName    string
	GymAddress string
	PhotoPath  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
