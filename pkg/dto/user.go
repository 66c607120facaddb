package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         *string
	Role         domain.Role
}

// UserUpdate represents the data that can be updated for a user.
type UserUpdate struct {
	Name *string
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         *string
	Role         domain.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
