package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/dto"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) (*dto.UserRead, error)

	// Update updates an existing user by its ID and returns the stored row.
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) (*dto.UserRead, error)

	// Get retrieves a user by its ID; nil, nil when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by email; nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)
}
