package dto

import (
	"time"

	"github.com/google/uuid"
)

// CategoryCreate is a DTO for persisting a new category.
type CategoryCreate struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Name     string
	IsIncome bool
}

// CategoryUpdate is a DTO for a partial category update.
type CategoryUpdate struct {
	Name     *string
	IsIncome *bool
}

// CategoryRead is a read-optimized view of a category.
type CategoryRead struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	IsIncome  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
