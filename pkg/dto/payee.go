package dto

import (
	"time"

	"github.com/google/uuid"
)

// PayeeCreate is a DTO for persisting a new payee.
type PayeeCreate struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Note   *string
}

// PayeeUpdate is a DTO for a partial payee update.
type PayeeUpdate struct {
	Name *string
	Note *string
}

// PayeeRead is a read-optimized view of a payee.
type PayeeRead struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
