package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/shopspring/decimal"
)

// TransactionCommand is the validated create input handed to the service.
// Amount is still the raw JSON number; the service rounds it.
type TransactionCommand struct {
	AccountID   uuid.UUID
	Type        domain.TransactionType
	Amount      float64
	Currency    string
	OccurredAt  time.Time
	Description *string
	Note        *string
	CategoryID  *uuid.UUID
	PayeeID     *uuid.UUID
}

// TransactionPatch is the validated partial-update input handed to the service.
// A nil field means "not supplied".
type TransactionPatch struct {
	Type        *domain.TransactionType
	Amount      *float64
	Currency    *string
	OccurredAt  *time.Time
	Description *string
	Note        *string
	CategoryID  *uuid.UUID
	PayeeID     *uuid.UUID
}

// TransactionCreate is a DTO for persisting a new transaction.
type TransactionCreate struct {
	ID          uuid.UUID
	UserID      uuid.UUID // always the authenticated caller
	AccountID   uuid.UUID
	Type        domain.TransactionType
	Amount      decimal.Decimal // already rounded to two places
	Currency    string
	OccurredAt  time.Time
	Description *string
	Note        *string
	CategoryID  *uuid.UUID
	PayeeID     *uuid.UUID
}

// TransactionUpdate is a DTO for updating one or more fields of a transaction.
// UserID and AccountID are deliberately absent: both are fixed at creation.
type TransactionUpdate struct {
	Type        *domain.TransactionType
	Amount      *decimal.Decimal
	Currency    *string
	OccurredAt  *time.Time
	Description *string
	Note        *string
	CategoryID  *uuid.UUID
	PayeeID     *uuid.UUID
}

// IsEmpty reports whether no field is set.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Type == nil && u.Amount == nil && u.Currency == nil &&
		u.OccurredAt == nil && u.Description == nil && u.Note == nil &&
		u.CategoryID == nil && u.PayeeID == nil
}

// TransactionRead is a read-optimized DTO for transaction queries and API responses.
type TransactionRead struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   uuid.UUID
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Currency    string
	OccurredAt  time.Time
	Description *string
	Note        *string
	CategoryID  *uuid.UUID
	PayeeID     *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
