package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/shopspring/decimal"
)

// AccountCommand is the validated create input for an account.
type AccountCommand struct {
	Name           string
	Type           domain.AccountType
	Currency       string
	BalanceInitial float64
}

// AccountPatch is the validated partial-update input for an account.
type AccountPatch struct {
	Name           *string
	Type           *domain.AccountType
	Currency       *string
	BalanceInitial *float64
}

// AccountCreate is a DTO for persisting a new account.
type AccountCreate struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           domain.AccountType
	Currency       string
	BalanceInitial decimal.Decimal
}

// AccountUpdate is a DTO for a partial account update.
type AccountUpdate struct {
	Name           *string
	Type           *domain.AccountType
	Currency       *string
	BalanceInitial *decimal.Decimal
}

// AccountRead is a read-optimized view of an account.
type AccountRead struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           domain.AccountType
	Currency       string
	BalanceInitial decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
