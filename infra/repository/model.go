package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents a user record in the database.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Name         *string   `gorm:"size:100"`
	Role         string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Account represents an account record in the database.
type Account struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"size:100;not null"`
	Type           string          `gorm:"type:varchar(16);not null"`
	Currency       string          `gorm:"type:char(3);not null"`
	BalanceInitial decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Category represents a category record in the database.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"size:100;not null"`
	IsIncome  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payee represents a payee record in the database.
type Payee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"size:100;not null"`
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction represents a persisted financial transaction.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_occurred,priority:1"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null"`
	Type        string          `gorm:"type:varchar(16);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency    string          `gorm:"type:char(3);not null"`
	OccurredAt  time.Time       `gorm:"not null;index:idx_transactions_user_occurred,priority:2,sort:desc"`
	Description *string
	Note        *string
	CategoryID  *uuid.UUID `gorm:"type:uuid"`
	PayeeID     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
