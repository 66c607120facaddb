package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/dto"
)

// ListLimit caps how many transactions List returns.
const ListLimit = 50

// Repository defines the interface for transaction data access.
// Every method is scoped by the owning user; a row that belongs to another
// user is indistinguishable from a row that does not exist.
type Repository interface {
	// List returns the caller's ListLimit most recent transactions, newest occurredAt first.
	List(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error)

	// Get returns the transaction, or nil (and no error) when the user has no such row.
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.TransactionRead, error)

	// Create inserts a transaction owned by userID; userID overrides create.UserID.
	Create(ctx context.Context, userID uuid.UUID, create dto.TransactionCreate) (*dto.TransactionRead, error)

	// Update applies the set fields and returns the stored row.
	// Returns domain.ErrNotFound when the user has no such row.
	Update(ctx context.Context, userID, id uuid.UUID, update dto.TransactionUpdate) (*dto.TransactionRead, error)

	// Delete removes the row. Returns domain.ErrNotFound when the user has no such row.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
