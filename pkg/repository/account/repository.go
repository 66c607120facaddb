package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/dto"
)

// Repository defines the interface for account data access, scoped by owning user.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error)
	// Get returns nil, nil when the user has no such account.
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.AccountRead, error)
	Create(ctx context.Context, userID uuid.UUID, create dto.AccountCreate) (*dto.AccountRead, error)
	Update(ctx context.Context, userID, id uuid.UUID, update dto.AccountUpdate) (*dto.AccountRead, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
