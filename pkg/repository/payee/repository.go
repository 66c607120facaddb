package payee

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/dto"
)

// Repository defines the interface for payee data access, scoped by owning user.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*dto.PayeeRead, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.PayeeRead, error)
	Create(ctx context.Context, userID uuid.UUID, create dto.PayeeCreate) (*dto.PayeeRead, error)
	Update(ctx context.Context, userID, id uuid.UUID, update dto.PayeeUpdate) (*dto.PayeeRead, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
