package category

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/dto"
)

// Repository defines the interface for category data access, scoped by owning user.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*dto.CategoryRead, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.CategoryRead, error)
	Create(ctx context.Context, userID uuid.UUID, create dto.CategoryCreate) (*dto.CategoryRead, error)
	Update(ctx context.Context, userID, id uuid.UUID, update dto.CategoryUpdate) (*dto.CategoryRead, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
