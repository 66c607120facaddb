package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/dto"
	repopayee "github.com/moneytracker/api/pkg/repository/payee"
	"gorm.io/gorm"
)

type payeeRepository struct {
	store ownedStore[Payee]
}

// NewPayeeRepository creates a payee repository on the given session.
func NewPayeeRepository(db *gorm.DB) repopayee.Repository {
	return &payeeRepository{store: newOwnedStore[Payee](db, 0, "name", "id")}
}

func (r *payeeRepository) List(ctx context.Context, userID uuid.UUID) ([]*dto.PayeeRead, error) {
	rows, err := r.store.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapSlice(rows, mapPayeeToRead), nil
}

func (r *payeeRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.PayeeRead, error) {
	row, err := r.store.get(ctx, userID, id)
	if err != nil || row == nil {
		return nil, err
	}
	return mapPayeeToRead(row), nil
}

func (r *payeeRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	create dto.PayeeCreate,
) (*dto.PayeeRead, error) {
	row := Payee{ID: create.ID, UserID: userID, Name: create.Name, Note: create.Note}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if err := r.store.create(ctx, &row); err != nil {
		return nil, err
	}
	return mapPayeeToRead(&row), nil
}

func (r *payeeRepository) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.PayeeUpdate,
) (*dto.PayeeRead, error) {
	columns := make(map[string]any)
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Note != nil {
		columns["note"] = *update.Note
	}
	row, err := r.store.update(ctx, userID, id, columns)
	if err != nil {
		return nil, err
	}
	return mapPayeeToRead(row), nil
}

func (r *payeeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.store.delete(ctx, userID, id)
}

func mapPayeeToRead(p *Payee) *dto.PayeeRead {
	return &dto.PayeeRead{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
