package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	repoaccount "github.com/moneytracker/api/pkg/repository/account"
	"gorm.io/gorm"
)

type accountRepository struct {
	store ownedStore[Account]
}

// NewAccountRepository creates an account repository on the given session.
func NewAccountRepository(db *gorm.DB) repoaccount.Repository {
	return &accountRepository{store: newOwnedStore[Account](db, 0, "name", "id")}
}

func (r *accountRepository) List(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	rows, err := r.store.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapSlice(rows, mapAccountToRead), nil
}

func (r *accountRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.AccountRead, error) {
	row, err := r.store.get(ctx, userID, id)
	if err != nil || row == nil {
		return nil, err
	}
	return mapAccountToRead(row), nil
}

func (r *accountRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	create dto.AccountCreate,
) (*dto.AccountRead, error) {
	row := Account{
		ID:             create.ID,
		UserID:         userID,
		Name:           create.Name,
		Type:           string(create.Type),
		Currency:       create.Currency,
		BalanceInitial: create.BalanceInitial,
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if err := r.store.create(ctx, &row); err != nil {
		return nil, err
	}
	return mapAccountToRead(&row), nil
}

func (r *accountRepository) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.AccountUpdate,
) (*dto.AccountRead, error) {
	columns := make(map[string]any)
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Type != nil {
		columns["type"] = string(*update.Type)
	}
	if update.Currency != nil {
		columns["currency"] = *update.Currency
	}
	if update.BalanceInitial != nil {
		columns["balance_initial"] = *update.BalanceInitial
	}
	row, err := r.store.update(ctx, userID, id, columns)
	if err != nil {
		return nil, err
	}
	return mapAccountToRead(row), nil
}

func (r *accountRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.store.delete(ctx, userID, id)
}

func mapAccountToRead(a *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:             a.ID,
		UserID:         a.UserID,
		Name:           a.Name,
		Type:           domain.AccountType(a.Type),
		Currency:       a.Currency,
		BalanceInitial: domain.NormalizeAmount(a.BalanceInitial),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
