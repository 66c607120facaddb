package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	repotx "github.com/moneytracker/api/pkg/repository/transaction"
	"gorm.io/gorm"
)

type transactionRepository struct {
	store ownedStore[Transaction]
}

// NewTransactionRepository creates a transaction repository on the given session.
func NewTransactionRepository(db *gorm.DB) repotx.Repository {
	return &transactionRepository{
		store: newOwnedStore[Transaction](db, repotx.ListLimit, "occurred_at DESC", "id"),
	}
}

// List implements transaction.Repository.
func (r *transactionRepository) List(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	rows, err := r.store.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapSlice(rows, mapTransactionToRead), nil
}

// Get implements transaction.Repository.
func (r *transactionRepository) Get(
	ctx context.Context,
	userID, id uuid.UUID,
) (*dto.TransactionRead, error) {
	row, err := r.store.get(ctx, userID, id)
	if err != nil || row == nil {
		return nil, err
	}
	return mapTransactionToRead(row), nil
}

// Create implements transaction.Repository.
func (r *transactionRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	create dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	row := mapTransactionCreateToModel(create)
	row.UserID = userID
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.CreatedAt = NowFunc()
	row.UpdatedAt = row.CreatedAt
	if err := r.store.create(ctx, &row); err != nil {
		return nil, err
	}
	return mapTransactionToRead(&row), nil
}

// Update implements transaction.Repository.
func (r *transactionRepository) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.TransactionUpdate,
) (*dto.TransactionRead, error) {
	row, err := r.store.update(ctx, userID, id, mapTransactionUpdateToColumns(update))
	if err != nil {
		return nil, err
	}
	return mapTransactionToRead(row), nil
}

// Delete implements transaction.Repository.
func (r *transactionRepository) Delete(
	ctx context.Context,
	userID, id uuid.UUID,
) error {
	return r.store.delete(ctx, userID, id)
}

// --- Mappers ---

func mapTransactionCreateToModel(create dto.TransactionCreate) Transaction {
	return Transaction{
		ID:          create.ID,
		UserID:      create.UserID,
		AccountID:   create.AccountID,
		Type:        string(create.Type),
		Amount:      create.Amount,
		Currency:    create.Currency,
		OccurredAt:  storedTime(create.OccurredAt),
		Description: create.Description,
		Note:        create.Note,
		CategoryID:  create.CategoryID,
		PayeeID:     create.PayeeID,
	}
}

func mapTransactionUpdateToColumns(update dto.TransactionUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Type != nil {
		updates["type"] = string(*update.Type)
	}
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Currency != nil {
		updates["currency"] = *update.Currency
	}
	if update.OccurredAt != nil {
		updates["occurred_at"] = storedTime(*update.OccurredAt)
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Note != nil {
		updates["note"] = *update.Note
	}
	if update.CategoryID != nil {
		updates["category_id"] = *update.CategoryID
	}
	if update.PayeeID != nil {
		updates["payee_id"] = *update.PayeeID
	}
	return updates
}

func mapTransactionToRead(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:          tx.ID,
		UserID:      tx.UserID,
		AccountID:   tx.AccountID,
		Type:        domain.TransactionType(tx.Type),
		Amount:      domain.NormalizeAmount(tx.Amount),
		Currency:    tx.Currency,
		OccurredAt:  tx.OccurredAt,
		Description: tx.Description,
		Note:        tx.Note,
		CategoryID:  tx.CategoryID,
		PayeeID:     tx.PayeeID,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}
