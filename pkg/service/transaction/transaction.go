// Package transaction provides business logic for the transaction ledger.
// It owns the one real piece of domain logic in the CRUD path: amounts arrive
// as JSON numbers and are rounded to two decimal places before persistence.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	"github.com/moneytracker/api/pkg/repository"
)

// Service orchestrates transaction reads and writes for one authenticated user.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// List returns the caller's most recent transactions, newest first.
func (s *Service) List(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, userID)
}

// Get returns nil, nil when the caller owns no transaction with that id.
func (s *Service) Get(
	ctx context.Context,
	userID, id uuid.UUID,
) (*dto.TransactionRead, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, userID, id)
}

// Create rounds the amount and persists a transaction owned by userID.
// The referenced account, category and payee must belong to the same user.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	cmd dto.TransactionCommand,
) (tx *dto.TransactionRead, err error) {
	log := s.logger.With("user_id", userID)
	cmd.Currency = strings.ToUpper(cmd.Currency)
	if err = validateKind(cmd.Type, cmd.Currency); err != nil {
		return nil, err
	}
	amount, err := domain.NewAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	create := dto.TransactionCreate{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   cmd.AccountID,
		Type:        cmd.Type,
		Amount:      amount,
		Currency:    cmd.Currency,
		OccurredAt:  cmd.OccurredAt.UTC(),
		Description: cmd.Description,
		Note:        cmd.Note,
		CategoryID:  cmd.CategoryID,
		PayeeID:     cmd.PayeeID,
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := checkReferences(ctx, uow, userID, &create.AccountID, create.CategoryID, create.PayeeID); err != nil {
			return err
		}
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err = repo.Create(ctx, userID, create)
		return err
	})
	if err != nil {
		log.Error("Create transaction failed", "error", err)
		return nil, err
	}
	log.Info("Transaction created", "transaction_id", tx.ID, "amount", domain.FormatAmount(tx.Amount))
	return tx, nil
}

// Update applies a partial change. Only a supplied amount is re-rounded; an
// empty patch still refreshes updated_at.
func (s *Service) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	patch dto.TransactionPatch,
) (tx *dto.TransactionRead, err error) {
	log := s.logger.With("user_id", userID, "transaction_id", id)
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, *patch.Type)
	}
	if patch.Currency != nil {
		code := strings.ToUpper(*patch.Currency)
		if !domain.IsValidCurrencyCode(code) {
			return nil, fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrValidation)
		}
		patch.Currency = &code
	}

	update := dto.TransactionUpdate{
		Type:        patch.Type,
		Currency:    patch.Currency,
		Description: patch.Description,
		Note:        patch.Note,
		CategoryID:  patch.CategoryID,
		PayeeID:     patch.PayeeID,
	}
	if patch.Amount != nil {
		amount, err := domain.NewAmount(*patch.Amount)
		if err != nil {
			return nil, err
		}
		update.Amount = &amount
	}
	if patch.OccurredAt != nil {
		at := patch.OccurredAt.UTC()
		update.OccurredAt = &at
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := checkReferences(ctx, uow, userID, nil, update.CategoryID, update.PayeeID); err != nil {
			return err
		}
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err = repo.Update(ctx, userID, id, update)
		return err
	})
	if err != nil {
		log.Error("Update transaction failed", "error", err)
		return nil, err
	}
	log.Info("Transaction updated", "empty_patch", update.IsEmpty())
	return tx, nil
}

// Delete removes the caller's transaction; domain.ErrNotFound when absent.
func (s *Service) Delete(
	ctx context.Context,
	userID, id uuid.UUID,
) error {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, userID, id); err != nil {
		s.logger.Error("Delete transaction failed", "user_id", userID, "transaction_id", id, "error", err)
		return err
	}
	s.logger.Info("Transaction deleted", "user_id", userID, "transaction_id", id)
	return nil
}

func validateKind(t domain.TransactionType, currency string) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, t)
	}
	if !domain.IsValidCurrencyCode(currency) {
		return fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrValidation)
	}
	return nil
}

// checkReferences rejects ids that point at rows owned by someone else.
// Foreign keys alone would accept another user's account.
func checkReferences(
	ctx context.Context,
	uow repository.UnitOfWork,
	userID uuid.UUID,
	accountID, categoryID, payeeID *uuid.UUID,
) error {
	if accountID != nil {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acc, err := repo.Get(ctx, userID, *accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return fmt.Errorf("%w: account %s", domain.ErrInvalidReference, *accountID)
		}
	}
	if categoryID != nil {
		repo, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		cat, err := repo.Get(ctx, userID, *categoryID)
		if err != nil {
			return err
		}
		if cat == nil {
			return fmt.Errorf("%w: category %s", domain.ErrInvalidReference, *categoryID)
		}
	}
	if payeeID != nil {
		repo, err := uow.PayeeRepository()
		if err != nil {
			return err
		}
		p, err := repo.Get(ctx, userID, *payeeID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: payee %s", domain.ErrInvalidReference, *payeeID)
		}
	}
	return nil
}
