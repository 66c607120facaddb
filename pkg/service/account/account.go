// Package account provides business logic for the user's money accounts.
package account

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

// Service provides account CRUD scoped to the owning user.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*dto.AccountRead, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, userID, id)
}

// Create persists a new account; the opening balance is rounded like any amount.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	cmd dto.AccountCommand,
) (*dto.AccountRead, error) {
	cmd.Currency = strings.ToUpper(cmd.Currency)
	if !cmd.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", domain.ErrValidation, cmd.Type)
	}
	if !domain.IsValidCurrencyCode(cmd.Currency) {
		return nil, fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrValidation)
	}
	balance, err := domain.NewAmount(cmd.BalanceInitial)
	if err != nil {
		return nil, err
	}
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	acc, err := repo.Create(ctx, userID, dto.AccountCreate{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           cmd.Name,
		Type:           cmd.Type,
		Currency:       cmd.Currency,
		BalanceInitial: balance,
	})
	if err != nil {
		s.logger.Error("Create account failed", "user_id", userID, "error", err)
		return nil, err
	}
	s.logger.Info("Account created", "user_id", userID, "account_id", acc.ID)
	return acc, nil
}

func (s *Service) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	patch dto.AccountPatch,
) (*dto.AccountRead, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", domain.ErrValidation, *patch.Type)
	}
	if patch.Currency != nil {
		code := strings.ToUpper(*patch.Currency)
		if !domain.IsValidCurrencyCode(code) {
			return nil, fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrValidation)
		}
		patch.Currency = &code
	}
	update := dto.AccountUpdate{
		Name:     patch.Name,
		Type:     patch.Type,
		Currency: patch.Currency,
	}
	if patch.BalanceInitial != nil {
		b, err := domain.NewAmount(*patch.BalanceInitial)
		if err != nil {
			return nil, err
		}
		update.BalanceInitial = &b
	}
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	acc, err := repo.Update(ctx, userID, id, update)
	if err != nil {
		s.logger.Error("Update account failed", "user_id", userID, "account_id", id, "error", err)
		return nil, err
	}
	return acc, nil
}

// Delete removes the account and, through the foreign key, its transactions.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, userID, id); err != nil {
		s.logger.Error("Delete account failed", "user_id", userID, "account_id", id, "error", err)
		return err
	}
	s.logger.Info("Account deleted", "user_id", userID, "account_id", id)
	return nil
}
