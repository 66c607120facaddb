// Package payee provides CRUD for counterparties of transactions.
package payee

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/dto"
	"github.com/moneytracker/api/pkg/repository"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*dto.PayeeRead, error) {
	repo, err := s.uow.PayeeRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*dto.PayeeRead, error) {
	repo, err := s.uow.PayeeRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, create dto.PayeeCreate) (*dto.PayeeRead, error) {
	repo, err := s.uow.PayeeRepository()
	if err != nil {
		return nil, err
	}
	create.ID = uuid.New()
	create.UserID = userID
	p, err := repo.Create(ctx, userID, create)
	if err != nil {
		s.logger.Error("Create payee failed", "user_id", userID, "error", err)
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.PayeeUpdate,
) (*dto.PayeeRead, error) {
	repo, err := s.uow.PayeeRepository()
	if err != nil {
		return nil, err
	}
	return repo.Update(ctx, userID, id, update)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	repo, err := s.uow.PayeeRepository()
	if err != nil {
		return err
	}
	return repo.Delete(ctx, userID, id)
}
