// Package category provides CRUD for income and expense categories.
package category

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

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*dto.CategoryRead, error) {
	repo, err := s.uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*dto.CategoryRead, error) {
	repo, err := s.uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, create dto.CategoryCreate) (*dto.CategoryRead, error) {
	repo, err := s.uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	create.ID = uuid.New()
	create.UserID = userID
	c, err := repo.Create(ctx, userID, create)
	if err != nil {
		s.logger.Error("Create category failed", "user_id", userID, "error", err)
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.CategoryUpdate,
) (*dto.CategoryRead, error) {
	repo, err := s.uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	return repo.Update(ctx, userID, id, update)
}

// Delete removes the category; transactions pointing at it keep a null category.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	repo, err := s.uow.CategoryRepository()
	if err != nil {
		return err
	}
	return repo.Delete(ctx, userID, id)
}
