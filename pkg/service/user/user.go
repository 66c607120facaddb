// Package user provides business logic for user profiles and credentials.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	"github.com/moneytracker/api/pkg/repository"
)

// dummyHash keeps Authenticate's timing the same for unknown emails.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Service provides business logic for user operations.
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

// Me returns the authenticated user's profile.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*dto.UserRead, error) {
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}
	u, err := repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// UpdateMe changes the display name of the authenticated user.
func (s *Service) UpdateMe(
	ctx context.Context,
	userID uuid.UUID,
	update dto.UserUpdate,
) (*dto.UserRead, error) {
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}
	u, err := repo.Update(ctx, userID, &update)
	if err != nil {
		s.logger.Error("Update profile failed", "user_id", userID, "error", err)
		return nil, err
	}
	s.logger.Info("Profile updated", "user_id", userID)
	return u, nil
}

// CreateUser hashes the password and stores a new user.
// Returns domain.ErrAlreadyExists when the email is taken.
func (s *Service) CreateUser(
	ctx context.Context,
	email, password string,
	name *string,
	role domain.Role,
) (u *dto.UserRead, err error) {
	email = domain.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	hash, err := domain.HashPassword(password)
	if err != nil {
		if errors.Is(err, domain.ErrPasswordTooShort) {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		existing, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyExists
		}
		u, err = repo.Create(ctx, &dto.UserCreate{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: hash,
			Name:         name,
			Role:         role,
		})
		return err
	})
	if err != nil {
		s.logger.Error("Create user failed", "email", email, "error", err)
		return nil, err
	}
	s.logger.Info("User created", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// Authenticate verifies an email/password pair.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*dto.UserRead, error) {
	email = domain.NormalizeEmail(email)
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}
	u, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		_ = domain.CheckPasswordHash(password, dummyHash)
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.CheckPasswordHash(password, u.PasswordHash) {
		s.logger.Warn("Authentication failed", "user_id", u.ID)
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}
