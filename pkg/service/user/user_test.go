package user_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/moneytracker/api/internal/fixtures"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	usersvc "github.com/moneytracker/api/pkg/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMe_MissingUserIsNotFound(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	repo := fixtures.NewMockUserRepository(t)
	svc := usersvc.New(uow, slog.Default())
	id := uuid.New()

	uow.On("UserRepository").Return(repo, nil).Once()
	repo.On("Get", mock.Anything, id).Return(nil, nil).Once()

	_, err := svc.Me(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateMe(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	repo := fixtures.NewMockUserRepository(t)
	svc := usersvc.New(uow, slog.Default())
	id := uuid.New()
	name := "Dana"

	uow.On("UserRepository").Return(repo, nil).Once()
	repo.On("Update", mock.Anything, id, &dto.UserUpdate{Name: &name}).
		Return(&dto.UserRead{ID: id, Name: &name}, nil).Once()

	got, err := svc.UpdateMe(context.Background(), id, dto.UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, &name, got.Name)
}

func TestCreateUser_HashesPassword(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	repo := fixtures.NewMockUserRepository(t)
	svc := usersvc.New(uow, slog.Default())

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("UserRepository").Return(repo, nil).Once()
	repo.On("GetByEmail", mock.Anything, "eve@example.com").Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *dto.UserCreate) bool {
		return c.Email == "eve@example.com" &&
			c.Role == domain.RoleUser &&
			domain.CheckPasswordHash("correct horse", c.PasswordHash)
	})).Return(&dto.UserRead{ID: uuid.New(), Email: "eve@example.com", Role: domain.RoleUser}, nil).Once()

	got, err := svc.CreateUser(context.Background(), "Eve@Example.com", "correct horse", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "eve@example.com", got.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	repo := fixtures.NewMockUserRepository(t)
	svc := usersvc.New(uow, slog.Default())

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("UserRepository").Return(repo, nil).Once()
	repo.On("GetByEmail", mock.Anything, "eve@example.com").
		Return(&dto.UserRead{ID: uuid.New()}, nil).Once()

	_, err := svc.CreateUser(context.Background(), "eve@example.com", "correct horse", nil, domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreateUser_Validation(t *testing.T) {
	svc := usersvc.New(fixtures.NewMockUnitOfWork(t), slog.Default())

	_, err := svc.CreateUser(context.Background(), "not-an-email", "correct horse", nil, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateUser(context.Background(), "a@b.c", "short", nil, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateUser(context.Background(), "a@b.c", "correct horse", nil, "ROOT")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	hash, err := domain.HashPassword("correct horse")
	require.NoError(t, err)
	stored := &dto.UserRead{ID: uuid.New(), Email: "eve@example.com", PasswordHash: hash}

	tests := []struct {
		name     string
		found    *dto.UserRead
		password string
		wantErr  error
	}{
		{name: "valid", found: stored, password: "correct horse"},
		{name: "wrong password", found: stored, password: "battery staple", wantErr: domain.ErrInvalidCredentials},
		{name: "unknown email", found: nil, password: "correct horse", wantErr: domain.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := fixtures.NewMockUnitOfWork(t)
			repo := fixtures.NewMockUserRepository(t)
			svc := usersvc.New(uow, slog.Default())

			uow.On("UserRepository").Return(repo, nil).Once()
			repo.On("GetByEmail", mock.Anything, "eve@example.com").Return(tt.found, nil).Once()

			got, err := svc.Authenticate(context.Background(), "eve@example.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, got.ID)
		})
	}
}
