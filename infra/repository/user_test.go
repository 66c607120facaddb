package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "password_hash", "name", "role", "created_at", "updated_at"}

func TestUserRepository_CreateDefaultsRoleAndNormalizesEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &dto.UserCreate{
		Email:        "  Alice@Example.COM ",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, domain.RoleUser, got.Role)
	assert.NotEqual(t, uuid.Nil, got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "bob@example.com", "hash", "Bob", "ADMIN", now, now))

	got, err := repo.GetByEmail(context.Background(), "Bob@Example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, domain.RoleAdmin, got.Role)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Bob", *got.Name)
}

func TestUserRepository_GetMissingReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	got, err := repo.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_UpdateMissingIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	name := "Carol"

	mock.ExpectExec(`UPDATE "users" SET "name"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), uuid.New(), &dto.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
