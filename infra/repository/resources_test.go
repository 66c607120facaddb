package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_ListOrderedByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE user_id = \$1 ORDER BY name,id$`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "name", "type", "currency", "balance_initial", "created_at", "updated_at",
		}).AddRow(uuid.NewString(), userID.String(), "Wallet", "CASH", "EUR", "100.5", now, now))

	got, err := repo.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.AccountTypeCash, got[0].Type)
	assert.Equal(t, "100.50", domain.FormatAmount(got[0].BalanceInitial))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateForcesOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	owner := uuid.New()

	mock.ExpectExec(`INSERT INTO "accounts"`).WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), owner, dto.AccountCreate{
		UserID:         uuid.New(),
		Name:           "Checking",
		Type:           domain.AccountTypeBank,
		Currency:       "USD",
		BalanceInitial: decimal.RequireFromString("0"),
	})
	require.NoError(t, err)
	assert.Equal(t, owner, got.UserID)
}

func TestCategoryRepository_DeleteScopedByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)
	userID, id := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM "categories" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), userID, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayeeRepository_UpdateNote(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPayeeRepository(db)
	userID, id := uuid.New(), uuid.New()
	note := "weekly groceries"
	now := time.Now().UTC()

	mock.ExpectExec(`UPDATE "payees" SET "note"=\$1,"updated_at"=\$2 WHERE id = \$3 AND user_id = \$4`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "payees" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "note", "created_at", "updated_at"}).
			AddRow(id.String(), userID.String(), "Market", note, now, now))

	got, err := repo.Update(context.Background(), userID, id, dto.PayeeUpdate{Note: &note})
	require.NoError(t, err)
	require.NotNil(t, got.Note)
	assert.Equal(t, note, *got.Note)
	require.NoError(t, mock.ExpectationsWereMet())
}
