package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		NowFunc:                NowFunc,
	})
	require.NoError(t, err)
	return db, mock
}

var transactionColumns = []string{
	"id", "user_id", "account_id", "type", "amount", "currency", "occurred_at",
	"description", "note", "category_id", "payee_id", "created_at", "updated_at",
}

func transactionRow(rows *sqlmock.Rows, id, userID, accountID uuid.UUID, amount string, occurredAt time.Time) *sqlmock.Rows {
	now := time.Now().UTC()
	return rows.AddRow(
		id.String(), userID.String(), accountID.String(), "EXPENSE", amount, "USD", occurredAt,
		"coffee", nil, nil, nil, now, now,
	)
}

var gormForeignKeyErr = gorm.ErrForeignKeyViolated
