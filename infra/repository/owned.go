package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"gorm.io/gorm"
)

// NowFunc is the clock used for created_at and updated_at. Postgres keeps
// microseconds, so the value returned to callers equals a later read.
func NowFunc() time.Time {
	return storedTime(time.Now())
}

func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// ownedStore implements the user-scoped CRUD shared by every resource table.
// Each query filters on both id and user_id, so rows owned by another user
// behave exactly like missing rows.
type ownedStore[M any] struct {
	db    *gorm.DB
	order []string
	limit int
}

func newOwnedStore[M any](db *gorm.DB, limit int, order ...string) ownedStore[M] {
	return ownedStore[M]{db: db, order: order, limit: limit}
}

func (s ownedStore[M]) list(ctx context.Context, userID uuid.UUID) ([]M, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	for _, o := range s.order {
		q = q.Order(o)
	}
	if s.limit > 0 {
		q = q.Limit(s.limit)
	}
	var rows []M
	if err := q.Find(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return rows, nil
}

// get returns nil, nil when the row does not exist for this user.
func (s ownedStore[M]) get(ctx context.Context, userID, id uuid.UUID) (*M, error) {
	var row M
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return &row, nil
}

func (s ownedStore[M]) create(ctx context.Context, row *M) error {
	return WrapError(func() error {
		return s.db.WithContext(ctx).Create(row).Error
	})
}

// update writes the given columns and reads the row back.
// An empty column set still bumps updated_at.
func (s ownedStore[M]) update(
	ctx context.Context,
	userID, id uuid.UUID,
	columns map[string]any,
) (*M, error) {
	if columns == nil {
		columns = make(map[string]any, 1)
	}
	columns["updated_at"] = NowFunc()

	res := s.db.WithContext(ctx).
		Model(new(M)).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(columns)
	if res.Error != nil {
		return nil, MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	row, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return row, nil
}

func (s ownedStore[M]) delete(ctx context.Context, userID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(new(M))
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapSlice converts stored rows into read DTOs.
func mapSlice[M any, R any](rows []M, fn func(*M) *R) []*R {
	out := make([]*R, 0, len(rows))
	for i := range rows {
		out = append(out, fn(&rows[i]))
	}
	return out
}
