package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/dto"
	repocategory "github.com/moneytracker/api/pkg/repository/category"
	"gorm.io/gorm"
)

type categoryRepository struct {
	store ownedStore[Category]
}

// NewCategoryRepository creates a category repository on the given session.
func NewCategoryRepository(db *gorm.DB) repocategory.Repository {
	return &categoryRepository{store: newOwnedStore[Category](db, 0, "is_income", "name", "id")}
}

func (r *categoryRepository) List(ctx context.Context, userID uuid.UUID) ([]*dto.CategoryRead, error) {
	rows, err := r.store.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapSlice(rows, mapCategoryToRead), nil
}

func (r *categoryRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.CategoryRead, error) {
	row, err := r.store.get(ctx, userID, id)
	if err != nil || row == nil {
		return nil, err
	}
	return mapCategoryToRead(row), nil
}

func (r *categoryRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	create dto.CategoryCreate,
) (*dto.CategoryRead, error) {
	row := Category{ID: create.ID, UserID: userID, Name: create.Name, IsIncome: create.IsIncome}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if err := r.store.create(ctx, &row); err != nil {
		return nil, err
	}
	return mapCategoryToRead(&row), nil
}

func (r *categoryRepository) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.CategoryUpdate,
) (*dto.CategoryRead, error) {
	columns := make(map[string]any)
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.IsIncome != nil {
		columns["is_income"] = *update.IsIncome
	}
	row, err := r.store.update(ctx, userID, id, columns)
	if err != nil {
		return nil, err
	}
	return mapCategoryToRead(row), nil
}

func (r *categoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.store.delete(ctx, userID, id)
}

func mapCategoryToRead(c *Category) *dto.CategoryRead {
	return &dto.CategoryRead{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		IsIncome:  c.IsIncome,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
