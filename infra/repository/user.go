package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	repouser "github.com/moneytracker/api/pkg/repository/user"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository on the given session.
func NewUserRepository(db *gorm.DB) repouser.Repository {
	return &userRepository{db: db}
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, create *dto.UserCreate) (*dto.UserRead, error) {
	row := User{
		ID:           create.ID,
		Email:        domain.NormalizeEmail(create.Email),
		PasswordHash: create.PasswordHash,
		Name:         create.Name,
		Role:         string(create.Role),
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.Role == "" {
		row.Role = string(domain.RoleUser)
	}
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	}); err != nil {
		return nil, err
	}
	return mapUserToRead(&row), nil
}

// Update implements user.Repository.
func (r *userRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.UserUpdate,
) (*dto.UserRead, error) {
	columns := map[string]any{"updated_at": time.Now().UTC()}
	if update != nil && update.Name != nil {
		columns["name"] = *update.Name
	}
	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return nil, MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	u, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Get implements user.Repository.
func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	return r.findOne(ctx, "id = ?", id)
}

// GetByEmail implements user.Repository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	return r.findOne(ctx, "email = ?", domain.NormalizeEmail(email))
}

func (r *userRepository) findOne(ctx context.Context, query string, args ...any) (*dto.UserRead, error) {
	var row User
	err := r.db.WithContext(ctx).Where(query, args...).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapUserToRead(&row), nil
}

func mapUserToRead(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         domain.Role(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
