// Package fixtures provides testify mocks of the repository layer for service
// and handler tests.
package fixtures

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/dto"
	"github.com/moneytracker/api/pkg/repository"
	"github.com/moneytracker/api/pkg/repository/account"
	"github.com/moneytracker/api/pkg/repository/category"
	"github.com/moneytracker/api/pkg/repository/payee"
	"github.com/moneytracker/api/pkg/repository/transaction"
	"github.com/moneytracker/api/pkg/repository/user"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a testify mock of repository.UnitOfWork.
// Do records the call and, when the expectation returns nil, runs fn against
// the mock itself so repository accessors keep working inside the callback.
type MockUnitOfWork struct {
	mock.Mock
}

var _ repository.UnitOfWork = (*MockUnitOfWork)(nil)

func NewMockUnitOfWork(t *testing.T) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockUnitOfWork) TransactionRepository() (transaction.Repository, error) {
	args := m.Called()
	r, _ := args.Get(0).(transaction.Repository)
	return r, args.Error(1)
}

func (m *MockUnitOfWork) AccountRepository() (account.Repository, error) {
	args := m.Called()
	r, _ := args.Get(0).(account.Repository)
	return r, args.Error(1)
}

func (m *MockUnitOfWork) CategoryRepository() (category.Repository, error) {
	args := m.Called()
	r, _ := args.Get(0).(category.Repository)
	return r, args.Error(1)
}

func (m *MockUnitOfWork) PayeeRepository() (payee.Repository, error) {
	args := m.Called()
	r, _ := args.Get(0).(payee.Repository)
	return r, args.Error(1)
}

func (m *MockUnitOfWork) UserRepository() (user.Repository, error) {
	args := m.Called()
	r, _ := args.Get(0).(user.Repository)
	return r, args.Error(1)
}

// MockTransactionRepository is a testify mock of transaction.Repository.
type MockTransactionRepository struct {
	mock.Mock
}

var _ transaction.Repository = (*MockTransactionRepository)(nil)

func NewMockTransactionRepository(t *testing.T) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionRepository) List(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]*dto.TransactionRead)
	return out, args.Error(1)
}

func (m *MockTransactionRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.TransactionRead, error) {
	args := m.Called(ctx, userID, id)
	out, _ := args.Get(0).(*dto.TransactionRead)
	return out, args.Error(1)
}

func (m *MockTransactionRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	create dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	args := m.Called(ctx, userID, create)
	out, _ := args.Get(0).(*dto.TransactionRead)
	return out, args.Error(1)
}

func (m *MockTransactionRepository) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.TransactionUpdate,
) (*dto.TransactionRead, error) {
	args := m.Called(ctx, userID, id, update)
	out, _ := args.Get(0).(*dto.TransactionRead)
	return out, args.Error(1)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

// MockAccountRepository is a testify mock of account.Repository.
type MockAccountRepository struct {
	mock.Mock
}

var _ account.Repository = (*MockAccountRepository)(nil)

func NewMockAccountRepository(t *testing.T) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) List(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]*dto.AccountRead)
	return out, args.Error(1)
}

func (m *MockAccountRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.AccountRead, error) {
	args := m.Called(ctx, userID, id)
	out, _ := args.Get(0).(*dto.AccountRead)
	return out, args.Error(1)
}

func (m *MockAccountRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	create dto.AccountCreate,
) (*dto.AccountRead, error) {
	args := m.Called(ctx, userID, create)
	out, _ := args.Get(0).(*dto.AccountRead)
	return out, args.Error(1)
}

func (m *MockAccountRepository) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.AccountUpdate,
) (*dto.AccountRead, error) {
	args := m.Called(ctx, userID, id, update)
	out, _ := args.Get(0).(*dto.AccountRead)
	return out, args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

// MockCategoryRepository is a testify mock of category.Repository.
type MockCategoryRepository struct {
	mock.Mock
}

var _ category.Repository = (*MockCategoryRepository)(nil)

func NewMockCategoryRepository(t *testing.T) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCategoryRepository) List(ctx context.Context, userID uuid.UUID) ([]*dto.CategoryRead, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]*dto.CategoryRead)
	return out, args.Error(1)
}

func (m *MockCategoryRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.CategoryRead, error) {
	args := m.Called(ctx, userID, id)
	out, _ := args.Get(0).(*dto.CategoryRead)
	return out, args.Error(1)
}

func (m *MockCategoryRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	create dto.CategoryCreate,
) (*dto.CategoryRead, error) {
	args := m.Called(ctx, userID, create)
	out, _ := args.Get(0).(*dto.CategoryRead)
	return out, args.Error(1)
}

func (m *MockCategoryRepository) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.CategoryUpdate,
) (*dto.CategoryRead, error) {
	args := m.Called(ctx, userID, id, update)
	out, _ := args.Get(0).(*dto.CategoryRead)
	return out, args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

// MockPayeeRepository is a testify mock of payee.Repository.
type MockPayeeRepository struct {
	mock.Mock
}

var _ payee.Repository = (*MockPayeeRepository)(nil)

func NewMockPayeeRepository(t *testing.T) *MockPayeeRepository {
	m := &MockPayeeRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPayeeRepository) List(ctx context.Context, userID uuid.UUID) ([]*dto.PayeeRead, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]*dto.PayeeRead)
	return out, args.Error(1)
}

func (m *MockPayeeRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.PayeeRead, error) {
	args := m.Called(ctx, userID, id)
	out, _ := args.Get(0).(*dto.PayeeRead)
	return out, args.Error(1)
}

func (m *MockPayeeRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	create dto.PayeeCreate,
) (*dto.PayeeRead, error) {
	args := m.Called(ctx, userID, create)
	out, _ := args.Get(0).(*dto.PayeeRead)
	return out, args.Error(1)
}

func (m *MockPayeeRepository) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.PayeeUpdate,
) (*dto.PayeeRead, error) {
	args := m.Called(ctx, userID, id, update)
	out, _ := args.Get(0).(*dto.PayeeRead)
	return out, args.Error(1)
}

func (m *MockPayeeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

// MockUserRepository is a testify mock of user.Repository.
type MockUserRepository struct {
	mock.Mock
}

var _ user.Repository = (*MockUserRepository)(nil)

func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Create(ctx context.Context, create *dto.UserCreate) (*dto.UserRead, error) {
	args := m.Called(ctx, create)
	out, _ := args.Get(0).(*dto.UserRead)
	return out, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) (*dto.UserRead, error) {
	args := m.Called(ctx, id, update)
	out, _ := args.Get(0).(*dto.UserRead)
	return out, args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.UserRead)
	return out, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	args := m.Called(ctx, email)
	out, _ := args.Get(0).(*dto.UserRead)
	return out, args.Error(1)
}
