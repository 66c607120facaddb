package repository

import (
	"context"

	"github.com/moneytracker/api/pkg/repository"
	"github.com/moneytracker/api/pkg/repository/account"
	"github.com/moneytracker/api/pkg/repository/category"
	"github.com/moneytracker/api/pkg/repository/payee"
	"github.com/moneytracker/api/pkg/repository/transaction"
	"github.com/moneytracker/api/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories handed out inside Do share the transaction; outside Do they use
// the pool directly.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// TransactionRepository returns a transaction repository bound to the current session.
func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	return NewTransactionRepository(u.session()), nil
}

// AccountRepository returns an account repository bound to the current session.
func (u *UoW) AccountRepository() (account.Repository, error) {
	return NewAccountRepository(u.session()), nil
}

// CategoryRepository returns a category repository bound to the current session.
func (u *UoW) CategoryRepository() (category.Repository, error) {
	return NewCategoryRepository(u.session()), nil
}

// PayeeRepository returns a payee repository bound to the current session.
func (u *UoW) PayeeRepository() (payee.Repository, error) {
	return NewPayeeRepository(u.session()), nil
}

// UserRepository returns a user repository bound to the current session.
func (u *UoW) UserRepository() (user.Repository, error) {
	return NewUserRepository(u.session()), nil
}
