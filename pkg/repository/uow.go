package repository

import (
	"context"

	"github.com/moneytracker/api/pkg/repository/account"
	"github.com/moneytracker/api/pkg/repository/category"
	"github.com/moneytracker/api/pkg/repository/payee"
	"github.com/moneytracker/api/pkg/repository/transaction"
	"github.com/moneytracker/api/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and repository access.
//
// Do runs fn inside one database transaction; repositories obtained from the
// UnitOfWork passed to fn share that transaction. Outside Do, repositories run
// on the shared connection pool.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	TransactionRepository() (transaction.Repository, error)
	AccountRepository() (account.Repository, error)
	CategoryRepository() (category.Repository, error)
	PayeeRepository() (payee.Repository, error)
	UserRepository() (user.Repository, error)
}
