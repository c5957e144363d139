package postgres

import (
	"context"

	"github.com/thenextech/shoploc-back-end/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager wraps db so use cases can group repository calls.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute delegates to gorm.DB.Transaction, which also rolls back when fn panics.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepos{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		// Domain errors from fn reach the caller unwrapped.
		return fnErr
	default:
		return errors.Wrap(err, "transaction failed")
	}
}

// txRepos binds every repository to one open transaction.
type txRepos struct {
	tx *gorm.DB
}

func (r txRepos) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepos) NewCategoryRepository() repository.CategoryRepository {
	return NewCategoryRepository(r.tx)
}

func (r txRepos) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r txRepos) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(r.tx)
}

func (r txRepos) NewOrderLineRepository() repository.OrderLineRepository {
	return NewOrderLineRepository(r.tx)
}
