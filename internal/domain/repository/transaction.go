package repository

import "context"

// TransactionManager runs a unit of work atomically. Multi-row writes such as
// placing an order line and adjusting stock go through it.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share the surrounding transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCategoryRepository() CategoryRepository
	NewProductRepository() ProductRepository
	NewOrderRepository() OrderRepository
	NewOrderLineRepository() OrderLineRepository
}
