package repository

import (
	"context"
	"errors"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists products.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	// FindByIDs returns the products found among ids, keyed by ID.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByMerchantID(ctx context.Context, merchantID int64) ([]*entity.Product, error)
	FindByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	// Delete returns ErrProductNotFound when nothing was removed.
	Delete(ctx context.Context, id int64) error
}
