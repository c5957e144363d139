package repository

import (
	"context"
	"errors"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
)

// ErrCategoryNotFound is returned when no category matches the lookup.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository persists product categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindByMerchantID(ctx context.Context, merchantID int64) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	// Delete returns ErrCategoryNotFound when nothing was removed.
	Delete(ctx context.Context, id int64) error
}
