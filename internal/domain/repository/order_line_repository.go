package repository

import (
	"context"
	"errors"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
)

// ErrOrderLineNotFound is returned when no order line matches the lookup.
var ErrOrderLineNotFound = errors.New("order line not found")

// OrderLineRepository persists order lines.
type OrderLineRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.OrderLine, error)
	FindAll(ctx context.Context) ([]*entity.OrderLine, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderLine, error)
	// FindByMerchantID returns the lines whose product belongs to merchantID.
	FindByMerchantID(ctx context.Context, merchantID int64) ([]*entity.OrderLine, error)
	Create(ctx context.Context, line *entity.OrderLine) error
	Update(ctx context.Context, line *entity.OrderLine) error
	// Delete returns ErrOrderLineNotFound when nothing was removed.
	Delete(ctx context.Context, id int64) error
}
