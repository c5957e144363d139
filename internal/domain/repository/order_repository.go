package repository

import (
	"context"
	"errors"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders. Lines are loaded with the order.
type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindAll(ctx context.Context) ([]*entity.Order, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error)
	Create(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error
	// Delete removes the order and its lines. Returns ErrOrderNotFound when nothing was removed.
	Delete(ctx context.Context, id int64) error
}
