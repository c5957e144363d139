package usecase

import (
	"context"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
)

// OrderInput defines the data required to open an order.
type OrderInput struct {
	UserID int64
}

// OrderOutput is the order returned to clients, lines included.
type OrderOutput struct {
	ID        int64              `json:"orderId"`
	UserID    int64              `json:"userId"`
	Status    entity.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Lines     []*OrderLineOutput `json:"orderLines"`
}

// OrderUsecase defines order management.
type OrderUsecase interface {
	Create(ctx context.Context, input *OrderInput) (*OrderOutput, error)
	GetByID(ctx context.Context, id int64) (*OrderOutput, error)
	ListAll(ctx context.Context) ([]*OrderOutput, error)
	ListByUser(ctx context.Context, userID int64) ([]*OrderOutput, error)
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*OrderOutput, error)
	// Delete removes the order together with its lines.
	Delete(ctx context.Context, id int64) error
}

// OrderLineInput defines the fields of an order line create or update.
type OrderLineInput struct {
	OrderID   *int64
	ProductID int64
	Quantity  int
}

// OrderLineOutput is the order line returned to clients. ProductName is
// resolved from the product at read time.
type OrderLineOutput struct {
	ID          int64  `json:"orderLineId"`
	OrderID     *int64 `json:"orderId,omitempty"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// OrderLineUsecase defines order line management.
type OrderLineUsecase interface {
	Create(ctx context.Context, input *OrderLineInput) (*OrderLineOutput, error)
	GetByID(ctx context.Context, id int64) (*OrderLineOutput, error)
	ListAll(ctx context.Context) ([]*OrderLineOutput, error)
	ListByOrder(ctx context.Context, orderID int64) ([]*OrderLineOutput, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]*OrderLineOutput, error)
	Update(ctx context.Context, id int64, input *OrderLineInput) (*OrderLineOutput, error)
	Delete(ctx context.Context, id int64) error
}
