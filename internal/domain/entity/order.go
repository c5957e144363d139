package entity

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order belongs to a user and owns its lines.
type Order struct {
	ID        int64
	UserID    int64
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	Lines     []OrderLine
}

// OrderLine is one product and quantity. OrderID is nil for a line not yet
// attached to an order.
type OrderLine struct {
	ID        int64
	OrderID   *int64
	ProductID int64
	Quantity  int
}
