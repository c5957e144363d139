package model

import "time"

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID        int64  `gorm:"column:order_id;primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index;not null"`
	Status    string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_lines' table. OrderID is nullable.
type OrderLineModel struct {
	ID        int64  `gorm:"column:order_line_id;primaryKey;autoIncrement"`
	OrderID   *int64 `gorm:"index"`
	ProductID int64  `gorm:"index;not null"`
	Quantity  int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
