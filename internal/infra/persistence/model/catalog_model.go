package model

import "github.com/shopspring/decimal"

// CategoryModel mirrors the 'categories' table. A category holding products
// cannot be deleted; the merchant must empty it first.
type CategoryModel struct {
	ID         int64  `gorm:"column:category_id;primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(100);not null"`
	MerchantID int64  `gorm:"index;not null"`

	Products []ProductModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:NO ACTION"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Products referenced by an
// order line are kept until the line goes away.
type ProductModel struct {
	ID          int64           `gorm:"column:product_id;primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(150);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CategoryID  int64           `gorm:"index;not null"`
	MerchantID  int64           `gorm:"index;not null"`

	OrderLines []OrderLineModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:NO ACTION"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
