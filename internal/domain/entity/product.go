package entity

import "github.com/shopspring/decimal"

// Product is an item sold by a merchant inside one of its categories.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  int64
	MerchantID  int64
}
