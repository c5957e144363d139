package entity

// Category groups a merchant's products.
type Category struct {
	ID         int64
	Name       string
	MerchantID int64
}
