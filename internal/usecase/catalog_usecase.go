package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategoryInput defines the fields of a category create or update.
type CategoryInput struct {
	Name       string
	MerchantID int64
}

// CategoryOutput is the category returned to clients.
type CategoryOutput struct {
	ID         int64  `json:"categoryId"`
	Name       string `json:"name"`
	MerchantID int64  `json:"merchantId"`
}

// CategoryUsecase defines the category CRUD contract.
type CategoryUsecase interface {
	Create(ctx context.Context, input *CategoryInput) (*CategoryOutput, error)
	GetByID(ctx context.Context, id int64) (*CategoryOutput, error)
	ListAll(ctx context.Context) ([]*CategoryOutput, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]*CategoryOutput, error)
	Update(ctx context.Context, id int64, input *CategoryInput) (*CategoryOutput, error)
	Delete(ctx context.Context, id int64) error
}

// ProductInput defines the fields of a product create or update.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  int64
	MerchantID  int64
}

// ProductOutput is the product returned to clients.
type ProductOutput struct {
	ID          int64           `json:"productId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"categoryId"`
	MerchantID  int64           `json:"merchantId"`
}

// ProductUsecase defines the product CRUD contract.
type ProductUsecase interface {
	Create(ctx context.Context, input *ProductInput) (*ProductOutput, error)
	GetByID(ctx context.Context, id int64) (*ProductOutput, error)
	ListAll(ctx context.Context) ([]*ProductOutput, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]*ProductOutput, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*ProductOutput, error)
	Update(ctx context.Context, id int64, input *ProductInput) (*ProductOutput, error)
	Delete(ctx context.Context, id int64) error
}
