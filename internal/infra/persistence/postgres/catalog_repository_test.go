package postgres

import (
	"context"
	"testing"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()
	merchant := seedMerchant(t, db, "shop@x.com")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	category := &entity.Category{Name: "Fromages", MerchantID: merchant.ID}
	require.NoError(t, repo.Create(ctx, category))
	require.NotZero(t, category.ID)

	byMerchant, err := repo.FindByMerchantID(ctx, merchant.ID)
	require.NoError(t, err)
	require.Len(t, byMerchant, 1)
	assert.Equal(t, "Fromages", byMerchant[0].Name)

	category.Name = "Fromages affinés"
	require.NoError(t, repo.Update(ctx, category))
	found, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fromages affinés", found.Name)

	require.NoError(t, repo.Delete(ctx, category.ID))
	_, err = repo.FindByID(ctx, category.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, category.ID), repository.ErrCategoryNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Category{ID: 404, Name: "x"}), repository.ErrCategoryNotFound)
}

func TestProductRepository_Queries(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	merchant := seedMerchant(t, db, "shop@x.com")
	other := seedMerchant(t, db, "other@x.com")

	baguette := seedProduct(t, db, merchant.ID, "Baguette")
	croissant := seedProduct(t, db, other.ID, "Croissant")

	found, err := repo.FindByID(ctx, baguette.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.35").Equal(found.Price))

	byMerchant, err := repo.FindByMerchantID(ctx, merchant.ID)
	require.NoError(t, err)
	require.Len(t, byMerchant, 1)
	assert.Equal(t, "Baguette", byMerchant[0].Name)

	byCategory, err := repo.FindByCategoryID(ctx, croissant.CategoryID)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, croissant.ID, byCategory[0].ID)

	byIDs, err := repo.FindByIDs(ctx, []int64{baguette.ID, croissant.ID, 999})
	require.NoError(t, err)
	assert.Len(t, byIDs, 2)
	assert.Equal(t, "Croissant", byIDs[croissant.ID].Name)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	baguette.Price = decimal.RequireFromString("2.50")
	require.NoError(t, repo.Update(ctx, baguette))
	found, err = repo.FindByID(ctx, baguette.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.50").Equal(found.Price))

	require.NoError(t, repo.Delete(ctx, baguette.ID))
	_, err = repo.FindByID(ctx, baguette.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCategoryRepository_DeleteKeepsNonEmptyCategory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	merchant := seedMerchant(t, db, "shop@x.com")
	product := seedProduct(t, db, merchant.ID, "Baguette")

	err := NewCategoryRepository(db).Delete(ctx, product.CategoryID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "category still has products", appErr.Details())

	_, err = NewCategoryRepository(db).FindByID(ctx, product.CategoryID)
	require.NoError(t, err)
	found, err := NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.CategoryID, found.CategoryID)

	require.NoError(t, NewProductRepository(db).Delete(ctx, product.ID))
	require.NoError(t, NewCategoryRepository(db).Delete(ctx, product.CategoryID))
}

func TestProductRepository_DeleteKeepsOrderedProduct(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	merchant := seedMerchant(t, db, "shop@x.com")
	client := seedClient(t, db, "ada@x.com")
	product := seedProduct(t, db, merchant.ID, "Baguette")

	order := &entity.Order{UserID: client.ID, Status: entity.OrderStatusPending}
	require.NoError(t, NewOrderRepository(db).Create(ctx, order))
	line := &entity.OrderLine{OrderID: &order.ID, ProductID: product.ID, Quantity: 2}
	require.NoError(t, NewOrderLineRepository(db).Create(ctx, line))

	err := NewProductRepository(db).Delete(ctx, product.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	found, err := NewOrderLineRepository(db).FindByID(ctx, line.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ProductID)

	require.NoError(t, NewOrderLineRepository(db).Delete(ctx, line.ID))
	require.NoError(t, NewProductRepository(db).Delete(ctx, product.ID))
}

func TestProductRepository_CreateRequiresExistingCategory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	merchant := seedMerchant(t, db, "shop@x.com")

	product := &entity.Product{
		Name:       "Orphan",
		Price:      decimal.RequireFromString("1.00"),
		CategoryID: 404,
		MerchantID: merchant.ID,
	}
	err := NewProductRepository(db).Create(ctx, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	all, err := NewProductRepository(db).FindByMerchantID(ctx, merchant.ID)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOrderLineRepository_CreateRequiresExistingProduct(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := NewOrderLineRepository(db).Create(ctx, &entity.OrderLine{ProductID: 404, Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
