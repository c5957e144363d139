package impl

import (
	"context"
	"testing"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	mockRepo "github.com/thenextech/shoploc-back-end/internal/mocks/repository"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
	categories   usecase.CategoryUsecase
	products     usecase.ProductUsecase
}

func createCatalogFixtures(t *testing.T) catalogFixtures {
	f := catalogFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
	}
	f.categories = NewCategoryService(CategoryServiceParams{
		TxManager:    f.txManager,
		CategoryRepo: f.categoryRepo,
		UserRepo:     f.userRepo,
		Logger:       newDiscardLogger(),
	})
	f.products = NewProductService(ProductServiceParams{
		TxManager:   f.txManager,
		ProductRepo: f.productRepo,
		Logger:      newDiscardLogger(),
	})

	return f
}

func merchant(id int64) *entity.User {
	return &entity.User{ID: id, Role: entity.RoleMerchant, Merchant: &entity.MerchantProfile{StoreName: "Shop"}}
}

func TestCategoryService_Create_Success(t *testing.T) {
	f := createCatalogFixtures(t)
	ctx := context.Background()

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo)
	f.factory.EXPECT().NewCategoryRepository().Return(f.categoryRepo)
	f.userRepo.EXPECT().FindByID(ctx, int64(2)).Return(merchant(2), nil)
	f.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).
		RunAndReturn(func(_ context.Context, c *entity.Category) error {
			c.ID = 10

			return nil
		})

	out, err := f.categories.Create(ctx, &usecase.CategoryInput{Name: "Pains", MerchantID: 2})

	require.NoError(t, err)
	assert.Equal(t, &usecase.CategoryOutput{ID: 10, Name: "Pains", MerchantID: 2}, out)
}

func TestCategoryService_Create_OwnerIsNotMerchant(t *testing.T) {
	f := createCatalogFixtures(t)
	ctx := context.Background()

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo)
	f.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3, Role: entity.RoleClient}, nil)

	_, err := f.categories.Create(ctx, &usecase.CategoryInput{Name: "Pains", MerchantID: 3})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
	assert.Contains(t, err.Error(), "Merchant not found with ID: 3")
}

func TestCategoryService_Delete(t *testing.T) {
	f := createCatalogFixtures(t)
	f.categoryRepo.EXPECT().Delete(mock.Anything, int64(10)).Return(nil).Once()
	f.categoryRepo.EXPECT().Delete(mock.Anything, int64(11)).Return(repository.ErrCategoryNotFound).Once()
	f.categoryRepo.EXPECT().FindByID(mock.Anything, int64(10)).Return(nil, repository.ErrCategoryNotFound)

	require.NoError(t, f.categories.Delete(context.Background(), 10))

	_, err := f.categories.GetByID(context.Background(), 10)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	err = f.categories.Delete(context.Background(), 11)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	assert.Contains(t, err.Error(), "Category not found with ID: 11")
}

func TestCategoryService_ListByMerchant_EmptyIsNotNil(t *testing.T) {
	f := createCatalogFixtures(t)
	f.categoryRepo.EXPECT().FindByMerchantID(mock.Anything, int64(2)).Return(nil, nil)

	out, err := f.categories.ListByMerchant(context.Background(), 2)

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestProductService_Create_MissingCategory(t *testing.T) {
	f := createCatalogFixtures(t)
	ctx := context.Background()

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewCategoryRepository().Return(f.categoryRepo)
	f.categoryRepo.EXPECT().FindByID(ctx, int64(4)).Return(nil, repository.ErrCategoryNotFound)

	_, err := f.products.Create(ctx, &usecase.ProductInput{
		Name: "Baguette", Price: decimal.RequireFromString("1.20"), CategoryID: 4, MerchantID: 2,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_Update_KeepsUnsetFields(t *testing.T) {
	f := createCatalogFixtures(t)
	ctx := context.Background()
	stored := &entity.Product{
		ID: 5, Name: "Baguette", Description: "Tradition", Price: decimal.RequireFromString("1.20"),
		CategoryID: 4, MerchantID: 2,
	}

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewProductRepository().Return(f.productRepo)
	f.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
	f.productRepo.EXPECT().Update(ctx, stored).Return(nil)

	out, err := f.products.Update(ctx, 5, &usecase.ProductInput{Price: decimal.RequireFromString("1.35")})

	require.NoError(t, err)
	assert.Equal(t, "Baguette", out.Name)
	assert.Equal(t, "Tradition", out.Description)
	assert.True(t, decimal.RequireFromString("1.35").Equal(out.Price))
}
