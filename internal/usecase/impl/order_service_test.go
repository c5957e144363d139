package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"
	mockRepo "github.com/thenextech/shoploc-back-end/internal/mocks/repository"
	mockService "github.com/thenextech/shoploc-back-end/internal/mocks/service"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixtures struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	lineRepo    *mockRepo.MockOrderLineRepository
	publisher   *mockService.MockEventPublisher
	orders      usecase.OrderUsecase
	lines       usecase.OrderLineUsecase
}

func createOrderFixtures(t *testing.T) orderFixtures {
	f := orderFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		lineRepo:    mockRepo.NewMockOrderLineRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}
	f.orders = NewOrderService(OrderServiceParams{
		TxManager:   f.txManager,
		OrderRepo:   f.orderRepo,
		ProductRepo: f.productRepo,
		Logger:      newDiscardLogger(),
	})
	f.lines = NewOrderLineService(OrderLineServiceParams{
		TxManager:   f.txManager,
		LineRepo:    f.lineRepo,
		OrderRepo:   f.orderRepo,
		ProductRepo: f.productRepo,
		Publisher:   f.publisher,
		Logger:      newDiscardLogger(),
	})

	return f
}

func baguette() *entity.Product {
	return &entity.Product{ID: 5, Name: "Baguette", CategoryID: 4, MerchantID: 2}
}

func TestOrderService_Create_StartsPending(t *testing.T) {
	f := createOrderFixtures(t)
	ctx := context.Background()

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.User{ID: 1, Role: entity.RoleClient}, nil)
	f.orderRepo.EXPECT().Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.UserID == 1 && o.Status == entity.OrderStatusPending
	})).RunAndReturn(func(_ context.Context, o *entity.Order) error {
		o.ID = 30

		return nil
	})

	out, err := f.orders.Create(ctx, &usecase.OrderInput{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(30), out.ID)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.NotNil(t, out.Lines)
	assert.Empty(t, out.Lines)
}

func TestOrderService_GetByID_WithLineNames(t *testing.T) {
	f := createOrderFixtures(t)
	orderID := int64(30)
	f.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(&entity.Order{
		ID: orderID, UserID: 1, Status: entity.OrderStatusPending,
		Lines: []entity.OrderLine{
			{ID: 1, OrderID: &orderID, ProductID: 5, Quantity: 2},
			{ID: 2, OrderID: &orderID, ProductID: 5, Quantity: 1},
		},
	}, nil)
	f.productRepo.EXPECT().FindByIDs(mock.Anything, []int64{5}).Return(map[int64]*entity.Product{5: baguette()}, nil)

	out, err := f.orders.GetByID(context.Background(), orderID)

	require.NoError(t, err)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, "Baguette", out.Lines[0].ProductName)
	assert.Equal(t, 2, out.Lines[0].Quantity)
}

func TestOrderService_UpdateStatus_Invalid(t *testing.T) {
	f := createOrderFixtures(t)

	_, err := f.orders.UpdateStatus(context.Background(), 30, entity.OrderStatus("SHIPPED"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_Delete_NotFound(t *testing.T) {
	f := createOrderFixtures(t)
	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.orderRepo.EXPECT().Delete(mock.Anything, int64(31)).Return(repository.ErrOrderNotFound)

	err := f.orders.Delete(context.Background(), 31)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Contains(t, err.Error(), "Order not found with ID: 31")
}

func TestOrderLineService_Create_PublishesEvent(t *testing.T) {
	f := createOrderFixtures(t)
	ctx := context.Background()
	orderID := int64(30)

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewProductRepository().Return(f.productRepo)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.factory.EXPECT().NewOrderLineRepository().Return(f.lineRepo)
	f.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(baguette(), nil)
	f.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID}, nil)
	f.lineRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.OrderLine")).
		RunAndReturn(func(_ context.Context, l *entity.OrderLine) error {
			l.ID = 77

			return nil
		})
	f.publisher.EXPECT().PublishOrderLineCreated(ctx, mock.MatchedBy(func(e *service.OrderLineEvent) bool {
		return e.EventID != "" && e.OrderLineID == 77 && e.MerchantID == 2 &&
			e.ProductName == "Baguette" && e.Quantity == 3 && *e.OrderID == orderID
	})).Return(nil)

	out, err := f.lines.Create(ctx, &usecase.OrderLineInput{OrderID: &orderID, ProductID: 5, Quantity: 3})

	require.NoError(t, err)
	assert.Equal(t, int64(77), out.ID)
	assert.Equal(t, "Baguette", out.ProductName)
}

func TestOrderLineService_Create_UnknownProduct(t *testing.T) {
	f := createOrderFixtures(t)
	ctx := context.Background()

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewProductRepository().Return(f.productRepo)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.productRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrProductNotFound)

	_, err := f.lines.Create(ctx, &usecase.OrderLineInput{ProductID: 404, Quantity: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Contains(t, err.Error(), "Product not found with ID: 404")
	f.lineRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOrderLineCreated", mock.Anything, mock.Anything)
}

func TestOrderLineService_Create_PublishFailureIsNotFatal(t *testing.T) {
	f := createOrderFixtures(t)
	ctx := context.Background()

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewProductRepository().Return(f.productRepo)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.factory.EXPECT().NewOrderLineRepository().Return(f.lineRepo)
	f.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(baguette(), nil)
	f.lineRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishOrderLineCreated(ctx, mock.Anything).Return(errors.New("broker down"))

	out, err := f.lines.Create(ctx, &usecase.OrderLineInput{ProductID: 5, Quantity: 1})

	require.NoError(t, err)
	assert.Nil(t, out.OrderID)
}

func TestOrderLineService_Create_RejectsNonPositiveQuantity(t *testing.T) {
	f := createOrderFixtures(t)

	_, err := f.lines.Create(context.Background(), &usecase.OrderLineInput{ProductID: 5, Quantity: 0})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderLineService_ListByOrder_MissingOrder(t *testing.T) {
	f := createOrderFixtures(t)
	f.orderRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, repository.ErrOrderNotFound)

	_, err := f.lines.ListByOrder(context.Background(), 9)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderLineService_Update_KeepsProductAndChangesQuantity(t *testing.T) {
	f := createOrderFixtures(t)
	ctx := context.Background()
	input := &usecase.OrderLineInput{Quantity: 4}

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewOrderLineRepository().Return(f.lineRepo)
	f.factory.EXPECT().NewProductRepository().Return(f.productRepo)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.lineRepo.EXPECT().FindByID(ctx, int64(77)).Return(&entity.OrderLine{ID: 77, ProductID: 5, Quantity: 1}, nil)
	f.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(baguette(), nil)
	f.lineRepo.EXPECT().Update(ctx, &entity.OrderLine{ID: 77, ProductID: 5, Quantity: 4}).Return(nil)

	out, err := f.lines.Update(ctx, 77, input)

	require.NoError(t, err)
	assert.Equal(t, 4, out.Quantity)
	assert.Equal(t, "Baguette", out.ProductName)
	assert.Zero(t, input.ProductID)
}

func TestOrderLineService_Delete_NotFound(t *testing.T) {
	f := createOrderFixtures(t)
	f.lineRepo.EXPECT().Delete(mock.Anything, int64(8)).Return(repository.ErrOrderLineNotFound)

	err := f.lines.Delete(context.Background(), 8)

	assert.ErrorIs(t, err, domainerrors.ErrOrderLineNotFound)
}
