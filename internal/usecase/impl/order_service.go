package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Create opens an empty PENDING order for an existing user.
func (srv *orderService) Create(ctx context.Context, input *usecase.OrderInput) (*usecase.OrderOutput, error) {
	order := &entity.Order{UserID: input.UserID, Status: entity.OrderStatusPending}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewUserRepository().FindByID(ctx, input.UserID); err != nil {
			return notFoundOr(err, repository.ErrUserNotFound, domainerrors.EntityUser, input.UserID, "failed to find order owner")
		}

		return errors.Wrap(repoFactory.NewOrderRepository().Create(ctx, order), "failed to create order")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Info("Order created", slog.Int64("orderID", order.ID), slog.Int64("userID", order.UserID))

	return toOrderOutput(ctx, srv.productRepo, order)
}

func (srv *orderService) GetByID(ctx context.Context, id int64) (*usecase.OrderOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrOrderNotFound, domainerrors.EntityOrder, id, "failed to find order")
	}

	return toOrderOutput(ctx, srv.productRepo, order)
}

func (srv *orderService) ListAll(ctx context.Context) ([]*usecase.OrderOutput, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderOutputs(ctx, srv.productRepo, orders)
}

func (srv *orderService) ListByUser(ctx context.Context, userID int64) ([]*usecase.OrderOutput, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return toOrderOutputs(ctx, srv.productRepo, orders)
}

func (srv *orderService) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*usecase.OrderOutput, error) {
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown order status"))
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFoundOr(err, repository.ErrOrderNotFound, domainerrors.EntityOrder, id, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.Int64("orderID", id), slog.String("status", string(status)))

	return srv.GetByID(ctx, id)
}

// Delete removes the order and its lines in one transaction.
func (srv *orderService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOrderRepository().Delete(ctx, id); err != nil {
			return notFoundOr(err, repository.ErrOrderNotFound, domainerrors.EntityOrder, id, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute order deletion transaction")
	}

	srv.log(ctx).Info("Order deleted", slog.Int64("orderID", id))

	return nil
}
