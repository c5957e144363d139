package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderLineService implements the OrderLineUsecase interface.
type orderLineService struct {
	txManager   repository.TransactionManager
	lineRepo    repository.OrderLineRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// OrderLineServiceParams holds dependencies for OrderLineService, injected by Fx.
type OrderLineServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	LineRepo    repository.OrderLineRepository
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewOrderLineService is the constructor for orderLineService.
func NewOrderLineService(params OrderLineServiceParams) usecase.OrderLineUsecase {
	return &orderLineService{
		txManager:   params.TxManager,
		lineRepo:    params.LineRepo,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *orderLineService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Create resolves the product and the optional order, then inserts the line.
// Nothing is written when a reference is missing. The merchant is notified
// after commit; a publish failure is logged and does not fail the request.
func (srv *orderLineService) Create(ctx context.Context, input *usecase.OrderLineInput) (*usecase.OrderLineOutput, error) {
	if input.Quantity <= 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("quantity must be positive"))
	}

	var (
		line    *entity.OrderLine
		product *entity.Product
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		line, product, err = resolveOrderLine(ctx, repoFactory.NewProductRepository(), repoFactory.NewOrderRepository(), input)
		if err != nil {
			return err
		}

		return errors.Wrap(repoFactory.NewOrderLineRepository().Create(ctx, line), "failed to create order line")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order line creation transaction")
	}

	srv.log(ctx).Info("Order line created",
		slog.Int64("orderLineID", line.ID),
		slog.Int64("productID", line.ProductID),
		slog.Int("quantity", line.Quantity),
	)

	srv.publishCreated(ctx, line, product)

	return toOrderLineOutput(line, product.Name), nil
}

func (srv *orderLineService) publishCreated(ctx context.Context, line *entity.OrderLine, product *entity.Product) {
	event := &service.OrderLineEvent{
		EventID:     uuid.NewString(),
		RequestID:   deliverycontext.RequestIDFrom(ctx),
		OrderLineID: line.ID,
		OrderID:     line.OrderID,
		ProductID:   product.ID,
		ProductName: product.Name,
		MerchantID:  product.MerchantID,
		Quantity:    line.Quantity,
		OccurredAt:  time.Now().UTC(),
	}

	if err := srv.publisher.PublishOrderLineCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order line event",
			slog.String("eventID", event.EventID),
			slog.Int64("orderLineID", line.ID),
			slog.Any("error", err),
		)
	}
}

func (srv *orderLineService) GetByID(ctx context.Context, id int64) (*usecase.OrderLineOutput, error) {
	line, err := srv.lineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrOrderLineNotFound, domainerrors.EntityOrderLine, id, "failed to find order line")
	}

	outputs, err := toOrderLineOutputs(ctx, srv.productRepo, []*entity.OrderLine{line})
	if err != nil {
		return nil, err
	}

	return outputs[0], nil
}

func (srv *orderLineService) ListAll(ctx context.Context) ([]*usecase.OrderLineOutput, error) {
	lines, err := srv.lineRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order lines")
	}

	return toOrderLineOutputs(ctx, srv.productRepo, lines)
}

// ListByOrder fails with NotFound when the order does not exist.
func (srv *orderLineService) ListByOrder(ctx context.Context, orderID int64) ([]*usecase.OrderLineOutput, error) {
	if _, err := srv.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, notFoundOr(err, repository.ErrOrderNotFound, domainerrors.EntityOrder, orderID, "failed to find order")
	}

	lines, err := srv.lineRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order lines by order")
	}

	return toOrderLineOutputs(ctx, srv.productRepo, lines)
}

func (srv *orderLineService) ListByMerchant(ctx context.Context, merchantID int64) ([]*usecase.OrderLineOutput, error) {
	lines, err := srv.lineRepo.FindByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order lines by merchant")
	}

	return toOrderLineOutputs(ctx, srv.productRepo, lines)
}

// Update maps input onto the stored line. A new product or order reference
// is resolved first.
func (srv *orderLineService) Update(ctx context.Context, id int64, input *usecase.OrderLineInput) (*usecase.OrderLineOutput, error) {
	var (
		line        *entity.OrderLine
		productName string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		lineRepo := repoFactory.NewOrderLineRepository()
		productRepo := repoFactory.NewProductRepository()

		existing, err := lineRepo.FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err, repository.ErrOrderLineNotFound, domainerrors.EntityOrderLine, id, "failed to find order line")
		}

		merged := *input
		if merged.ProductID == 0 {
			merged.ProductID = existing.ProductID
		}
		if merged.OrderID == nil {
			merged.OrderID = existing.OrderID
		}
		if merged.Quantity <= 0 {
			merged.Quantity = existing.Quantity
		}

		resolved, product, err := resolveOrderLine(ctx, productRepo, repoFactory.NewOrderRepository(), &merged)
		if err != nil {
			return err
		}
		resolved.ID = existing.ID

		if err := lineRepo.Update(ctx, resolved); err != nil {
			return notFoundOr(err, repository.ErrOrderLineNotFound, domainerrors.EntityOrderLine, id, "failed to update order line")
		}
		line = resolved
		productName = product.Name

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order line update transaction")
	}

	return toOrderLineOutput(line, productName), nil
}

func (srv *orderLineService) Delete(ctx context.Context, id int64) error {
	if err := srv.lineRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, repository.ErrOrderLineNotFound, domainerrors.EntityOrderLine, id, "failed to delete order line")
	}

	srv.log(ctx).Info("Order line deleted", slog.Int64("orderLineID", id))

	return nil
}
