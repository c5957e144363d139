package postgres

import (
	"context"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves the order with its lines.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Lines", orderLinesByID).
		First(&orderM, "order_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	if err := repo.db.WithContext(ctx).Preload("Lines", orderLinesByID).Order("order_id").Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrdersDomain(orderMs), nil
}

func (repo *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Lines", orderLinesByID).
		Where("user_id = ?", userID).
		Order("order_id").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrdersDomain(orderMs), nil
}

// Create inserts the order row only; lines are created through OrderLineRepository.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		UserID: order.UserID,
		Status: string(order.Status),
	}
	if err := repo.db.WithContext(ctx).Omit("Lines").Create(orderM).Error; err != nil {
		if classifyViolation(err) == violationForeignKey {
			return domainerrors.NewNotFoundError(domainerrors.EntityUser, order.UserID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes the order's lines then the order.
func (repo *orderRepository) Delete(ctx context.Context, id int64) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("order_id = ?", id).Delete(&model.OrderLineModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order lines")
	}

	result := db.Delete(&model.OrderModel{}, "order_id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func orderLinesByID(db *gorm.DB) *gorm.DB {
	return db.Order("order_line_id")
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	lines := make([]entity.OrderLine, 0, len(data.Lines))
	for i := range data.Lines {
		lines = append(lines, *toOrderLineDomain(&data.Lines[i]))
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		Status:    entity.OrderStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Lines:     lines,
	}
}

func toOrdersDomain(data []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for i := range data {
		orders = append(orders, toOrderDomain(&data[i]))
	}

	return orders
}
