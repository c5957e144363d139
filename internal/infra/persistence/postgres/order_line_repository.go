package postgres

import (
	"context"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderLineRepository struct {
	db *gorm.DB
}

// NewOrderLineRepository creates an order line repository.
func NewOrderLineRepository(db *gorm.DB) repository.OrderLineRepository {
	return &orderLineRepository{db: db}
}

func (repo *orderLineRepository) FindByID(ctx context.Context, id int64) (*entity.OrderLine, error) {
	var lineM model.OrderLineModel
	if err := repo.db.WithContext(ctx).First(&lineM, "order_line_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find order line by id")
	}

	return toOrderLineDomain(&lineM), nil
}

func (repo *orderLineRepository) FindAll(ctx context.Context) ([]*entity.OrderLine, error) {
	var lineMs []model.OrderLineModel
	if err := repo.db.WithContext(ctx).Order("order_line_id").Find(&lineMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order lines")
	}

	return toOrderLinesDomain(lineMs), nil
}

func (repo *orderLineRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderLine, error) {
	var lineMs []model.OrderLineModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("order_line_id").
		Find(&lineMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order lines by order")
	}

	return toOrderLinesDomain(lineMs), nil
}

// FindByMerchantID joins products to keep the lines of merchantID's products.
func (repo *orderLineRepository) FindByMerchantID(ctx context.Context, merchantID int64) ([]*entity.OrderLine, error) {
	var lineMs []model.OrderLineModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN products ON products.product_id = order_lines.product_id").
		Where("products.merchant_id = ?", merchantID).
		Order("order_lines.order_line_id").
		Find(&lineMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order lines by merchant")
	}

	return toOrderLinesDomain(lineMs), nil
}

func (repo *orderLineRepository) Create(ctx context.Context, line *entity.OrderLine) error {
	lineM := fromOrderLineDomain(line)
	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if classifyViolation(err) == violationForeignKey {
			return domainerrors.ErrValidationFailed.WithDetails("order line order or product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order line")
	}

	line.ID = lineM.ID

	return nil
}

func (repo *orderLineRepository) Update(ctx context.Context, line *entity.OrderLine) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderLineModel{ID: line.ID}).
		Select("OrderID", "ProductID", "Quantity").
		Updates(fromOrderLineDomain(line))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderLineNotFound
	}

	return nil
}

func (repo *orderLineRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderLineModel{}, "order_line_id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderLineNotFound
	}

	return nil
}

func toOrderLineDomain(data *model.OrderLineModel) *entity.OrderLine {
	return &entity.OrderLine{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}

func toOrderLinesDomain(data []model.OrderLineModel) []*entity.OrderLine {
	lines := make([]*entity.OrderLine, 0, len(data))
	for i := range data {
		lines = append(lines, toOrderLineDomain(&data[i]))
	}

	return lines
}

func fromOrderLineDomain(data *entity.OrderLine) *model.OrderLineModel {
	return &model.OrderLineModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}
