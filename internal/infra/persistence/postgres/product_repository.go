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

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	products := make(map[int64]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var productMs []model.ProductModel
	if err := repo.db.WithContext(ctx).Where("product_id IN ?", ids).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	for i := range productMs {
		products[productMs[i].ID] = toProductDomain(&productMs[i])
	}

	return products, nil
}

func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return repo.find(ctx, "failed to list products", nil)
}

func (repo *productRepository) FindByMerchantID(ctx context.Context, merchantID int64) ([]*entity.Product, error) {
	return repo.find(ctx, "failed to list products by merchant", func(db *gorm.DB) *gorm.DB {
		return db.Where("merchant_id = ?", merchantID)
	})
}

func (repo *productRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	return repo.find(ctx, "failed to list products by category", func(db *gorm.DB) *gorm.DB {
		return db.Where("category_id = ?", categoryID)
	})
}

func (repo *productRepository) find(ctx context.Context, errMsg string, scope func(*gorm.DB) *gorm.DB) ([]*entity.Product, error) {
	db := repo.db.WithContext(ctx)
	if scope != nil {
		db = db.Scopes(scope)
	}

	var productMs []model.ProductModel
	if err := db.Order("product_id").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if classifyViolation(err) == violationForeignKey {
			return domainerrors.ErrValidationFailed.WithDetails("product category or merchant does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Select("Name", "Description", "Price", "CategoryID", "MerchantID").
		Updates(fromProductDomain(product))
	if result.Error != nil {
		if classifyViolation(result.Error) == violationForeignKey {
			return domainerrors.ErrValidationFailed.WithDetails("product category or merchant does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "product_id = ?", id)
	if result.Error != nil {
		if classifyViolation(result.Error) == violationForeignKey {
			return domainerrors.ErrValidationFailed.WithDetails("product is still referenced by order lines")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		MerchantID:  data.MerchantID,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		MerchantID:  data.MerchantID,
	}
}
