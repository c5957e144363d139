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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).First(&categoryM, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("category_id").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return toCategoriesDomain(categoryMs), nil
}

func (repo *categoryRepository) FindByMerchantID(ctx context.Context, merchantID int64) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("category_id").
		Find(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories by merchant")
	}

	return toCategoriesDomain(categoryMs), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)
	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{ID: category.ID}).
		Select("Name", "MerchantID").
		Updates(fromCategoryDomain(category))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, "category_id = ?", id)
	if result.Error != nil {
		if classifyViolation(result.Error) == violationForeignKey {
			return domainerrors.ErrValidationFailed.WithDetails("category still has products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:         data.ID,
		Name:       data.Name,
		MerchantID: data.MerchantID,
	}
}

func toCategoriesDomain(data []model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for i := range data {
		categories = append(categories, toCategoryDomain(&data[i]))
	}

	return categories
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:         data.ID,
		Name:       data.Name,
		MerchantID: data.MerchantID,
	}
}
