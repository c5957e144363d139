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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *categoryService) Create(ctx context.Context, input *usecase.CategoryInput) (*usecase.CategoryOutput, error) {
	category := &entity.Category{Name: input.Name, MerchantID: input.MerchantID}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireMerchant(ctx, repoFactory.NewUserRepository(), input.MerchantID); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.NewCategoryRepository().Create(ctx, category), "failed to create category")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute category creation transaction")
	}

	srv.log(ctx).Info("Category created", slog.Int64("categoryID", category.ID), slog.Int64("merchantID", category.MerchantID))

	return toCategoryOutput(category), nil
}

func (srv *categoryService) GetByID(ctx context.Context, id int64) (*usecase.CategoryOutput, error) {
	category, err := requireCategory(ctx, srv.categoryRepo, id)
	if err != nil {
		return nil, err
	}

	return toCategoryOutput(category), nil
}

func (srv *categoryService) ListAll(ctx context.Context) ([]*usecase.CategoryOutput, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryOutputs(categories), nil
}

func (srv *categoryService) ListByMerchant(ctx context.Context, merchantID int64) ([]*usecase.CategoryOutput, error) {
	categories, err := srv.categoryRepo.FindByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant categories")
	}

	return toCategoryOutputs(categories), nil
}

func (srv *categoryService) Update(ctx context.Context, id int64, input *usecase.CategoryInput) (*usecase.CategoryOutput, error) {
	var updated *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		category, err := requireCategory(ctx, categoryRepo, id)
		if err != nil {
			return err
		}

		if input.Name != "" {
			category.Name = input.Name
		}
		if input.MerchantID != 0 && input.MerchantID != category.MerchantID {
			if _, err := requireMerchant(ctx, repoFactory.NewUserRepository(), input.MerchantID); err != nil {
				return err
			}
			category.MerchantID = input.MerchantID
		}

		if err := categoryRepo.Update(ctx, category); err != nil {
			return notFoundOr(err, repository.ErrCategoryNotFound, domainerrors.EntityCategory, id, "failed to update category")
		}
		updated = category

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute category update transaction")
	}

	return toCategoryOutput(updated), nil
}

func (srv *categoryService) Delete(ctx context.Context, id int64) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, repository.ErrCategoryNotFound, domainerrors.EntityCategory, id, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Int64("categoryID", id))

	return nil
}
