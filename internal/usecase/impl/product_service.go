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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Create checks the category and the merchant before inserting.
func (srv *productService) Create(ctx context.Context, input *usecase.ProductInput) (*usecase.ProductOutput, error) {
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		MerchantID:  input.MerchantID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireCategory(ctx, repoFactory.NewCategoryRepository(), input.CategoryID); err != nil {
			return err
		}
		if _, err := requireMerchant(ctx, repoFactory.NewUserRepository(), input.MerchantID); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.NewProductRepository().Create(ctx, product), "failed to create product")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.Int64("merchantID", product.MerchantID))

	return toProductOutput(product), nil
}

func (srv *productService) GetByID(ctx context.Context, id int64) (*usecase.ProductOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrProductNotFound, domainerrors.EntityProduct, id, "failed to find product")
	}

	return toProductOutput(product), nil
}

func (srv *productService) ListAll(ctx context.Context) ([]*usecase.ProductOutput, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductOutputs(products), nil
}

func (srv *productService) ListByMerchant(ctx context.Context, merchantID int64) ([]*usecase.ProductOutput, error) {
	products, err := srv.productRepo.FindByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant products")
	}

	return toProductOutputs(products), nil
}

func (srv *productService) ListByCategory(ctx context.Context, categoryID int64) ([]*usecase.ProductOutput, error) {
	products, err := srv.productRepo.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category products")
	}

	return toProductOutputs(products), nil
}

// Update overwrites the fields set in input. Zero values keep the stored value.
func (srv *productService) Update(ctx context.Context, id int64, input *usecase.ProductInput) (*usecase.ProductOutput, error) {
	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err, repository.ErrProductNotFound, domainerrors.EntityProduct, id, "failed to find product")
		}

		if input.Name != "" {
			product.Name = input.Name
		}
		if input.Description != "" {
			product.Description = input.Description
		}
		if !input.Price.IsZero() {
			product.Price = input.Price
		}
		if input.CategoryID != 0 && input.CategoryID != product.CategoryID {
			if _, err := requireCategory(ctx, repoFactory.NewCategoryRepository(), input.CategoryID); err != nil {
				return err
			}
			product.CategoryID = input.CategoryID
		}
		if input.MerchantID != 0 && input.MerchantID != product.MerchantID {
			if _, err := requireMerchant(ctx, repoFactory.NewUserRepository(), input.MerchantID); err != nil {
				return err
			}
			product.MerchantID = input.MerchantID
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return notFoundOr(err, repository.ErrProductNotFound, domainerrors.EntityProduct, id, "failed to update product")
		}
		updated = product

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	return toProductOutput(updated), nil
}

func (srv *productService) Delete(ctx context.Context, id int64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, repository.ErrProductNotFound, domainerrors.EntityProduct, id, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return nil
}
