package impl

import (
	"context"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"

	"github.com/pkg/errors"
)

// requireMerchant fails with a Merchant NotFound unless id is a merchant account.
func requireMerchant(ctx context.Context, users repository.UserRepository, id int64) (*entity.User, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound, domainerrors.EntityMerchant, id, "failed to find merchant")
	}
	if !user.IsMerchant() {
		return nil, errors.WithStack(domainerrors.NewNotFoundError(domainerrors.EntityMerchant, id))
	}

	return user, nil
}

// requireCategory fails with a Category NotFound unless the category exists.
func requireCategory(ctx context.Context, categories repository.CategoryRepository, id int64) (*entity.Category, error) {
	category, err := categories.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrCategoryNotFound, domainerrors.EntityCategory, id, "failed to find category")
	}

	return category, nil
}
