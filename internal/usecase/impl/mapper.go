package impl

import (
	"context"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/pkg/errors"
)

const birthdayLayout = "2006-01-02"

// notFoundOr turns a repository not-found sentinel into the NotFound AppError
// for entityName and id. Other errors are wrapped with msg.
func notFoundOr(err, sentinel error, entityName string, id int64, msg string) error {
	if errors.Is(err, sentinel) {
		return errors.WithStack(domainerrors.NewNotFoundError(entityName, id))
	}

	return errors.Wrap(err, msg)
}

// --- User ---

func newUserFromRegister(input *usecase.RegisterInput, passwordHash string) *entity.User {
	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Birthday:     input.Birthday,
		PasswordHash: passwordHash,
		Role:         input.Role,
	}

	switch input.Role {
	case entity.RoleClient:
		user.Client = &entity.ClientProfile{Phone: input.Phone}
	case entity.RoleMerchant:
		user.Merchant = &entity.MerchantProfile{
			StoreName: input.StoreName,
			Address:   input.Address,
			Phone:     input.Phone,
		}
	}

	return user
}

// applyProfileUpdate copies the non-empty fields of input onto user.
func applyProfileUpdate(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != nil {
		user.Birthday = input.Birthday
	}

	switch {
	case user.IsClient():
		if user.Client == nil {
			user.Client = &entity.ClientProfile{}
		}
		if input.Phone != "" {
			user.Client.Phone = input.Phone
		}
	case user.IsMerchant():
		if user.Merchant == nil {
			user.Merchant = &entity.MerchantProfile{}
		}
		if input.Phone != "" {
			user.Merchant.Phone = input.Phone
		}
		if input.StoreName != "" {
			user.Merchant.StoreName = input.StoreName
		}
		if input.Address != "" {
			user.Merchant.Address = input.Address
		}
	}
}

func toUserOutput(user *entity.User) *usecase.UserOutput {
	out := &usecase.UserOutput{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}
	if user.Birthday != nil {
		out.Birthday = user.Birthday.Format(birthdayLayout)
	}
	if user.Client != nil {
		points := user.Client.LoyaltyPoints
		out.Phone = user.Client.Phone
		out.LoyaltyPoints = &points
	}
	if user.Merchant != nil {
		out.Phone = user.Merchant.Phone
		out.StoreName = user.Merchant.StoreName
		out.Address = user.Merchant.Address
	}

	return out
}

// --- Catalog ---

func toCategoryOutput(category *entity.Category) *usecase.CategoryOutput {
	return &usecase.CategoryOutput{
		ID:         category.ID,
		Name:       category.Name,
		MerchantID: category.MerchantID,
	}
}

func toCategoryOutputs(categories []*entity.Category) []*usecase.CategoryOutput {
	out := make([]*usecase.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryOutput(category))
	}

	return out
}

func toProductOutput(product *entity.Product) *usecase.ProductOutput {
	return &usecase.ProductOutput{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		CategoryID:  product.CategoryID,
		MerchantID:  product.MerchantID,
	}
}

func toProductOutputs(products []*entity.Product) []*usecase.ProductOutput {
	out := make([]*usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		out = append(out, toProductOutput(product))
	}

	return out
}

// --- Orders ---

// resolveOrderLine maps input onto a new line, resolving the product then the
// optional order. A missing reference is a NotFound naming the id.
func resolveOrderLine(
	ctx context.Context,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	input *usecase.OrderLineInput,
) (*entity.OrderLine, *entity.Product, error) {
	product, err := products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, nil, notFoundOr(err, repository.ErrProductNotFound, domainerrors.EntityProduct, input.ProductID, "failed to resolve product")
	}

	if input.OrderID != nil {
		if _, err := orders.FindByID(ctx, *input.OrderID); err != nil {
			return nil, nil, notFoundOr(err, repository.ErrOrderNotFound, domainerrors.EntityOrder, *input.OrderID, "failed to resolve order")
		}
	}

	line := &entity.OrderLine{
		OrderID:   input.OrderID,
		ProductID: product.ID,
		Quantity:  input.Quantity,
	}

	return line, product, nil
}

func toOrderLineOutput(line *entity.OrderLine, productName string) *usecase.OrderLineOutput {
	return &usecase.OrderLineOutput{
		ID:          line.ID,
		OrderID:     line.OrderID,
		ProductID:   line.ProductID,
		ProductName: productName,
		Quantity:    line.Quantity,
	}
}

// toOrderLineOutputs maps lines and fills productName from one bulk product lookup.
func toOrderLineOutputs(ctx context.Context, products repository.ProductRepository, lines []*entity.OrderLine) ([]*usecase.OrderLineOutput, error) {
	out := make([]*usecase.OrderLineOutput, 0, len(lines))
	if len(lines) == 0 {
		return out, nil
	}

	names, err := productNames(ctx, products, lines)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		out = append(out, toOrderLineOutput(line, names[line.ProductID]))
	}

	return out, nil
}

func productNames(ctx context.Context, products repository.ProductRepository, lines []*entity.OrderLine) (map[int64]string, error) {
	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	found, err := products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve product names")
	}

	names := make(map[int64]string, len(found))
	for id, product := range found {
		names[id] = product.Name
	}

	return names, nil
}

func toOrderOutput(ctx context.Context, products repository.ProductRepository, order *entity.Order) (*usecase.OrderOutput, error) {
	lines := make([]*entity.OrderLine, 0, len(order.Lines))
	for i := range order.Lines {
		lines = append(lines, &order.Lines[i])
	}

	lineOutputs, err := toOrderLineOutputs(ctx, products, lines)
	if err != nil {
		return nil, err
	}

	return &usecase.OrderOutput{
		ID:        order.ID,
		UserID:    order.UserID,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
		Lines:     lineOutputs,
	}, nil
}

func toOrderOutputs(ctx context.Context, products repository.ProductRepository, orders []*entity.Order) ([]*usecase.OrderOutput, error) {
	out := make([]*usecase.OrderOutput, 0, len(orders))
	for _, order := range orders {
		orderOut, err := toOrderOutput(ctx, products, order)
		if err != nil {
			return nil, err
		}
		out = append(out, orderOut)
	}

	return out, nil
}
