package handler

import (
	"net/http"

	"github.com/thenextech/shoploc-back-end/internal/delivery/http/response"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler serves /merchant/product.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(productUC usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// productRequest accepts the price as a JSON number or string.
type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"categoryId" validate:"gte=0"`
	MerchantID  int64           `json:"merchantId" validate:"gte=0"`
}

func (r *productRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		MerchantID:  r.MerchantID,
	}
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Name == "" || req.CategoryID == 0 || req.MerchantID == 0 || !req.Price.IsPositive() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name, positive price, categoryId and merchantId are required"))
	}

	product, err := h.productUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, product)
}

func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, product)
}

func (h *ProductHandler) ListByMerchant(c echo.Context) error {
	merchantID, err := queryID(c, "idMerchant")
	if err != nil {
		return err
	}

	products, err := h.productUC.ListByMerchant(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, products)
}

func (h *ProductHandler) ListByCategory(c echo.Context) error {
	categoryID, err := queryID(c, "idCategory")
	if err != nil {
		return err
	}

	products, err := h.productUC.ListByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, products)
}

func (h *ProductHandler) ListAll(c echo.Context) error {
	products, err := h.productUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, products)
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Price.IsNegative() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("price must not be negative"))
	}

	product, err := h.productUC.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
