package handler

import (
	"net/http"

	"github.com/thenextech/shoploc-back-end/internal/delivery/http/response"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler serves /merchant/category.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(categoryUC usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

type createCategoryRequest struct {
	Name       string `json:"name" validate:"required"`
	MerchantID int64  `json:"merchantId" validate:"required,gt=0"`
}

type updateCategoryRequest struct {
	Name       string `json:"name"`
	MerchantID int64  `json:"merchantId" validate:"gte=0"`
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Create(c.Request().Context(), &usecase.CategoryInput{
		Name:       req.Name,
		MerchantID: req.MerchantID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, category)
}

func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, category)
}

func (h *CategoryHandler) ListByMerchant(c echo.Context) error {
	merchantID, err := queryID(c, "idMerchant")
	if err != nil {
		return err
	}

	categories, err := h.categoryUC.ListByMerchant(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, categories)
}

func (h *CategoryHandler) ListAll(c echo.Context) error {
	categories, err := h.categoryUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, categories)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Update(c.Request().Context(), id, &usecase.CategoryInput{
		Name:       req.Name,
		MerchantID: req.MerchantID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
