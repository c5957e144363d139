package handler

import (
	"net/http"

	"github.com/thenextech/shoploc-back-end/internal/delivery/http/response"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderLineHandler serves /client/orderline and /merchant/orderline.
type OrderLineHandler struct {
	lineUC usecase.OrderLineUsecase
}

// NewOrderLineHandler is the constructor for OrderLineHandler.
func NewOrderLineHandler(lineUC usecase.OrderLineUsecase) *OrderLineHandler {
	return &OrderLineHandler{lineUC: lineUC}
}

type createOrderLineRequest struct {
	OrderID   *int64 `json:"orderId" validate:"omitempty,gt=0"`
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type updateOrderLineRequest struct {
	OrderID   *int64 `json:"orderId" validate:"omitempty,gt=0"`
	ProductID int64  `json:"productId" validate:"gte=0"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

func (h *OrderLineHandler) Create(c echo.Context) error {
	var req createOrderLineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	line, err := h.lineUC.Create(c.Request().Context(), &usecase.OrderLineInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, line)
}

func (h *OrderLineHandler) GetByID(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	line, err := h.lineUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, line)
}

func (h *OrderLineHandler) ListByOrder(c echo.Context) error {
	orderID, err := queryID(c, "idOrder")
	if err != nil {
		return err
	}

	lines, err := h.lineUC.ListByOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, lines)
}

func (h *OrderLineHandler) ListByMerchant(c echo.Context) error {
	merchantID, err := queryID(c, "idMerchant")
	if err != nil {
		return err
	}

	lines, err := h.lineUC.ListByMerchant(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, lines)
}

func (h *OrderLineHandler) ListAll(c echo.Context) error {
	lines, err := h.lineUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, lines)
}

func (h *OrderLineHandler) Update(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderLineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	line, err := h.lineUC.Update(c.Request().Context(), id, &usecase.OrderLineInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, line)
}

func (h *OrderLineHandler) Delete(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	if err := h.lineUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
