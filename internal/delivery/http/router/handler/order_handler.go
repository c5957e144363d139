package handler

import (
	"net/http"

	"github.com/thenextech/shoploc-back-end/internal/delivery/http/response"
	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves /client/order.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

type createOrderRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.Create(c.Request().Context(), &usecase.OrderInput{UserID: req.UserID})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, order)
}

func (h *OrderHandler) GetByID(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, order)
}

func (h *OrderHandler) ListByUser(c echo.Context) error {
	userID, err := queryID(c, "idUser")
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, orders)
}

func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orderUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, order)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
