package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/response"
	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AccountHandler serves registration and profile management.
type AccountHandler struct {
	userUC usecase.UserUsecase
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		userUC: params.UserUC,
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

type registerRequest struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required"`
	LastName  string `json:"lastName" form:"lastName" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required"`
	Birthday  string `json:"birthday" form:"birthday"`
	Phone     string `json:"phone" form:"phone"`
	StoreName string `json:"storeName" form:"storeName"`
	Address   string `json:"address" form:"address"`
}

type updateProfileRequest struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Birthday  string `json:"birthday" form:"birthday"`
	Phone     string `json:"phone" form:"phone"`
	StoreName string `json:"storeName" form:"storeName"`
	Address   string `json:"address" form:"address"`
}

// RegisterPage returns the registration page url.
func (h *AccountHandler) RegisterPage(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		return response.URL(c, http.StatusOK, roleURL(role, "register"))
	}
}

// Register creates an account of role. Any client-side failure is reported as REGISTER_ERROR.
func (h *AccountHandler) Register(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req registerRequest
		if err := bindAndValidate(c, &req); err != nil {
			return registerError(err)
		}

		birthday, err := parseBirthday(req.Birthday)
		if err != nil {
			return registerError(err)
		}

		_, err = h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
			Role:      role,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
			Birthday:  birthday,
			Phone:     req.Phone,
			StoreName: req.StoreName,
			Address:   req.Address,
		})
		if err != nil {
			return registerError(err)
		}

		return response.URL(c, http.StatusFound, roleURL(role, "login"))
	}
}

// UpdateProfile edits the connected user's profile.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthday:  birthday,
		Phone:     req.Phone,
		StoreName: req.StoreName,
		Address:   req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Object(c, http.StatusOK, user)
}

// DeleteAccount removes the connected user and ends the session.
func (h *AccountHandler) DeleteAccount(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := authenticatedUserID(c)
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		if err := h.userUC.DeleteAccount(ctx, userID); err != nil {
			return errors.WithStack(err)
		}
		if err := h.authUC.Logout(ctx, deliverycontext.SessionID(c)); err != nil {
			return errors.WithStack(err)
		}

		return response.URL(c, http.StatusOK, roleURL(role, "login"))
	}
}

// registerError hides the precise 4xx cause behind REGISTER_ERROR.
func registerError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return errors.WithStack(domainerrors.ErrRegister.WithDetails(err.Error()))
	}

	return errors.WithStack(err)
}
