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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves the two-step login of both roles. Each method returns
// the handler bound to one role.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" query:"email" validate:"required,email"`
	Password string `json:"password" form:"password" query:"password" validate:"required"`
}

type verifyRequest struct {
	Code string `json:"code" form:"code" query:"code" validate:"required"`
}

// LoginPage redirects an already verified session to its dashboard.
func (h *AuthHandler) LoginPage(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.AuthState(c).IsAuthenticatedAs(role) {
			return response.URL(c, http.StatusFound, roleURL(role, "dashboard"))
		}

		return response.URL(c, http.StatusOK, roleURL(role, "login"))
	}
}

// Login checks the credentials and mails the verification code.
func (h *AuthHandler) Login(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := bindAndValidate(c, &req); err != nil {
			return errors.WithStack(domainerrors.ErrLogin)
		}

		input := usecase.LoginInput{Email: req.Email, Password: req.Password}
		if err := h.authUC.Login(c.Request().Context(), deliverycontext.SessionID(c), role, input); err != nil {
			return errors.WithStack(err)
		}

		return response.URL(c, http.StatusOK, roleURL(role, "verify"))
	}
}

// Verify completes the login when the code matches the mailed one.
func (h *AuthHandler) Verify(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req verifyRequest
		if err := bindAndValidate(c, &req); err != nil {
			return errors.WithStack(domainerrors.ErrVerificationCode)
		}

		if err := h.authUC.Verify(c.Request().Context(), deliverycontext.SessionID(c), role, req.Code); err != nil {
			return errors.WithStack(err)
		}

		return response.URL(c, http.StatusOK, roleURL(role, "dashboard"))
	}
}

// Dashboard returns the connected user. The route is guarded by RequireRole.
func (h *AuthHandler) Dashboard(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Object(c, http.StatusOK, user)
}

// Logout clears the session whatever its state.
func (h *AuthHandler) Logout(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.authUC.Logout(c.Request().Context(), deliverycontext.SessionID(c)); err != nil {
			return errors.WithStack(err)
		}

		return response.URL(c, http.StatusOK, roleURL(role, "login"))
	}
}

// authenticatedUserID reads the user id of a verified session.
func authenticatedUserID(c echo.Context) (int64, error) {
	state, ok := deliverycontext.AuthState(c).(entity.Authenticated)
	if !ok {
		return 0, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return state.UserID, nil
}
