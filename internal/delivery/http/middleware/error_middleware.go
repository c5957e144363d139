package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every failed request as {"error": ..., "code": ...}.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := translate(err)
	logger := deliverycontext.LoggerFrom(c.Request().Context(), m.logger)
	attrs := []any{
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.Int("status", status),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", append(attrs, slog.Any("error", err))...)
	} else {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			attrs = append(attrs, slog.String("code", appErr.ErrorCode()))
			if details := appErr.Details(); details != "" {
				attrs = append(attrs, slog.String("details", details))
			}
		}
		logger.Info("Request rejected", attrs...)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

// translate maps err onto the response. Server-side causes never reach the body.
func translate(err error) (int, domainerrors.ErrorResponse) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode(), domainerrors.NewErrorResponse(appErr)
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		return http.StatusInternalServerError, domainerrors.NewErrorResponse(domainerrors.ErrInternalError)
	}

	message, ok := httpErr.Message.(string)
	switch {
	case httpErr.Code >= http.StatusInternalServerError:
		message = domainerrors.ErrInternalError.Message()
	case !ok:
		message = http.StatusText(httpErr.Code)
	}

	return httpErr.Code, domainerrors.ErrorResponse{Error: message, Code: "HTTP_ERROR"}
}
