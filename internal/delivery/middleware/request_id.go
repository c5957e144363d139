// Package middleware holds the echo middleware shared by the API and the notifier worker.
package middleware

import (
	"log/slog"

	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware correlates a request across the API, the event and the worker.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process adopts the caller's X-Request-Id when it is usable and mints one
// otherwise. The id is echoed in the response.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !usableRequestID(requestID) {
			requestID = uuid.NewString()
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		deliverycontext.BindRequest(c, requestID, m.logger)

		return next(c)
	}
}

// usableRequestID accepts short printable ASCII ids only, so they are safe to log.
func usableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
