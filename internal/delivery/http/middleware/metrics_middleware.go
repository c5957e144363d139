package middleware

import (
	"github.com/thenextech/shoploc-back-end/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count, latency and in-flight requests
// labeled by route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := m.metrics.RequestStarted()

		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		done(c.Request().Method, route, c.Response().Status)

		return nil
	}
}
