// Package response writes the JSON bodies of successful API calls.
package response

import (
	"github.com/labstack/echo/v4"
)

// URLResponse tells the front end where to navigate next.
type URLResponse struct {
	URL string `json:"url"`
}

// ObjectResponse wraps a single returned entity.
type ObjectResponse struct {
	Object any `json:"object"`
}

// URL writes {"url": url} with statusCode.
func URL(c echo.Context, statusCode int, url string) error {
	return c.JSON(statusCode, URLResponse{URL: url})
}

// Object writes {"object": obj} with statusCode.
func Object(c echo.Context, statusCode int, obj any) error {
	return c.JSON(statusCode, ObjectResponse{Object: obj})
}

// JSON writes data as the whole body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}
