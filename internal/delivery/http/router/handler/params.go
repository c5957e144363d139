// Package handler contains the HTTP handlers of the shoploc API.
package handler

import (
	"strconv"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const birthdayLayout = "2006-01-02"

// queryID reads a positive numeric id from the query string.
func queryID(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " is required"))
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer"))
	}

	return id, nil
}

// bindAndValidate decodes the body (json or form) into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	return c.Validate(req)
}

// parseBirthday accepts an empty value or a YYYY-MM-DD date.
func parseBirthday(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	birthday, err := time.Parse(birthdayLayout, raw)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("birthday must be YYYY-MM-DD"))
	}

	return &birthday, nil
}

func roleURL(role entity.Role, page string) string {
	return "/" + role.String() + "/" + page
}
