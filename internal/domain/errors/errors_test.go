package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError(EntityProduct, 42)

	assert.Equal(t, "Product not found with ID: 42", err.Message())
	assert.Equal(t, "PRODUCT_NOT_FOUND", err.ErrorCode())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NotErrorIs(t, err, ErrOrderNotFound)
}

func TestBaseError_IsSurvivesWrapping(t *testing.T) {
	wrapped := errors.Wrap(ErrLogin.WithDetails("bad password"), "login")

	assert.ErrorIs(t, wrapped, ErrLogin)

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "LOGIN_ERROR", appErr.ErrorCode())
	assert.Equal(t, "bad password", appErr.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert user")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)
}

func TestNewErrorResponse(t *testing.T) {
	body := NewErrorResponse(ErrVerificationCode)

	assert.Equal(t, "Code de vérification incorrect. Veuillez réessayer.", body.Error)
	assert.Equal(t, "VERIFICATION_CODE_ERROR", body.Code)
	assert.Empty(t, body.URL)
}

func TestWithDetails_LeavesOriginalUntouched(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("price must be positive")

	assert.Equal(t, "price must be positive", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.ErrorIs(t, detailed, ErrValidationFailed)
}
