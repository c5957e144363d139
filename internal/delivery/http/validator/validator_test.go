package validator

import (
	"testing"

	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	require.NoError(t, cv.Validate(&sample{Email: "a@x.com", Quantity: 1}))

	err := cv.Validate(&sample{Email: "nope", Quantity: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "email:email")
	assert.Contains(t, appErr.Details(), "quantity:gt")
}
