package session

import (
	"testing"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTripsEveryVariant(t *testing.T) {
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	states := []entity.AuthState{
		entity.Anonymous{},
		entity.PendingVerification{UserEmail: "a@x.com", Role: entity.RoleMerchant, Code: "012345", IssuedAt: issued, Attempts: 2},
		entity.Authenticated{UserEmail: "a@x.com", Role: entity.RoleClient, UserID: 9},
	}

	for _, state := range states {
		t.Run(string(state.Kind()), func(t *testing.T) {
			data, err := encodeState(state)
			require.NoError(t, err)

			decoded, err := decodeState(data)
			require.NoError(t, err)
			assert.Equal(t, state, decoded)
		})
	}
}

func TestCodec_NilEncodesAsAnonymous(t *testing.T) {
	data, err := encodeState(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"anonymous"}`, string(data))
}

func TestCodec_RejectsUnknownKind(t *testing.T) {
	_, err := decodeState([]byte(`{"kind":"admin"}`))
	assert.Error(t, err)

	_, err = decodeState([]byte(`not json`))
	assert.Error(t, err)
}
