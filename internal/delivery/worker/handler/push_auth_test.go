package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thenextech/shoploc-back-end/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func TestNewPushAuthenticator(t *testing.T) {
	google := &config.PubSubConfig{Provider: "google", PushServiceAccount: "push@shoploc.iam.gserviceaccount.com"}

	tests := []struct {
		name string
		env  string
		ps   *config.PubSubConfig
		want bool
	}{
		{name: "google in prod", env: "prod", ps: google, want: true},
		{name: "google in develop", env: "develop", ps: google, want: false},
		{name: "google in local", env: "local", ps: google, want: false},
		{name: "local provider", env: "prod", ps: &config.PubSubConfig{Provider: "local"}, want: false},
		{name: "no pubsub", env: "prod", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.ps}
			cfg.Env.Env = tt.env

			auth := newPushAuthenticator(cfg)
			assert.Equal(t, tt.want, auth != nil)
			if auth != nil {
				assert.Equal(t, google.PushServiceAccount, auth.serviceAccount)
			}
		})
	}
}

type validation struct {
	token, audience string
}

func fakeAuthenticator(payload *idtoken.Payload, err error, seen *validation) *pushAuthenticator {
	return &pushAuthenticator{
		serviceAccount: "push@shoploc.iam.gserviceaccount.com",
		validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			*seen = validation{token: token, audience: audience}

			return payload, err
		},
	}
}

func pushRequest(authorization string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "http://notifier.internal/push", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	return req
}

func googlePayload(email string, verified bool) *idtoken.Payload {
	return &idtoken.Payload{
		Issuer: "https://accounts.google.com",
		Claims: map[string]any{"email": email, "email_verified": verified},
	}
}

func TestPushAuthenticator_AcceptsExpectedServiceAccount(t *testing.T) {
	var seen validation
	auth := fakeAuthenticator(googlePayload("push@shoploc.iam.gserviceaccount.com", true), nil, &seen)

	require.NoError(t, auth.authenticate(pushRequest("Bearer tok")))
	assert.Equal(t, validation{token: "tok", audience: "http://notifier.internal/push"}, seen)
}

func TestPushAuthenticator_ConfiguredAudienceWins(t *testing.T) {
	var seen validation
	auth := fakeAuthenticator(googlePayload("push@shoploc.iam.gserviceaccount.com", true), nil, &seen)
	auth.audience = "https://notifier.shoploc.fr/push"

	req := pushRequest("Bearer tok")
	req.Header.Set("X-Forwarded-Proto", "https")
	require.NoError(t, auth.authenticate(req))
	assert.Equal(t, "https://notifier.shoploc.fr/push", seen.audience)
}

func TestPushAuthenticator_Rejects(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		err           error
		want          string
	}{
		{name: "no header", want: "missing bearer token"},
		{name: "basic auth", authorization: "Basic abc", want: "missing bearer token"},
		{name: "invalid signature", authorization: "Bearer tok", err: errors.New("bad signature"), want: "invalid push token"},
		{
			name: "foreign issuer", authorization: "Bearer tok",
			payload: &idtoken.Payload{Issuer: "https://example.com", Claims: map[string]any{}},
			want:    "unexpected issuer",
		},
		{
			name: "unverified email", authorization: "Bearer tok",
			payload: googlePayload("push@shoploc.iam.gserviceaccount.com", false),
			want:    "is not verified",
		},
		{
			name: "other service account", authorization: "Bearer tok",
			payload: googlePayload("intruder@other.iam.gserviceaccount.com", true),
			want:    "is not \"push@shoploc.iam.gserviceaccount.com\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen validation
			auth := fakeAuthenticator(tt.payload, tt.err, &seen)

			assert.ErrorContains(t, auth.authenticate(pushRequest(tt.authorization)), tt.want)
		})
	}
}

func TestHandlePush_RejectsMissingTokenWhenVerifying(t *testing.T) {
	f := newPushFixture(t)
	var seen validation
	f.handler.auth = fakeAuthenticator(nil, nil, &seen)

	rec := f.push(pushBody(t, baguetteEvent(), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, seen.token)
}
