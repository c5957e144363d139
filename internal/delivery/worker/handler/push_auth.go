package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/domain/constants"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// pushAuthenticator checks the OIDC token Google signs for authenticated push
// subscriptions: https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions
type pushAuthenticator struct {
	audience       string
	serviceAccount string
	validate       func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// newPushAuthenticator returns nil when pushes are accepted unauthenticated:
// for any provider but google, and for google in local or develop.
func newPushAuthenticator(cfg *config.Config) *pushAuthenticator {
	if !requiresPushAuth(cfg) {
		return nil
	}

	return &pushAuthenticator{
		audience:       cfg.PubSub.PushAudience,
		serviceAccount: cfg.PubSub.PushServiceAccount,
		validate:       idtoken.Validate,
	}
}

func requiresPushAuth(cfg *config.Config) bool {
	if cfg == nil || cfg.PubSub == nil || cfg.PubSub.Provider != constants.PubSubProviderGoogle {
		return false
	}

	return cfg.Env.Env != constants.EnvDevelop && cfg.Env.Env != constants.EnvLocal
}

func (a *pushAuthenticator) authenticate(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := a.validate(req.Context(), token, a.audienceFor(req))
	if err != nil {
		return errors.Wrap(err, "invalid push token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}

	email, _ := payload.Claims["email"].(string)
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.Errorf("push identity %q is not verified", email)
	}
	if a.serviceAccount != "" && email != a.serviceAccount {
		return errors.Errorf("push identity %q is not %q", email, a.serviceAccount)
	}

	return nil
}

func (a *pushAuthenticator) audienceFor(req *http.Request) string {
	if a.audience != "" {
		return a.audience
	}

	scheme := "http"
	if req.TLS != nil || req.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
