package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"session": map[string]any{
			"cookieName": "",
		},
		"verification": map[string]any{
			"maxAttempts": 0,
		},
		"mail": map[string]any{
			"fromName": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "VERIFICATION_MAXATTEMPTS", want: "verification.maxAttempts"},
		{envKey: "MAIL_FROMNAME", want: "mail.fromName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, defaultCookieName, cfg.Session.CookieName)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 6, cfg.Verification.CodeLength)
	assert.Equal(t, 10*time.Minute, cfg.Verification.CodeTTL)
	assert.Zero(t, cfg.Verification.MaxAttempts)
	assert.Equal(t, "log", cfg.Mail.Driver)
	assert.Equal(t, defaultPasswordMinLength, cfg.PasswordPolicy.MinLength)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Session:      &SessionConfig{Store: "redis", CookieName: "sid", TTL: time.Minute},
		Verification: &VerificationConfig{CodeLength: 8, CodeTTL: time.Minute, MaxAttempts: 3},
	}
	cfg.applyDefaults()

	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, time.Minute, cfg.Session.TTL)
	assert.Equal(t, 8, cfg.Verification.CodeLength)
	assert.Equal(t, 3, cfg.Verification.MaxAttempts)
}
