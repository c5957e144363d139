package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOverridesYaml(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("session:\n  cookieName: SHOPLOC\n  ttl: 30m\nverification:\n  maxAttempts: 3\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), yaml, 0o600))

	t.Setenv("SESSION_COOKIENAME", "SID")
	t.Setenv("VERIFICATION_MAXATTEMPTS", "5")

	cfg := &Config{}
	require.NoError(t, load(cfg, "app", []string{filepath.Join(dir, "missing"), dir}))

	assert.Equal(t, "SID", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 5, cfg.Verification.MaxAttempts)
}

func TestLoad_MissingFile(t *testing.T) {
	err := load(&Config{}, "absent", []string{t.TempDir()})

	assert.ErrorContains(t, err, "absent.yaml not found")
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := replicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
}
