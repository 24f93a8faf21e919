package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_NAME", "APP_VERSION", "APP_PORT", "TRUSTED_PROXIES",
		"CORS_ALLOWED_ORIGINS", "TRANSLATION_FOLDER", "SEED_TODOS", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
	// t.Setenv with "" still marks the key as set; these keys must be absent.
	unsetForTest(t, "APP_ENV", "APP_NAME", "APP_VERSION", "APP_PORT", "CORS_ALLOWED_ORIGINS",
		"TRANSLATION_FOLDER", "SEED_TODOS", "SHUTDOWN_TIMEOUT")

	cfg := LoadConfig()

	assert.Equal(t, EnvProduction, cfg.AppEnv)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "todolist", cfg.AppName)
	assert.Equal(t, "dev", cfg.AppVersion)
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Nil(t, cfg.TrustedProxies)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "pkg/translator/translation", cfg.TranslationFolder)
	assert.True(t, cfg.SeedTodos)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", EnvDevelopment)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1 , ,192.168.0.0/16")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	t.Setenv("SEED_TODOS", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := LoadConfig()

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.TrustedProxies)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.SeedTodos)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestGetBoolAndDuration_FallBackOnGarbage(t *testing.T) {
	t.Setenv("SEED_TODOS", "sometimes")
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")

	assert.True(t, getBool("SEED_TODOS", true))
	assert.Equal(t, time.Second, getDuration("SHUTDOWN_TIMEOUT", time.Second))
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList(""))
	assert.Nil(t, parseList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, parseList("a, b"))
}

// unsetForTest removes keys for the duration of the test. Call t.Setenv on the
// same keys first so the originals are restored on cleanup.
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}
