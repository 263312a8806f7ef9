package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			Key:             "api-key",
			SubscriptionKey: "sub-key",
		},
		Auth: Auth{
			Username: "user@example.com",
			Password: "secret",
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that defaults are applied but validation
// still demands credentials.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAPIConfigs)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultTokenFile, cfg.Auth.TokenFile)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	first := validConfig()
	first.API.UserAgent = "first-agent"
	first.Log.Level = "debug"

	second := &StructuredConfig{API: API{UserAgent: "second-agent"}}

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second-agent", cfg.API.UserAgent)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "api-key", cfg.API.Key)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultApplicationName, cfg.API.ApplicationName)
	assert.Equal(t, DefaultUserAgent, cfg.API.UserAgent)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultTokenFile, cfg.Auth.TokenFile)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("MIKUD_API_KEY", "env-key")
	t.Setenv("MIKUD_AUTH_USERNAME", "env-user")

	b := newConfigBuilder(nil)
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-key", b.configs[0].API.Key)
	assert.Equal(t, "env-user", b.configs[0].Auth.Username)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_KeepsRemainingArgs(t *testing.T) {
	b := newConfigBuilder([]string{"-api-key", "flag-key", "cities", "תל"})
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-key", b.configs[0].API.Key)
	assert.Equal(t, []string{"cities", "תל"}, b.rest)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder([]string{"-nope"})
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.API.Key = "json-key"
	payload.Auth.TokenFile = "/tmp/token.json"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-key", b.configs[1].API.Key)
	assert.Equal(t, "/tmp/token.json", b.configs[1].Auth.TokenFile)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetConfig ─────────────────────────────────────────────────────────────────

// TestGetConfig_Priority verifies env < flags < json.
func TestGetConfig_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.API.RequestTimeout = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	t.Setenv("MIKUD_API_KEY", "env-key")
	t.Setenv("MIKUD_API_SUBSCRIPTION_KEY", "env-sub")
	t.Setenv("MIKUD_AUTH_USERNAME", "env-user")
	t.Setenv("MIKUD_AUTH_PASSWORD", "env-pass")
	t.Setenv("MIKUD_API_REQUEST_TIMEOUT", "10s")
	t.Setenv("MIKUD_CONFIG", path)

	cfg, rest, err := GetConfig([]string{"-api-key", "flag-key", "-request-timeout", "20s", "address", "9546432"})
	require.NoError(t, err)

	assert.Equal(t, "flag-key", cfg.API.Key)
	assert.Equal(t, "env-sub", cfg.API.SubscriptionKey)
	assert.Equal(t, 5*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, []string{"address", "9546432"}, rest)
}
