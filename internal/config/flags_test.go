package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantRest []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-base-url", "https://example.test",
				"-api-key", "key",
				"-subscription-key", "sub",
				"-app-name", "app",
				"-user-agent", "agent",
				"-request-timeout", "15s",
				"-username", "user",
				"-password", "pass",
				"-token-file", "/tmp/t.json",
				"-log-level", "debug",
				"-c", "/path/to/config.json",
			},
			wantRest: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://example.test", cfg.API.BaseURL)
				assert.Equal(t, "key", cfg.API.Key)
				assert.Equal(t, "sub", cfg.API.SubscriptionKey)
				assert.Equal(t, "app", cfg.API.ApplicationName)
				assert.Equal(t, "agent", cfg.API.UserAgent)
				assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
				assert.Equal(t, "user", cfg.Auth.Username)
				assert.Equal(t, "pass", cfg.Auth.Password)
				assert.Equal(t, "/tmp/t.json", cfg.Auth.TokenFile)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name:     "config alias flag",
			args:     []string{"-config", "/path/to/config.json"},
			wantRest: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name:     "stops at command",
			args:     []string{"-username", "user", "zip", "-city", "חיפה"},
			wantRest: []string{"zip", "-city", "חיפה"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "user", cfg.Auth.Username)
			},
		},
		{
			name:     "no flags",
			args:     []string{},
			wantRest: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, tt.wantRest, rest)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, _, err := ParseFlags([]string{"-request-timeout", "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestPrintFlags(t *testing.T) {
	var buf bytes.Buffer
	PrintFlags(&buf)

	assert.Contains(t, buf.String(), "-subscription-key")
	assert.Contains(t, buf.String(), "-token-file")
}
