package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRACKER_SERVER_PORT", "9090")
	t.Setenv("TRACKER_SERVER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port_out_of_range", "TRACKER_SERVER_PORT", "70000"},
		{"port_zero", "TRACKER_SERVER_PORT", "0"},
		{"unknown_log_level", "TRACKER_SERVER_LOG_LEVEL", "loud"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
