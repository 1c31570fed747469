package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
driver = "memory"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 9, cfg.Slots.DefaultOpeningHour)
	assert.Equal(t, 18, cfg.Slots.DefaultClosingHour)
	assert.Equal(t, 7, cfg.Slots.HorizonDays)
	assert.Equal(t, 24*time.Hour, cfg.Slots.RefreshIntervalDuration())
	assert.True(t, cfg.Booking.StrictStatusTransitions)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[slots]
horizon_days = 14
refresh_interval = "6h"

[booking]
strict_status_transitions = false
`)
	t.Setenv("DB_PASSWORD", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 14, cfg.Slots.HorizonDays)
	assert.Equal(t, 6*time.Hour, cfg.Slots.RefreshIntervalDuration())
	assert.False(t, cfg.Booking.StrictStatusTransitions)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_DotEnv(t *testing.T) {
	path := writeConfig(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), ".env"), []byte("HTTP_PORT=7070\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("HTTP_PORT") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown driver", content: "[database]\ndriver = \"sqlite\""},
		{name: "bad opening hour", content: "[slots]\ndefault_opening_hour = 24"},
		{name: "zero horizon", content: "[slots]\nhorizon_days = 0"},
		{name: "bad interval", content: "[slots]\nrefresh_interval = \"daily\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
