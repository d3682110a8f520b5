package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, time.Hour, cfg.Recovery.MinAge)
	assert.Equal(t, 24*time.Hour, cfg.Recovery.MaxAge)
	assert.Equal(t, 20, cfg.Recovery.BatchSize)
	assert.Equal(t, 5, cfg.Recovery.Concurrency)
	assert.Equal(t, "0 * * * *", cfg.Cron.RecoverySchedule)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RECOVERY_MIN_AGE", "30m")
	t.Setenv("RECOVERY_BATCH_SIZE", "50")
	t.Setenv("FRONTEND_URL", "https://shop.example.com")
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.Recovery.MinAge)
	assert.Equal(t, 50, cfg.Recovery.BatchSize)
	assert.Equal(t, "https://shop.example.com", cfg.App.FrontendURL)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"window inverted", map[string]string{"RECOVERY_MIN_AGE": "48h"}, "RECOVERY_MIN_AGE"},
		{"production jwt", map[string]string{"APP_ENV": "production"}, "JWT_SECRET"},
		{"production db", map[string]string{"APP_ENV": "production", "JWT_SECRET": "s"}, "DB_PASSWORD"},
		{"production cron", map[string]string{"APP_ENV": "production", "JWT_SECRET": "s", "DB_PASSWORD": "p"}, "CRON_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDatabaseConfig_DBConfig(t *testing.T) {
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_NAME", "storefront")
	t.Setenv("DB_SSLMODE", "disable")
	t.Setenv("DB_CONNECT_TIMEOUT", "10s")
	t.Setenv("DB_PASSWORD", "p@ss word")
	t.Setenv("DB_MAX_CONNECTIONS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	db := cfg.Database.DBConfig()
	assert.Equal(t, "pg", db.Host)
	assert.EqualValues(t, 10, db.MaxConns)
	assert.Equal(t, 10*time.Second, db.ConnectTimeout)
	assert.Equal(t, "postgresql://postgres:p%40ss%20word@pg:5432/storefront?sslmode=disable", db.DSN())
}
