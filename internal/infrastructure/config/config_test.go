package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "PantrySage", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("PANTRYSAGE_SERVER_PORT", "9999")
	t.Setenv("PANTRYSAGE_APP_ENVIRONMENT", "production")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Database.Driver = "postgres"
	cfg.Database.Database = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.Database = "pantrysage"
	assert.NoError(t, cfg.Validate())

	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "memory"
	cfg.Features.EnableSuggestions = true
	cfg.Suggestion.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Database.Driver = "postgres"
	cfg.Database.Database = "pantrysage"
	cfg.Database.Username = "app"
	cfg.Database.Password = "secret"

	dsn := cfg.GetDSN()
	assert.Contains(t, dsn, "dbname=pantrysage")
	assert.Contains(t, dsn, "user=app")
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}
