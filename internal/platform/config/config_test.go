package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("TIMEZONE", "")

	// Empty env values are ignored by viper's AutomaticEnv unless AllowEmptyEnv is set.
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverBolt, cfg.StorageDriver)
	assert.Equal(t, "pasale.db", cfg.BoltPath)
	assert.Equal(t, "pasale-data", cfg.SnapshotSlot)
	assert.Equal(t, "Asia/Kathmandu", cfg.Location.String())
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	viper.Reset()
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Setenv("STORAGE_DRIVER", "POSTGRES")
	t.Setenv("PGSQL_URL", "postgres://localhost/pasale")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://pasale.example")
	t.Setenv("TIMEZONE", "Not/AZone")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, []string{"http://localhost:3000", "https://pasale.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "UTC", cfg.Location.String())
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	viper.Reset()
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := LoadConfig()
	assert.Error(t, err)
}
