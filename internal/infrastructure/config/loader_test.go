package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.Set("database.driver", DriverMemory)
	v.Set("auth.jwtSecret", "test-secret")
	v.Set("auth.defaultAdmin.password", "admin-password")
	for key, value := range overrides {
		v.Set(key, value)
	}
	return v
}

func TestDecodeAppliesDefaultsAndUnits(t *testing.T) {
	cfg, err := decode(newTestViper(nil), Test)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.Transaction.LockTimeout)
	assert.Equal(t, 50*time.Millisecond, cfg.Transaction.RetryInterval)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, time.Hour, cfg.Cards.ExpirySweepInterval)
	assert.Equal(t, "serializable", cfg.Database.IsolationLevel)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestDecodeValidation(t *testing.T) {
	testCases := []struct {
		name      string
		overrides map[string]any
		contains  string
	}{
		{"Unknown driver", map[string]any{"database.driver": "mysql"}, "unsupported database.driver"},
		{"Postgres without credentials", map[string]any{"database.driver": DriverPostgres}, "database.username"},
		{"Missing secret", map[string]any{"auth.jwtSecret": ""}, "auth.jwtSecret is required"},
		{"Missing admin password", map[string]any{"auth.defaultAdmin.password": ""}, "defaultAdmin.password"},
		{"Bad port", map[string]any{"server.port": 70000}, "invalid server.port"},
		{"Negative retries", map[string]any{"transaction.maxRetries": -1}, "maxRetries"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decode(newTestViper(tc.overrides), Development)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestProductionRequiresLongSecret(t *testing.T) {
	_, err := decode(newTestViper(nil), Production)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")

	cfg, err := decode(newTestViper(map[string]any{"auth.jwtSecret": "0123456789abcdef0123456789abcdef"}), Production)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("BP_ENV", "test")
	t.Setenv("BP_DB_DRIVER", DriverMemory)
	t.Setenv("BP_JWT_SECRET", "from-env")
	t.Setenv("BP_ADMIN_PASSWORD", "from-env")
	t.Setenv("BP_SERVER_PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 9090, cfg.Server.Port)
}
