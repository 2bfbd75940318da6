package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Driver:         "postgres",
		Host:           "localhost",
		Port:           5432,
		Username:       "cardbank",
		Password:       "secret",
		Database:       "cardbank",
		SSLMode:        "disable",
		IsolationLevel: "serializable",
		MaxOpenConns:   10,
		MaxIdleConns:   5,
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"Driver", func(c *Config) { c.Driver = "mysql" }},
		{"Host", func(c *Config) { c.Host = "" }},
		{"Port", func(c *Config) { c.Port = 0 }},
		{"Username", func(c *Config) { c.Username = "" }},
		{"SSLMode", func(c *Config) { c.SSLMode = "maybe" }},
		{"Isolation", func(c *Config) { c.IsolationLevel = "chaos" }},
		{"MaxOpen", func(c *Config) { c.MaxOpenConns = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestConfigIsolation(t *testing.T) {
	c := validConfig()

	for input, expected := range map[string]sql.IsolationLevel{
		"":                sql.LevelSerializable,
		"SERIALIZABLE":    sql.LevelSerializable,
		"repeatable_read": sql.LevelRepeatableRead,
		"read committed":  sql.LevelReadCommitted,
	} {
		c.IsolationLevel = input
		level, err := c.Isolation()
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}
}

func TestFromAppConfig(t *testing.T) {
	app := &config.Config{}
	app.Database.Driver = "postgres"
	app.Database.Port = "6543"
	app.Database.IsolationLevel = "read committed"
	app.Transaction.LockTimeout = 2 * time.Second
	app.Logger.Level = "warn"

	c := FromAppConfig(app)

	assert.Equal(t, 6543, c.Port)
	assert.Equal(t, 2*time.Second, c.LockTimeout)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "read committed", c.IsolationLevel)
}

func TestDSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=cardbank password=secret dbname=cardbank sslmode=disable",
		validConfig().DSN())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("70000"))
}
