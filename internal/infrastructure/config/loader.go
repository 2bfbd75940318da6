package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment named by BP_ENV.
// A missing config file is tolerated; defaults and BP_ variables still apply.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("BP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvOverrides(v)

	return decode(v, env)
}

func decode(v *viper.Viper, env string) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	processDurations(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.metricsEnabled", true)

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.isolationLevel", "serializable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.slowQueryMs", 200)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	v.SetDefault("transaction.lockTimeoutMs", 5000)
	v.SetDefault("transaction.maxRetries", 3)
	v.SetDefault("transaction.retryIntervalMs", 50)
	v.SetDefault("transaction.maxRetryIntervalMs", 1000)
	v.SetDefault("transaction.jitterFactor", 0.2)

	v.SetDefault("auth.issuer", "cardbank")
	v.SetDefault("auth.tokenTTL", 60)
	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("auth.defaultAdmin.enabled", true)
	v.SetDefault("auth.defaultAdmin.username", "admin")

	v.SetDefault("cards.numberPrefix", "4000")
	v.SetDefault("cards.expirySweepInterval", 60)

	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.maxAge", 300)
}

// getEnvironment determines the environment to use based on BP_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("BP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// bindEnvOverrides maps the short BP_ variable names to nested keys.
// AutomaticEnv alone only sees variables that mirror the key path, such as BP_DATABASE_HOST.
func bindEnvOverrides(v *viper.Viper) {
	bindings := map[string]string{
		"database.host":              "BP_DB_HOST",
		"database.port":              "BP_DB_PORT",
		"database.username":          "BP_DB_USERNAME",
		"database.password":          "BP_DB_PASSWORD",
		"database.database":          "BP_DB_NAME",
		"database.sslMode":           "BP_DB_SSL_MODE",
		"database.driver":            "BP_DB_DRIVER",
		"server.host":                "BP_SERVER_HOST",
		"server.port":                "BP_SERVER_PORT",
		"logger.level":               "BP_LOGGER_LEVEL",
		"transaction.maxRetries":     "BP_TRANSACTION_MAX_RETRIES",
		"auth.jwtSecret":             "BP_JWT_SECRET",
		"auth.defaultAdmin.password": "BP_ADMIN_PASSWORD",
	}
	for key, name := range bindings {
		_ = v.BindEnv(key, name, "BP_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	}
}

// processDurations converts the numeric config values into durations of their documented unit
func processDurations(config *Config) {
	scale := func(d *time.Duration, unit time.Duration) {
		*d = time.Duration(*d) * unit
	}

	scale(&config.Server.ReadTimeout, time.Second)
	scale(&config.Server.WriteTimeout, time.Second)
	scale(&config.Server.IdleTimeout, time.Second)
	scale(&config.Server.ReadHeaderTimeout, time.Second)
	scale(&config.Server.ShutdownTimeout, time.Second)

	scale(&config.Database.ConnMaxLifetime, time.Minute)
	scale(&config.Database.ConnMaxIdleTime, time.Minute)
	scale(&config.Database.QueryTimeout, time.Second)
	scale(&config.Database.RetryDelay, time.Second)
	scale(&config.Database.SlowQuery, time.Millisecond)

	scale(&config.Transaction.LockTimeout, time.Millisecond)
	scale(&config.Transaction.RetryInterval, time.Millisecond)
	scale(&config.Transaction.MaxInterval, time.Millisecond)

	scale(&config.Auth.TokenTTL, time.Minute)
	scale(&config.Cards.ExpirySweepInterval, time.Minute)
}

// validateConfig rejects settings the service cannot start with
func validateConfig(config *Config) error {
	var problems []string

	switch config.Database.Driver {
	case DriverPostgres:
		if config.Database.Username == "" || config.Database.Database == "" {
			problems = append(problems, "database.username and database.database are required for postgres")
		}
	case DriverMemory:
	default:
		problems = append(problems, fmt.Sprintf("unsupported database.driver %q", config.Database.Driver))
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid server.port %d", config.Server.Port))
	}
	if config.Auth.JWTSecret == "" {
		problems = append(problems, "auth.jwtSecret is required")
	} else if config.IsProduction() && len(config.Auth.JWTSecret) < 32 {
		problems = append(problems, "auth.jwtSecret must be at least 32 bytes in production")
	}
	if config.Auth.TokenTTL <= 0 {
		problems = append(problems, "auth.tokenTTL must be positive")
	}
	if config.Auth.DefaultAdmin.Enabled && config.Auth.DefaultAdmin.Password == "" {
		problems = append(problems, "auth.defaultAdmin.password is required when the default admin is enabled")
	}
	if config.Transaction.MaxRetries < 0 {
		problems = append(problems, "transaction.maxRetries cannot be negative")
	}
	if len(config.Cards.NumberPrefix) >= 15 {
		problems = append(problems, "cards.numberPrefix must leave room for the account digits")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
