package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Transaction TransactionConfig `mapstructure:"transaction"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Cards       CardsConfig       `mapstructure:"cards"`
	CORS        CORSConfig        `mapstructure:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	MetricsEnabled    bool          `mapstructure:"metricsEnabled"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	// Driver is postgres or memory
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	IsolationLevel  string        `mapstructure:"isolationLevel"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	SlowQuery       time.Duration `mapstructure:"slowQueryMs"` // milliseconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// TransactionConfig contains transfer retry and locking settings
type TransactionConfig struct {
	LockTimeout   time.Duration `mapstructure:"lockTimeoutMs"` // milliseconds
	MaxRetries    int           `mapstructure:"maxRetries"`
	RetryInterval time.Duration `mapstructure:"retryIntervalMs"`    // milliseconds
	MaxInterval   time.Duration `mapstructure:"maxRetryIntervalMs"` // milliseconds
	JitterFactor  float64       `mapstructure:"jitterFactor"`
}

// AuthConfig contains token and bootstrap-account settings
type AuthConfig struct {
	JWTSecret    string             `mapstructure:"jwtSecret"`
	Issuer       string             `mapstructure:"issuer"`
	TokenTTL     time.Duration      `mapstructure:"tokenTTL"` // minutes
	BcryptCost   int                `mapstructure:"bcryptCost"`
	DefaultAdmin DefaultAdminConfig `mapstructure:"defaultAdmin"`
}

// DefaultAdminConfig describes the admin account created at startup when missing
type DefaultAdminConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// CardsConfig contains card issuing and expiry sweep settings
type CardsConfig struct {
	NumberPrefix        string        `mapstructure:"numberPrefix"`
	ExpirySweepInterval time.Duration `mapstructure:"expirySweepInterval"` // minutes, 0 disables
}

// CORSConfig contains cross-origin settings for the HTTP API
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
	MaxAge         int      `mapstructure:"maxAge"`
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
