package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"concrental-backend/internal/storage"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Email     EmailConfig     `yaml:"email"`
	Storage   storage.Config  `yaml:"storage"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	Routing   RoutingConfig   `yaml:"routing"`
	Contract  ContractConfig  `yaml:"contract"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// AuthConfig contains JWT token settings
type AuthConfig struct {
	JWTSecret          string `yaml:"jwt_secret"`
	AccessTokenMinutes int    `yaml:"access_token_expiry_minutes"`
}

// EmailConfig contains SendGrid settings for reminder mail
type EmailConfig struct {
	Enabled   bool   `yaml:"enabled"`
	APIKey    string `yaml:"api_key"`
	FromName  string `yaml:"from_name"`
	FromEmail string `yaml:"from_email"`
}

// GeocodingConfig contains Nominatim settings. Locality is appended to every
// free-text address before lookup.
type GeocodingConfig struct {
	BaseURL        string `yaml:"base_url"`
	UserAgent      string `yaml:"user_agent"`
	Locality       string `yaml:"locality"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// RoutingConfig contains OSRM settings. When disabled, freight estimation
// uses geodesic distance only.
type RoutingConfig struct {
	Enabled        bool   `yaml:"enabled"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ContractConfig names the lessor printed on rendered contracts
type ContractConfig struct {
	CompanyName string `yaml:"company_name"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	Enabled              bool   `yaml:"enabled"`
	SendOverdueReminders string `yaml:"send_overdue_reminders"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.Auth.JWTSecret = val
	}

	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.APIKey = val
	}

	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("STORAGE_TYPE"); val != "" {
		c.Storage.Type = val
	}
	if val := os.Getenv("STORAGE_BUCKET"); val != "" {
		c.Storage.Bucket = val
	}
	if val := os.Getenv("STORAGE_CREDENTIALS_FILE"); val != "" {
		c.Storage.CredentialsFile = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.Auth.AccessTokenMinutes <= 0 {
		c.Auth.AccessTokenMinutes = 60
	}

	if c.Email.Enabled && c.Email.APIKey == "" {
		return fmt.Errorf("sendgrid api key is required when email is enabled")
	}

	switch c.Storage.Type {
	case "", "local":
		c.Storage.Type = "local"
		if c.Storage.LocalDir == "" {
			c.Storage.LocalDir = "./uploads"
		}
	case "firebase":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage bucket is required for firebase storage")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}

	if c.Geocoding.BaseURL == "" {
		c.Geocoding.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if c.Geocoding.UserAgent == "" {
		c.Geocoding.UserAgent = "concrental-backend"
	}
	if c.Geocoding.Locality == "" {
		c.Geocoding.Locality = "Curitiba, Brazil"
	}
	if c.Geocoding.TimeoutSeconds <= 0 {
		c.Geocoding.TimeoutSeconds = 10
	}

	if c.Routing.Enabled && c.Routing.BaseURL == "" {
		c.Routing.BaseURL = "https://router.project-osrm.org"
	}
	if c.Routing.TimeoutSeconds <= 0 {
		c.Routing.TimeoutSeconds = 10
	}

	if c.Contract.CompanyName == "" {
		c.Contract.CompanyName = "ConcRental"
	}

	if c.Scheduler.SendOverdueReminders == "" {
		c.Scheduler.SendOverdueReminders = "0 8 * * *" // 8 AM UTC daily
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GeocodingTimeout returns the Nominatim client timeout
func (c *Config) GeocodingTimeout() time.Duration {
	return time.Duration(c.Geocoding.TimeoutSeconds) * time.Second
}

// RoutingTimeout returns the OSRM client timeout
func (c *Config) RoutingTimeout() time.Duration {
	return time.Duration(c.Routing.TimeoutSeconds) * time.Second
}

// AccessTokenTTL returns the JWT lifetime
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.Auth.AccessTokenMinutes) * time.Minute
}
