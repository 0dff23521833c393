package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends for the credential store.
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config stores all configuration for the application.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	PostgresURL string `mapstructure:"POSTGRES_URL"`

	FirecrawlBaseURL      string `mapstructure:"FIRECRAWL_BASE_URL"`
	FirecrawlTimeout      int    `mapstructure:"FIRECRAWL_TIMEOUT"`       // in seconds
	FirecrawlPollInterval int    `mapstructure:"FIRECRAWL_POLL_INTERVAL"` // in seconds
	CredentialTestURL     string `mapstructure:"CREDENTIAL_TEST_URL"`
}

// Load reads configuration from a .env file in the working directory and
// the environment. Environment variables win over the file.
func Load() (*Config, error) {
	return load(".env")
}

func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// The file is optional; production is configured through the environment.
	_ = v.ReadInConfig()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_BACKEND", BackendRedis)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("FIRECRAWL_BASE_URL", "https://api.firecrawl.dev")
	v.SetDefault("FIRECRAWL_TIMEOUT", 120)
	v.SetDefault("FIRECRAWL_POLL_INTERVAL", 2)
	v.SetDefault("CREDENTIAL_TEST_URL", "https://example.com")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration combinations the service cannot start with.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the %s backend", BackendRedis)
		}
	case BackendPostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL is required for the %s backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.FirecrawlPollInterval <= 0 {
		return fmt.Errorf("FIRECRAWL_POLL_INTERVAL must be positive, got %d", c.FirecrawlPollInterval)
	}
	return nil
}

// FirecrawlHTTPTimeout is the transport timeout applied to every Firecrawl call.
// Zero disables it.
func (c *Config) FirecrawlHTTPTimeout() time.Duration {
	return time.Duration(c.FirecrawlTimeout) * time.Second
}

func (c *Config) FirecrawlPollEvery() time.Duration {
	return time.Duration(c.FirecrawlPollInterval) * time.Second
}
