package config

import (
	"fmt"
	"os"

	"stock-watchlist/src/models"

	"gopkg.in/yaml.v3"
)

// Environment variable that overrides upstream.api_key from the YAML file.
const APIKeyEnvVar = "ALPHAVANTAGE_API_KEY"

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	// 3. The credential may come from the environment instead of the file
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		config.Upstream.APIKey = key
	}

	// 4. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

func (c *Config) applyDefaults() {
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "https://www.alphavantage.co/query"
	}
	if c.Upstream.OutputSize == "" {
		c.Upstream.OutputSize = "compact"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "file"
	}
	if c.Cache.TTLHours == 0 {
		c.Cache.TTLHours = 24
	}
	if c.Network.RequestTimeout == 0 {
		c.Network.RequestTimeout = 30
	}
	if c.Network.ConcurrentRequests == 0 {
		c.Network.ConcurrentRequests = 5
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	// Validate App configuration (Flattened)
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Validate Server configuration (Flattened)
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	// Validate Upstream configuration
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL cannot be empty")
	}
	if c.Upstream.OutputSize != "compact" && c.Upstream.OutputSize != "full" {
		return fmt.Errorf("invalid output size '%s' (must be compact or full)", c.Upstream.OutputSize)
	}

	// Validate Cache configuration
	if c.Cache.Enabled {
		switch c.Cache.Backend {
		case "file":
			if c.Cache.Dir == "" {
				return fmt.Errorf("cache dir cannot be empty for file backend")
			}
		case "sqlite":
			if c.Cache.DBPath == "" {
				return fmt.Errorf("cache db path cannot be empty for sqlite backend")
			}
		case "postgres":
			if c.Cache.DSN == "" {
				return fmt.Errorf("cache dsn cannot be empty for postgres backend")
			}
		default:
			return fmt.Errorf("unknown cache backend '%s'", c.Cache.Backend)
		}
		if c.Cache.TTLHours <= 0 {
			return fmt.Errorf("cache TTL must be greater than 0")
		}
	}

	// Validate Network configuration
	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	if c.Network.ConcurrentRequests <= 0 {
		return fmt.Errorf("concurrent requests must be greater than 0")
	}

	return nil
}

// -----------------------------------------------------------------------------

// MockMode reports whether the orchestrator must serve built-in mock data:
// either forced by configuration or implied by a missing API credential.
func (c *Config) MockMode() bool {
	return c.Mocks.Force || c.Upstream.APIKey == ""
}
