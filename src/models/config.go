package models

// MConfig Structure
type MConfig struct {
	Name     string          `yaml:"name"`
	Host     string          `yaml:"host"`
	Port     int             `yaml:"port"`
	LogLevel string          `yaml:"log_level"`
	Upstream MUpstreamConfig `yaml:"upstream"`
	Cache    MCacheConfig    `yaml:"cache"`
	Network  MNetworkConfig  `yaml:"network"`
	Mocks    MMocksConfig    `yaml:"mocks"`
}

type MUpstreamConfig struct {
	BaseURL    string `yaml:"base_url"`
	APIKey     string `yaml:"api_key"` // Optional; ALPHAVANTAGE_API_KEY overrides
	OutputSize string `yaml:"output_size"`
}

type MCacheConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Backend  string `yaml:"backend"` // file, sqlite or postgres
	Dir      string `yaml:"dir"`
	DBPath   string `yaml:"db_path"`
	DSN      string `yaml:"dsn"`
	TTLHours int    `yaml:"ttl_hours"`
}

type MNetworkConfig struct {
	RequestTimeout     int    `yaml:"timeout"`
	ConcurrentRequests int    `yaml:"concurrent_requests"`
	UserAgent          string `yaml:"user_agent"`
}

type MMocksConfig struct {
	Force bool `yaml:"force"`
}
