package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const FileName = "arcadia.config.json"

type Config struct {
	Version      string       `json:"version" mapstructure:"version"`
	Seed         int64        `json:"seed,omitempty" mapstructure:"seed"`
	ExportPath   string       `json:"export_path" mapstructure:"export_path"`
	Database     Database     `json:"database" mapstructure:"database"`
	MockDataSize MockDataSize `json:"mock_data_size" mapstructure:"mock_data_size"`
	Cache        Cache        `json:"cache" mapstructure:"cache"`
	Log          Log          `json:"log" mapstructure:"log"`
	Server       Server       `json:"server" mapstructure:"server"`
}

type Database struct {
	Provider    string `json:"provider" mapstructure:"provider"`
	URLEnv      string `json:"url_env" mapstructure:"url_env"`
	UseMockData bool   `json:"use_mock_data" mapstructure:"use_mock_data"`
}

// MockDataSize sets the row counts used when the synthetic generator backs the dashboard.
type MockDataSize struct {
	SpendData  int `json:"spend_data" mapstructure:"spend_data"`
	Suppliers  int `json:"suppliers" mapstructure:"suppliers"`
	Contracts  int `json:"contracts" mapstructure:"contracts"`
	RiskAlerts int `json:"risk_alerts" mapstructure:"risk_alerts"`
}

type Cache struct {
	TTL         time.Duration `json:"ttl" mapstructure:"ttl"`
	RedisURLEnv string        `json:"redis_url_env" mapstructure:"redis_url_env"`
	KeyPrefix   string        `json:"key_prefix" mapstructure:"key_prefix"`
}

type Log struct {
	Level       string `json:"level" mapstructure:"level"`
	Environment string `json:"environment" mapstructure:"environment"`
}

type Server struct {
	Port int `json:"port" mapstructure:"port"`
}

var supportedProviders = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3", "mongodb"}

func DefaultConfig() *Config {
	return &Config{
		Version:    "1",
		ExportPath: "data/export",
		Database: Database{
			Provider:    "postgresql",
			URLEnv:      "DATABASE_URL",
			UseMockData: true,
		},
		MockDataSize: MockDataSize{
			SpendData:  1000,
			Suppliers:  40,
			Contracts:  100,
			RiskAlerts: 50,
		},
		Cache: Cache{
			TTL:         time.Hour,
			RedisURLEnv: "REDIS_URL",
			KeyPrefix:   "arcadia:",
		},
		Log: Log{
			Level:       "info",
			Environment: "development",
		},
		Server: Server{Port: 8501},
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	def := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = def.Version
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = def.ExportPath
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = def.Database.Provider
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = def.Database.URLEnv
	}
	if !viper.IsSet("database.use_mock_data") {
		cfg.Database.UseMockData = true
	}
	if !viper.IsSet("mock_data_size.spend_data") {
		cfg.MockDataSize.SpendData = def.MockDataSize.SpendData
	}
	if !viper.IsSet("mock_data_size.suppliers") {
		cfg.MockDataSize.Suppliers = def.MockDataSize.Suppliers
	}
	if !viper.IsSet("mock_data_size.contracts") {
		cfg.MockDataSize.Contracts = def.MockDataSize.Contracts
	}
	if !viper.IsSet("mock_data_size.risk_alerts") {
		cfg.MockDataSize.RiskAlerts = def.MockDataSize.RiskAlerts
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = def.Cache.TTL
	}
	if cfg.Cache.RedisURLEnv == "" {
		cfg.Cache.RedisURLEnv = def.Cache.RedisURLEnv
	}
	if cfg.Cache.KeyPrefix == "" {
		cfg.Cache.KeyPrefix = def.Cache.KeyPrefix
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Environment == "" {
		cfg.Log.Environment = def.Log.Environment
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

// GetRedisURL returns the redis URL, or "" when the in-process cache should be used.
func (c *Config) GetRedisURL() string {
	if c.Cache.RedisURLEnv == "" {
		return ""
	}
	return os.Getenv(c.Cache.RedisURLEnv)
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	sizes := map[string]int{
		"spend_data":  c.MockDataSize.SpendData,
		"suppliers":   c.MockDataSize.Suppliers,
		"contracts":   c.MockDataSize.Contracts,
		"risk_alerts": c.MockDataSize.RiskAlerts,
	}
	for name, n := range sizes {
		if n < 0 {
			return fmt.Errorf("mock_data_size.%s cannot be negative", name)
		}
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}

	if c.ExportPath == "" {
		return fmt.Errorf("export_path cannot be empty")
	}

	return nil
}

func (c *Config) EnsureDirectories() error {
	if c.ExportPath == "" || c.ExportPath == "." {
		return nil
	}
	if err := os.MkdirAll(c.ExportPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.ExportPath, err)
	}
	return nil
}

func IsInitialized() bool {
	_, err := os.Stat(FileName)
	return err == nil
}

// InitializeProject writes a default config file in the working directory.
func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("%s already exists", FileName)
	}

	cfg := DefaultConfig()
	data, err := json.MarshalIndent(fileView(cfg), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(FileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return cfg.EnsureDirectories()
}

// fileView renders durations as strings so viper can read the file back.
func fileView(c *Config) map[string]interface{} {
	return map[string]interface{}{
		"version":        c.Version,
		"export_path":    c.ExportPath,
		"database":       c.Database,
		"mock_data_size": c.MockDataSize,
		"cache": map[string]interface{}{
			"ttl":           c.Cache.TTL.String(),
			"redis_url_env": c.Cache.RedisURLEnv,
			"key_prefix":    c.Cache.KeyPrefix,
		},
		"log":    c.Log,
		"server": c.Server,
	}
}
