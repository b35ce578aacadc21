package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.ExportPath != "data/export" {
		t.Errorf("Expected export_path to be 'data/export', got '%s'", config.ExportPath)
	}

	if config.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", config.Database.Provider)
	}

	if config.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", config.Database.URLEnv)
	}

	if !config.Database.UseMockData {
		t.Error("Expected use_mock_data to default to true")
	}

	if config.MockDataSize.SpendData != 1000 || config.MockDataSize.Suppliers != 40 ||
		config.MockDataSize.Contracts != 100 || config.MockDataSize.RiskAlerts != 50 {
		t.Errorf("Unexpected mock data sizes: %+v", config.MockDataSize)
	}

	if config.Cache.TTL != time.Hour {
		t.Errorf("Expected cache ttl to be 1h, got %s", config.Cache.TTL)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("database.provider", "sqlite")
	viper.Set("mock_data_size.spend_data", 250)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Provider != "sqlite" {
		t.Errorf("Expected provider 'sqlite', got '%s'", cfg.Database.Provider)
	}
	if cfg.MockDataSize.SpendData != 250 {
		t.Errorf("Expected spend_data 250, got %d", cfg.MockDataSize.SpendData)
	}
	if cfg.MockDataSize.Contracts != 100 {
		t.Errorf("Expected contracts default 100, got %d", cfg.MockDataSize.Contracts)
	}
	if !cfg.Database.UseMockData {
		t.Error("Expected use_mock_data to default to true when unset")
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("Expected port 8501, got %d", cfg.Server.Port)
	}
}

func TestLoadRespectsExplicitFalseAndZero(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("database.use_mock_data", false)
	viper.Set("mock_data_size.risk_alerts", 0)
	viper.Set("cache.ttl", "15m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.UseMockData {
		t.Error("Expected use_mock_data to stay false")
	}
	if cfg.MockDataSize.RiskAlerts != 0 {
		t.Errorf("Expected risk_alerts 0, got %d", cfg.MockDataSize.RiskAlerts)
	}
	if cfg.Cache.TTL != 15*time.Minute {
		t.Errorf("Expected ttl 15m, got %s", cfg.Cache.TTL)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}

	cfg.Database.Provider = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected unsupported provider to fail validation")
	}

	cfg = DefaultConfig()
	cfg.MockDataSize.Contracts = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Expected negative size to fail validation")
	}

	cfg = DefaultConfig()
	cfg.Cache.TTL = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected zero ttl to fail validation")
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.URLEnv = "ARCADIA_TEST_DB_URL"

	t.Setenv("ARCADIA_TEST_DB_URL", "")
	if _, err := cfg.GetDatabaseURL(); err == nil {
		t.Error("Expected missing URL to fail")
	}

	t.Setenv("ARCADIA_TEST_DB_URL", "sqlite://test.db")
	url, err := cfg.GetDatabaseURL()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if url != "sqlite://test.db" {
		t.Errorf("Expected 'sqlite://test.db', got '%s'", url)
	}
}

func TestInitializeProject(t *testing.T) {
	tempDir := t.TempDir()

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if IsInitialized() {
		t.Error("Expected project to not be initialized, but it was")
	}

	if err := InitializeProject(); err != nil {
		t.Fatalf("Failed to initialize project: %v", err)
	}

	configPath := filepath.Join(tempDir, FileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configPath)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "data", "export")); os.IsNotExist(err) {
		t.Error("Export directory was not created")
	}

	if err := InitializeProject(); err == nil {
		t.Error("Expected second initialization to fail, but it succeeded")
	}

	viper.Reset()
	defer viper.Reset()
	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read generated config: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("Expected ttl to round-trip as 1h, got %s", cfg.Cache.TTL)
	}
}
