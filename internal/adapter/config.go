package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Search  SearchConfig  `mapstructure:"search"`
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds the remote catalog service configuration
type CatalogConfig struct {
	URL string `mapstructure:"url"` // Base URL of the catalog proxy
}

// SearchConfig holds search behavior configuration
type SearchConfig struct {
	PerPage int `mapstructure:"per_page"` // Results requested per page
}

// StorageConfig holds local persistence configuration
type StorageConfig struct {
	Path string `mapstructure:"path"` // BoltDB file path
}

// UIConfig holds UI configuration
type UIConfig struct {
	Accent string `mapstructure:"accent"` // Accent color (hex)
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			URL: "http://localhost:3001",
		},
		Search: SearchConfig{
			PerPage: 10,
		},
		Storage: StorageConfig{
			Path: filepath.Join(defaultDataPath(), "wax.db"),
		},
		UI: UIConfig{
			Accent: "#F3571A",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "wax.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "wax")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "wax")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "wax")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "wax")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides, e.g. WAX_CATALOG_URL
	viper.SetEnvPrefix("WAX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("catalog.url", cfg.Catalog.URL)
	viper.Set("search.per_page", cfg.Search.PerPage)
	viper.Set("storage.path", cfg.Storage.Path)
	viper.Set("ui.accent", cfg.UI.Accent)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
