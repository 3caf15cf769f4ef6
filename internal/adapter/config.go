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
	Storage   StorageConfig   `mapstructure:"storage"`
	Search    SearchConfig    `mapstructure:"search"`
	Providers ProvidersConfig `mapstructure:"providers"`
	UI        UIConfig        `mapstructure:"ui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// StorageConfig holds durable-slot and export settings
type StorageConfig struct {
	Path       string `mapstructure:"path"`        // BoltDB file path
	ExportPath string `mapstructure:"export_path"` // Directory for exported lists
}

// SearchConfig holds search aggregation tuning
type SearchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"` // Quiet period before a query settles
	MaxResults int `mapstructure:"max_results"` // Cap on merged candidates
}

// ProviderConfig holds one metadata provider's settings
type ProviderConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ProvidersConfig holds both metadata providers
type ProvidersConfig struct {
	ITunes ProviderConfig `mapstructure:"itunes"`
	TVMaze ProviderConfig `mapstructure:"tvmaze"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme       string `mapstructure:"theme"`
	ShowPosters bool   `mapstructure:"show_posters"` // Show poster URLs in the detail pane
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:       filepath.Join(defaultDataPath(), "watchlist.db"),
			ExportPath: ".",
		},
		Search: SearchConfig{
			DebounceMS: 500,
			MaxResults: 8,
		},
		Providers: ProvidersConfig{
			ITunes: ProviderConfig{TimeoutSeconds: 10},
			TVMaze: ProviderConfig{TimeoutSeconds: 10},
		},
		UI: UIConfig{
			Theme:       "default",
			ShowPosters: true,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "watchlist.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "watchlist")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "watchlist")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "watchlist")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "watchlist")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("WATCHLIST")
	viper.AutomaticEnv()

	// Read config file if it exists
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
