package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// Config represents the application configuration
type Config struct {
	// Seed fixes the shuffle; 0 means a new random deal each time
	Seed        int64  `toml:"seed"`
	Color       bool   `toml:"color"`
	SuitSymbols string `toml:"suit_symbols"`
	CardBack    string `toml:"card_back"`
	LogFile     string `toml:"log_file"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Seed:        0,
		Color:       true,
		SuitSymbols: "unicode",
		CardBack:    "#1e3a8a",
		LogFile:     "",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGStateHome returns XDG_STATE_HOME or default path
func GetXDGStateHome() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return xdgState
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "state")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "klondike", "config.toml")
}

// GetDefaultLogPath returns where logs go when log_file is set to "default"
func GetDefaultLogPath() string {
	return filepath.Join(GetXDGStateHome(), "klondike", "klondike.log")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigFilePath())
}

// LoadConfigFrom loads the config file at configPath
func LoadConfigFrom(configPath string) (*Config, error) {
	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	config := Default()
	if err := Save(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to configPath as TOML
func Save(configPath string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Validate checks values the renderer and logger depend on
func (c *Config) Validate() error {
	switch c.SuitSymbols {
	case "unicode", "letters":
	default:
		return fmt.Errorf("suit_symbols must be unicode or letters, got %q", c.SuitSymbols)
	}
	if _, err := colorful.Hex(c.CardBack); err != nil {
		return fmt.Errorf("card_back must be a hex color like #1e3a8a, got %q", c.CardBack)
	}
	return nil
}

// Keys lists the settable config keys
func Keys() []string {
	keys := []string{"seed", "color", "suit_symbols", "card_back", "log_file"}
	sort.Strings(keys)
	return keys
}

// Set updates one key from its string form
func (c *Config) Set(key, value string) error {
	switch key {
	case "seed":
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be an integer: %w", err)
		}
		c.Seed = seed
	case "color":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("color must be true or false: %w", err)
		}
		c.Color = on
	case "suit_symbols":
		c.SuitSymbols = strings.ToLower(value)
	case "card_back":
		c.CardBack = value
	case "log_file":
		c.LogFile = value
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	return c.Validate()
}

// SetValue loads the config file, sets key and writes it back
func SetValue(key, value string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	if err := config.Set(key, value); err != nil {
		return err
	}
	return Save(GetConfigFilePath(), config)
}
