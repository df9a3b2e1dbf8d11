// Package config handles user configuration for promptforge.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/osoares/promptforge/internal/models"
)

// APIKeyEnv is the environment variable holding the Gemini API key. The key
// is read at call time and never written to the config file.
const APIKeyEnv = "GEMINI_API_KEY"

// Config represents the user configuration.
type Config struct {
	// DefaultTarget is the target label used when none is selected.
	DefaultTarget string `json:"default_target"`
	// MarkdownStyle is the glamour style for rendered output ("dark",
	// "light", "notty", or a path to a JSON theme).
	MarkdownStyle string `json:"markdown_style"`
	// CopyToClipboard copies the architected prompt to the clipboard in
	// one-shot mode.
	CopyToClipboard bool `json:"copy_to_clipboard"`
	// Verbose enables debug logging of request and response metadata.
	Verbose bool `json:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DefaultTarget:   string(models.DefaultTarget),
		MarkdownStyle:   "dark",
		CopyToClipboard: false,
		Verbose:         false,
	}
}

// Target resolves the configured default target label.
func (c Config) Target() models.TargetModel {
	if target, ok := models.TargetFromName(c.DefaultTarget); ok {
		return target
	}
	return models.DefaultTarget
}

// GetConfigDir returns the configuration directory path.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".promptforge"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return configDir, nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk. A missing file yields the
// defaults without error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to disk.
func SaveConfig(cfg Config) error {
	if _, err := EnsureConfigDir(); err != nil {
		return err
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// LoadDotenv loads a .env file from the working directory when present, so
// GEMINI_API_KEY can live next to the project. Values already present in the
// environment win.
func LoadDotenv() {
	_ = godotenv.Load()
}

// APIKey reads the Gemini API key from the process environment at call time.
// An empty key results in an unauthenticated call the remote will reject.
func APIKey() string {
	return os.Getenv(APIKeyEnv)
}
