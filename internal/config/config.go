// Package config provides configuration loading and validation for the CLI,
// plus the field-selection bitmasks that control which profile sections a
// scrape visits.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// CookieEnvVar is the environment variable holding the li_at session cookie.
const CookieEnvVar = "LI_AT_COOKIE"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Auth
	Cookie string `json:"cookie,omitempty" validate:"omitempty,min=8"` // li_at session cookie value

	// Behavior
	Headless bool   `json:"headless,omitempty"` // Run the browser without a window
	Verbose  bool   `json:"verbose,omitempty"`  // Print detailed progress information
	Output   string `json:"output,omitempty"`   // Path to write the result JSON to

	// Limits
	MaxPages      int `json:"max_pages,omitempty" validate:"gte=0"`      // Employee pages to walk (0 = skip employees)
	ActionTimeout int `json:"action_timeout,omitempty" validate:"gte=0"` // Per-action timeout in seconds
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// LoadEnv loads a .env file if present and fills the cookie from the
// environment when the config does not carry one. A missing .env file is
// not an error.
func (c *Config) LoadEnv() {
	_ = godotenv.Load()
	if c.Cookie == "" {
		c.Cookie = os.Getenv(CookieEnvVar)
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Cookie == "" {
		result.Cookie = defaults.Cookie
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.ActionTimeout == 0 {
		result.ActionTimeout = defaults.ActionTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
