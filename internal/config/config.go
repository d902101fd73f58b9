// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management
// for chatpaat.
//
// Configuration file locations (in order of precedence):
//   - ~/.chatpaat/config.toml
//   - Built-in defaults
//
// Environment variables (CHATPAAT_*) override file values.
package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
	"github.com/jeranaias/chatpaat-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete chatpaat configuration.
type Config struct {
	Version string `toml:"version"`

	// Server configuration
	Server ServerConfig `toml:"server"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Search configuration
	Search SearchConfig `toml:"search"`
}

// ServerConfig contains backend connection configuration.
type ServerConfig struct {
	// BaseURL is the ChatPaat backend base URL
	BaseURL string `toml:"base_url"`
	// TimeoutSecs is the per-request timeout in seconds
	TimeoutSecs int `toml:"timeout_secs"`
	// OAuthRedirectURI is the redirect URI registered for the Google
	// OAuth exchange
	OAuthRedirectURI string `toml:"oauth_redirect_uri"`
}

// UIConfig contains presentation configuration. These are startup
// defaults; runtime appearance preferences are persisted separately and
// win over them.
type UIConfig struct {
	// DefaultTheme is the theme used before the user ever picks one.
	// Empty means detect from the terminal background.
	DefaultTheme string `toml:"default_theme"`
	// MouseEnabled enables terminal mouse reporting
	MouseEnabled bool `toml:"mouse_enabled"`
	// AltScreen runs the TUI on the alternate screen buffer
	AltScreen bool `toml:"alt_screen"`
}

// SearchConfig contains search logging and history configuration.
type SearchConfig struct {
	// HistoryEnabled enables the local search-history database
	HistoryEnabled bool `toml:"history_enabled"`
	// LogRate is the sustained rate (events/sec) for backend search logging
	LogRate float64 `toml:"log_rate"`
	// LogBurst is the burst allowance for backend search logging
	LogBurst int `toml:"log_burst"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Server: ServerConfig{
			BaseURL:          "http://127.0.0.1:7004",
			TimeoutSecs:      30,
			OAuthRedirectURI: "http://localhost:5173/oauth/callback",
		},

		UI: UIConfig{
			DefaultTheme: "",
			MouseEnabled: true,
			AltScreen:    true,
		},

		Search: SearchConfig{
			HistoryEnabled: true,
			LogRate:        1,
			LogBurst:       5,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the chatpaat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".chatpaat"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to
// defaults when the file is absent. Environment overrides are applied
// last, then the result is validated.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit file path. A missing
// file is not an error; a malformed one is.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the default path atomically with 0600
// permissions.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the config to an explicit path.
func SaveToPath(cfg *Config, path string) error {
	buf, err := encodeTOML(cfg)
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(path, buf, 0o600)
}

func encodeTOML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies CHATPAAT_* environment variables on top of
// the loaded values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CHATPAAT_BASE_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("CHATPAAT_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Server.TimeoutSecs = n
		}
	}
	if v := os.Getenv("CHATPAAT_THEME"); v != "" {
		c.UI.DefaultTheme = v
	}
	if v := os.Getenv("CHATPAAT_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Search.HistoryEnabled = b
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config field %q: %s", e.Field, e.Message)
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{Field: "server.base_url", Message: "must be an absolute http(s) URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ValidationError{Field: "server.base_url", Message: "scheme must be http or https"}
	}
	if c.Server.TimeoutSecs < 1 || c.Server.TimeoutSecs > 300 {
		return ValidationError{Field: "server.timeout_secs", Message: "must be between 1 and 300"}
	}
	if c.UI.DefaultTheme != "" && !styles.ValidTheme(styles.ThemeName(c.UI.DefaultTheme)) {
		return ValidationError{Field: "ui.default_theme", Message: "unknown theme name"}
	}
	if c.Search.LogRate <= 0 {
		return ValidationError{Field: "search.log_rate", Message: "must be positive"}
	}
	if c.Search.LogBurst < 1 {
		return ValidationError{Field: "search.log_burst", Message: "must be at least 1"}
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// Global returns the process-wide config, loading it on first use.
// A load failure yields defaults.
func Global() *Config {
	globalMu.RLock()
	if globalCfg != nil {
		defer globalMu.RUnlock()
		return globalCfg
	}
	globalMu.RUnlock()

	cfg, err := Load()
	if err != nil {
		cfg = Default()
	}
	SetGlobal(cfg)
	return cfg
}

// SetGlobal replaces the process-wide config.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// ReloadGlobal re-reads the config file into the global slot.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// ResetGlobalForTesting clears the global config.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = nil
}
