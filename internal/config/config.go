// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for docchat.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.docchat/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete docchat configuration.
type Config struct {
	// Server configuration
	Server ServerConfig `toml:"server"`

	// Listing configuration
	Listing ListingConfig `toml:"listing"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// ServerConfig contains backend connection configuration.
type ServerConfig struct {
	// BaseURL is the URL of the docchat backend
	BaseURL string `toml:"base_url"`
	// SessionCookie is the session cookie value used to authenticate
	SessionCookie string `toml:"session_cookie"`
	// SessionCookieName is the cookie name the backend expects
	SessionCookieName string `toml:"session_cookie_name"`
	// TimeoutSecs is the per-request timeout for regular API calls
	TimeoutSecs int `toml:"timeout_secs"`
	// SendTimeoutSecs is the timeout for message sends, which wait on the
	// assistant's reply and run much longer than CRUD calls
	SendTimeoutSecs int `toml:"send_timeout_secs"`
}

// ListingConfig contains pagination configuration.
type ListingConfig struct {
	// DocumentPageSize is the number of documents per page
	DocumentPageSize int `toml:"document_page_size"`
	// ConversationPageSize is the number of conversations per page
	ConversationPageSize int `toml:"conversation_page_size"`
	// DefaultSortOrder is the initial document ordering: "desc" or "asc"
	DefaultSortOrder string `toml:"default_sort_order"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// CompactMode uses a more compact UI layout
	CompactMode bool `toml:"compact_mode"`
	// RenderMarkdown renders assistant messages as markdown
	RenderMarkdown bool `toml:"render_markdown"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:           "http://127.0.0.1:8000",
			SessionCookieName: "session_id",
			TimeoutSecs:       30,
			SendTimeoutSecs:   120,
		},

		Listing: ListingConfig{
			DocumentPageSize:     10,
			ConversationPageSize: 20,
			DefaultSortOrder:     "desc",
		},

		UI: UIConfig{
			Theme:          "dark",
			CompactMode:    false,
			RenderMarkdown: true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the docchat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".docchat"), nil
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
	return os.MkdirAll(dir, 0755)
}

// ensureSecurePermissions checks and fixes permissions on the config file.
// The session cookie is a credential, so the file should be 0600.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				loadErr = fmt.Errorf("failed to load config: %w", err)
			} else {
				cfg.ApplyEnvOverrides()
				cfg.SetDefaults()
				if err := cfg.Validate(); err != nil {
					return nil, fmt.Errorf("invalid config: %w", err)
				}
				return cfg, nil
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, loadErr
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		// Permissions might not be fixable on all systems; warn and continue.
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file with 0600
// permissions, since it holds the session cookie.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	fmt.Fprintln(file, "# docchat configuration file")
	fmt.Fprintln(file, "# Generated by docchat - edit with care")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Server.BaseURL != "" {
		u, err := url.Parse(c.Server.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "server.base_url",
				Message: fmt.Sprintf("invalid URL '%s'", c.Server.BaseURL),
			})
		}
	}

	if c.Server.TimeoutSecs < 1 || c.Server.TimeoutSecs > 600 {
		errs = append(errs, ValidationError{
			Field:   "server.timeout_secs",
			Message: fmt.Sprintf("must be 1-600 seconds, got %d", c.Server.TimeoutSecs),
		})
	}
	if c.Server.SendTimeoutSecs < c.Server.TimeoutSecs {
		errs = append(errs, ValidationError{
			Field:   "server.send_timeout_secs",
			Message: "must be at least server.timeout_secs",
		})
	}

	if c.Listing.DocumentPageSize < 1 || c.Listing.DocumentPageSize > 100 {
		errs = append(errs, ValidationError{
			Field:   "listing.document_page_size",
			Message: fmt.Sprintf("must be 1-100, got %d", c.Listing.DocumentPageSize),
		})
	}
	if c.Listing.ConversationPageSize < 1 || c.Listing.ConversationPageSize > 100 {
		errs = append(errs, ValidationError{
			Field:   "listing.conversation_page_size",
			Message: fmt.Sprintf("must be 1-100, got %d", c.Listing.ConversationPageSize),
		})
	}

	validOrders := map[string]bool{"desc": true, "asc": true}
	if !validOrders[strings.ToLower(c.Listing.DefaultSortOrder)] {
		errs = append(errs, ValidationError{
			Field:   "listing.default_sort_order",
			Message: fmt.Sprintf("invalid order '%s', must be one of: desc, asc", c.Listing.DefaultSortOrder),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value
// configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Server.BaseURL == "" {
		c.Server.BaseURL = defaults.Server.BaseURL
	}
	if c.Server.SessionCookieName == "" {
		c.Server.SessionCookieName = defaults.Server.SessionCookieName
	}
	if c.Server.TimeoutSecs == 0 {
		c.Server.TimeoutSecs = defaults.Server.TimeoutSecs
	}
	if c.Server.SendTimeoutSecs == 0 {
		c.Server.SendTimeoutSecs = defaults.Server.SendTimeoutSecs
	}

	if c.Listing.DocumentPageSize == 0 {
		c.Listing.DocumentPageSize = defaults.Listing.DocumentPageSize
	}
	if c.Listing.ConversationPageSize == 0 {
		c.Listing.ConversationPageSize = defaults.Listing.ConversationPageSize
	}
	if c.Listing.DefaultSortOrder == "" {
		c.Listing.DefaultSortOrder = defaults.Listing.DefaultSortOrder
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - DOCCHAT_BASE_URL: overrides server.base_url
//   - DOCCHAT_SESSION_COOKIE: overrides server.session_cookie
//   - DOCCHAT_THEME: overrides ui.theme
func (c *Config) ApplyEnvOverrides() {
	if base := os.Getenv("DOCCHAT_BASE_URL"); base != "" {
		c.Server.BaseURL = base
	}
	if cookie := os.Getenv("DOCCHAT_SESSION_COOKIE"); cookie != "" {
		c.Server.SessionCookie = cookie
	}
	if theme := os.Getenv("DOCCHAT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
