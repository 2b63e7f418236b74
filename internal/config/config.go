// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// hubshell.
//
// Configuration comes from, in increasing precedence:
//   - built-in defaults
//   - ~/.hubshell/config.toml (or the file named with --config)
//   - HUBSHELL_* environment variables
//   - command-line flags (applied by the cli package)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete hubshell configuration.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Cache      CacheConfig      `toml:"cache"`
	Completion CompletionConfig `toml:"completion"`
}

// ServerConfig describes the remote API endpoint and credentials.
type ServerConfig struct {
	// Protocol is "http" or "https".
	Protocol string `toml:"protocol"`
	Hostname string `toml:"hostname"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	// Password is optional; when empty the shell prompts interactively.
	Password string `toml:"password"`
	// SSLValidation disables TLS certificate verification when false.
	SSLValidation bool `toml:"ssl_validation"`
}

// CacheConfig controls the local response cache backing autocompletion.
type CacheConfig struct {
	// TimeSecs is how long a cached response stays valid.
	TimeSecs int `toml:"time_secs"`
	// SizeBytes caps the cache database size.
	SizeBytes int64 `toml:"size_bytes"`
	Disable   bool  `toml:"disable"`
}

// CompletionConfig controls tab completion behavior.
type CompletionConfig struct {
	// DisableAPI turns off completions that query the remote API.
	DisableAPI bool `toml:"disable_api"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Protocol:      "https",
			Hostname:      "localhost",
			Port:          8080,
			SSLValidation: true,
		},
		Cache: CacheConfig{
			TimeSecs:  300,
			SizeBytes: 16 << 20, // 16 MiB
		},
	}
}

// BaseURL returns the server base URL, e.g. "https://hub.example.com:8080".
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Server.Protocol, c.Server.Hostname, c.Server.Port)
}

// Validate checks the fields a typo would most likely break.
func (c *Config) Validate() error {
	if c.Server.Protocol != "http" && c.Server.Protocol != "https" {
		return fmt.Errorf("invalid protocol %q: must be http or https", c.Server.Protocol)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Server.Hostname == "" {
		return errors.New("server hostname is not set")
	}
	return nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from path, falling back to the default
// config file when path is empty. A missing file is not an error: the
// defaults plus environment overrides apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultConfigFile()
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("reading configuration file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading configuration file %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overlays HUBSHELL_* environment variables.
func applyEnv(cfg *Config) {
	envString("HUBSHELL_SERVER_PROTOCOL", &cfg.Server.Protocol)
	envString("HUBSHELL_SERVER_HOSTNAME", &cfg.Server.Hostname)
	envInt("HUBSHELL_SERVER_PORT", &cfg.Server.Port)
	envString("HUBSHELL_SERVER_USERNAME", &cfg.Server.Username)
	envString("HUBSHELL_SERVER_PASSWORD", &cfg.Server.Password)
	envBool("HUBSHELL_SERVER_SSL_VALIDATION", &cfg.Server.SSLValidation)
	envInt("HUBSHELL_CACHE_TIME", &cfg.Cache.TimeSecs)
	envInt64("HUBSHELL_CACHE_SIZE", &cfg.Cache.SizeBytes)
	envBool("HUBSHELL_CACHE_DISABLE", &cfg.Cache.Disable)
	envBool("HUBSHELL_COMPLETION_DISABLE_API", &cfg.Completion.DisableAPI)
}

func envString(name string, dst *string) {
	if v, ok := os.LookupEnv(name); ok {
		*dst = v
	}
}

func envInt(name string, dst *int) {
	if v, ok := os.LookupEnv(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envInt64(name string, dst *int64) {
	if v, ok := os.LookupEnv(name); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func envBool(name string, dst *bool) {
	if v, ok := os.LookupEnv(name); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg = Default()
)

// Global returns the process-wide configuration.
func Global() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalCfg
}

// SetGlobal installs cfg as the process-wide configuration. The config
// watcher calls this on reload.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// =============================================================================
// PATHS
// =============================================================================

// dirName is the per-user state directory under $HOME.
const dirName = ".hubshell"

// ConfigDir returns the hubshell state directory (~/.hubshell).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName), nil
}

// EnsureConfigDir creates the state directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// DefaultConfigFile returns the default config file path. Errors resolve
// to a name in the current directory so loading still works in odd
// environments.
func DefaultConfigFile() string {
	return statePath("config.toml")
}

// HistoryFile returns the REPL history file path.
func HistoryFile() string {
	return statePath("history")
}

// TokenFile returns the API token store path.
func TokenFile() string {
	return statePath("tokens.toml")
}

// LogFile returns the diagnostics log path.
func LogFile() string {
	return statePath("hubshell.log")
}

// CacheFile returns the sqlite response cache path.
func CacheFile() string {
	return statePath("cache.db")
}

func statePath(name string) string {
	dir, err := ConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, name)
}
