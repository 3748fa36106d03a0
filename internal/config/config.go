// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete ircline configuration.
type Config struct {
	// Nick is the default nickname for new networks.
	Nick string `toml:"nick"`

	// AliasFile is the path to the alias definition file. Empty disables
	// alias loading.
	AliasFile string `toml:"alias_file"`

	// HistoryFile is where the interactive shell persists input history.
	HistoryFile string `toml:"history_file"`

	// Server is the network registered on startup, if any.
	Server ServerConfig `toml:"server"`
}

// ServerConfig describes the network to register at startup.
type ServerConfig struct {
	// Address of the server; empty means no startup network.
	Address string `toml:"address"`

	// Port defaults to 6667.
	Port int `toml:"port"`

	// TLS enables a TLS connection.
	TLS bool `toml:"tls"`

	// Password is the server password, if any.
	Password string `toml:"password"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	dir := filepath.Join(home, ".ircline")
	return &Config{
		Nick:        "ircline",
		AliasFile:   filepath.Join(dir, "aliases"),
		HistoryFile: filepath.Join(dir, "history"),
		Server: ServerConfig{
			Port: 6667,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Path returns the config file path: $IRCLINE_CONFIG if set, else
// ~/.ircline/config.toml.
func Path() string {
	if p := os.Getenv("IRCLINE_CONFIG"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".ircline", "config.toml")
}

// Load reads the config file at path, layered over the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Nick == "" {
		return fmt.Errorf("config: nick must not be empty")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server port %d out of range", c.Server.Port)
	}
	return nil
}

// LoadAliasSource reads the alias definition file. A missing or unreadable
// file yields an empty source; alias loading must never stop the client.
func (c *Config) LoadAliasSource() string {
	if c.AliasFile == "" {
		return ""
	}
	data, err := os.ReadFile(c.AliasFile)
	if err != nil {
		return ""
	}
	return string(data)
}
