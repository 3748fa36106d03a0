// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads ircline's TOML configuration and the user's alias
// definition file, and watches the alias file for edits so the running
// client picks changes up without a restart.
//
// Configuration file location (first match wins):
//   - $IRCLINE_CONFIG
//   - ~/.ircline/config.toml
//   - Built-in defaults
package config
