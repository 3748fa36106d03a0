// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package state holds the client's chat state: networks, buffers, and
// messages, plus the active-buffer pointer the input pipeline reads.
//
// # Key Types
//
//   - Store: owns all networks and the active network/buffer selection
//   - Network: one server session with its nick, buffers, and transport
//   - Buffer: a named conversation surface (channel, query, or server console)
//   - Bus: synchronous publish/subscribe used for the raw-input event
//
// All Store methods are safe for concurrent use, but the input pipeline
// itself is single-threaded: dispatch runs to completion on one goroutine.
package state
