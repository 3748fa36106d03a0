// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// Event is the state of one dispatch cycle. A fresh Event is created per
// processed line and dropped when the cycle ends.
type Event struct {
	// Handled suppresses the raw-passthrough fallback. Every handler that
	// takes responsibility for a command must set it; forgetting to means
	// the line is additionally sent to the transport.
	Handled bool

	// Raw is the line exactly as the user typed it, before the implicit
	// command rewrite and before alias expansion.
	Raw string

	// Command is the token between the leading slash and the first space.
	Command string

	// Params is everything after the first space, "" if there was none.
	Params string
}
