// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package irc

// Client is the outbound half of a server connection. Every method queues a
// single wire line; none of them block on network I/O from the caller's
// point of view beyond the implementation's own throttling.
type Client interface {
	// Raw sends a protocol line verbatim, without the trailing CRLF.
	Raw(line string)

	// Say sends a PRIVMSG to target.
	Say(target, text string)

	// Action sends a CTCP ACTION to target.
	Action(target, text string)

	// Notice sends a NOTICE to target.
	Notice(target, text string)

	// Join joins channel, with an optional key ("" for none).
	Join(channel, key string)

	// Part leaves channel, with an optional part message ("" for none).
	Part(channel, message string)

	// ChangeNick requests a new nickname.
	ChangeNick(nick string)
}
