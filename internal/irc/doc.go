// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package irc defines the transport contract the dispatcher talks to and a
// writer-backed implementation that renders outbound wire lines.
//
// The dispatcher never formats protocol messages beyond picking the right
// send primitive; connection management lives outside this repository, so
// Client is deliberately narrow.
package irc
