// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package state

import (
	"strings"

	"github.com/jeranaias/ircline/internal/irc"
)

// =============================================================================
// NETWORK
// =============================================================================

// ServerBufferName is the name of the console buffer every network owns.
// The leading asterisk cannot collide with a channel or nick.
const ServerBufferName = "*server"

// DefaultChannelPrefixes is used until the server advertises its own
// CHANTYPES set.
const DefaultChannelPrefixes = "#&"

// ConnectionOptions describes how a network's transport should connect.
type ConnectionOptions struct {
	Address  string
	Port     int
	TLS      bool
	Password string
}

// Network is one server session: identity, its buffers, and its transport.
// The input pipeline reads identity fields and calls the transport; all
// structural mutation goes through the Store.
type Network struct {
	// ID identifies the network within the Store.
	ID string

	// Name is the display name, normally the server address.
	Name string

	// Nick is the nickname in use on this network.
	Nick string

	// ChannelPrefixes are the characters a channel name may start with.
	ChannelPrefixes string

	// Options are the connection parameters the network was registered with.
	Options ConnectionOptions

	// Client is the outbound transport for this network.
	Client irc.Client

	buffers []*Buffer
}

// IsChannelName reports whether token starts with one of the network's
// channel prefix characters.
func (n *Network) IsChannelName(token string) bool {
	if token == "" {
		return false
	}
	prefixes := n.ChannelPrefixes
	if prefixes == "" {
		prefixes = DefaultChannelPrefixes
	}
	return strings.ContainsRune(prefixes, rune(token[0]))
}

// BufferByName returns the buffer with the given name, or nil. IRC names
// are case-insensitive, so the lookup is too.
func (n *Network) BufferByName(name string) *Buffer {
	for _, b := range n.buffers {
		if strings.EqualFold(b.Name, name) {
			return b
		}
	}
	return nil
}

// ServerBuffer returns the network's console buffer.
func (n *Network) ServerBuffer() *Buffer {
	return n.BufferByName(ServerBufferName)
}

// Buffers returns the network's buffers in creation order.
func (n *Network) Buffers() []*Buffer {
	out := make([]*Buffer, len(n.buffers))
	copy(out, n.buffers)
	return out
}
