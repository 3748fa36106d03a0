// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package state

import "github.com/google/uuid"

// Buffer is a named conversation surface within a network: a channel, a
// private query, or the server console.
type Buffer struct {
	// ID uniquely identifies the buffer within the process.
	ID string

	// NetworkID names the owning network.
	NetworkID string

	// Name is the channel name, query nick, or ServerBufferName.
	Name string

	// ServerBuffer marks the network console; plain input typed into it
	// becomes /quote instead of /msg.
	ServerBuffer bool

	// Messages is the scrollback, oldest first.
	Messages []Message
}

func newBuffer(networkID, name string, server bool) *Buffer {
	return &Buffer{
		ID:           uuid.NewString(),
		NetworkID:    networkID,
		Name:         name,
		ServerBuffer: server,
	}
}
