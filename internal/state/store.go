// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package state

import (
	"sync"

	"github.com/jeranaias/ircline/internal/irc"
)

// =============================================================================
// STORE
// =============================================================================

// ClientFactory builds a transport for a newly registered network.
// Connection management is out of scope here; the factory is how the
// embedding application plugs in whatever transport it runs.
type ClientFactory func(opts ConnectionOptions) irc.Client

// Store owns every network and the active network/buffer selection. A Store
// is one client session; multiple sessions in one process each get their
// own Store.
type Store struct {
	mu sync.RWMutex

	networks     []*Network
	activeNetID  string
	activeBufRef *Buffer

	newClient ClientFactory
}

// NewStore returns an empty store. factory may be nil, in which case
// networks are registered without a transport (tests attach their own).
func NewStore(factory ClientFactory) *Store {
	return &Store{newClient: factory}
}

// =============================================================================
// NETWORKS
// =============================================================================

// AddNetwork registers a network with the given identity and connection
// options, creates its server buffer, and makes it the active network if
// none is active yet. Returns the new network, or nil if the id is empty
// or already taken.
func (s *Store) AddNetwork(id, nick string, opts ConnectionOptions) *Network {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" || s.networkByID(id) != nil {
		return nil
	}

	n := &Network{
		ID:              id,
		Name:            opts.Address,
		Nick:            nick,
		ChannelPrefixes: DefaultChannelPrefixes,
		Options:         opts,
	}
	if s.newClient != nil {
		n.Client = s.newClient(opts)
	}

	server := newBuffer(id, ServerBufferName, true)
	n.buffers = append(n.buffers, server)
	s.networks = append(s.networks, n)

	if s.activeNetID == "" {
		s.activeNetID = id
		s.activeBufRef = server
	}
	return n
}

// NetworkByID returns the network with the given id, or nil.
func (s *Store) NetworkByID(id string) *Network {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.networkByID(id)
}

func (s *Store) networkByID(id string) *Network {
	for _, n := range s.networks {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// ActiveNetwork returns the currently active network, or nil when no
// network is registered.
func (s *Store) ActiveNetwork() *Network {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.networkByID(s.activeNetID)
}

// =============================================================================
// BUFFERS
// =============================================================================

// ActiveBuffer returns the currently active buffer, or nil.
func (s *Store) ActiveBuffer() *Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeBufRef
}

// BufferByName returns the named buffer on the given network, or nil.
func (s *Store) BufferByName(networkID, name string) *Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.networkByID(networkID)
	if n == nil {
		return nil
	}
	return n.BufferByName(name)
}

// AddBuffer creates a buffer on the given network. Returns nil if the
// network is unknown, the name is empty, or the buffer already exists;
// callers use the nil return to detect "newly created".
func (s *Store) AddBuffer(networkID, name string) *Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.networkByID(networkID)
	if n == nil || name == "" {
		return nil
	}
	if n.BufferByName(name) != nil {
		return nil
	}
	b := newBuffer(networkID, name, false)
	n.buffers = append(n.buffers, b)
	return b
}

// SetActiveBuffer switches the active network and buffer. Unknown
// network/buffer names leave the selection unchanged.
func (s *Store) SetActiveBuffer(networkID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.networkByID(networkID)
	if n == nil {
		return
	}
	b := n.BufferByName(name)
	if b == nil {
		return
	}
	s.activeNetID = networkID
	s.activeBufRef = b
}

// RemoveBuffer removes the buffer from its network. The server buffer
// cannot be removed. If the removed buffer was active, the network's
// server buffer becomes active.
func (s *Store) RemoveBuffer(buf *Buffer) {
	if buf == nil || buf.ServerBuffer {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.networkByID(buf.NetworkID)
	if n == nil {
		return
	}
	for i, b := range n.buffers {
		if b == buf {
			n.buffers = append(n.buffers[:i], n.buffers[i+1:]...)
			break
		}
	}
	if s.activeBufRef == buf {
		s.activeBufRef = n.ServerBuffer()
		s.activeNetID = n.ID
	}
}

// =============================================================================
// MESSAGES
// =============================================================================

// AddMessage appends msg to the buffer's scrollback, filling defaulted
// fields (ID, time, type). A nil buffer is a no-op.
func (s *Store) AddMessage(buf *Buffer, msg Message) {
	if buf == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.normalize()
	buf.Messages = append(buf.Messages, msg)
}

// ClearMessages empties the buffer's scrollback in place.
func (s *Store) ClearMessages(buf *Buffer) {
	if buf == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buf.Messages = buf.Messages[:0]
}
