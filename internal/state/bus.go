// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package state

import "sync"

// =============================================================================
// EVENT BUS
// =============================================================================

// Topics carried by the Bus. Command dispatch does NOT go through the bus;
// the registry resolves commands through an explicit lookup table.
const (
	// TopicRawInput carries a raw input payload (string), possibly spanning
	// multiple newline-separated lines.
	TopicRawInput = "input.raw"

	// TopicAliasSource carries a new alias definition source (string)
	// whenever the configured alias file changes.
	TopicAliasSource = "aliases.source"
)

// Bus is a minimal synchronous publish/subscribe hub. Emit runs every
// subscriber in registration order before it returns, on the caller's
// goroutine; there is no queueing and no async delivery.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]func(payload any)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]func(any))}
}

// On registers fn for topic. Registration order is delivery order.
func (b *Bus) On(topic string, fn func(payload any)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], fn)
}

// Emit delivers payload to every subscriber of topic, synchronously.
func (b *Bus) Emit(topic string, payload any) {
	b.mu.RLock()
	subs := make([]func(any), len(b.subs[topic]))
	copy(subs, b.subs[topic])
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(payload)
	}
}
