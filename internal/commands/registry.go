// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"
)

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Handler executes one command. It mutates shared state and/or calls the
// transport through the dispatcher it is bound to, and must set ev.Handled
// when it takes responsibility for the command. Command and params are
// passed redundantly for convenience; they always equal ev.Command and
// ev.Params.
type Handler func(ev *Event, command, params string)

// Registry maps command names to handlers. Names are case-normalized to
// lower case on registration; lookup is exact on the literal token, so
// callers conventionally type commands in lower case. Re-registering a
// name replaces the previous handler.
//
// A Registry is populated once at construction and injected into the
// dispatcher; there is no global table.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under name. Last registration wins.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[strings.ToLower(name)] = h
}

// Get returns the handler for the literal name, or nil. An empty name
// (a line that was only "/") never matches.
func (r *Registry) Get(name string) Handler {
	return r.handlers[name]
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
