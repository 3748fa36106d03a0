// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package input

import (
	"strings"

	"github.com/jeranaias/ircline/internal/alias"
	"github.com/jeranaias/ircline/internal/commands"
	"github.com/jeranaias/ircline/internal/state"
)

// Coordinator owns the alias engine and the dispatcher for one session.
// It subscribes once to the raw-input topic and once to the alias-source
// topic; both subscriptions live for the life of the process.
type Coordinator struct {
	aliases    *alias.Engine
	dispatcher *commands.Dispatcher
}

// NewCoordinator builds the pipeline over the given store, primes the
// alias engine from aliasSource, and installs the bus subscriptions:
// raw input is dispatched line by line, and a changed alias source
// re-primes the engine.
func NewCoordinator(store *state.Store, bus *state.Bus, aliasSource string) *Coordinator {
	c := &Coordinator{
		aliases: alias.NewEngine(),
	}
	c.aliases.ImportFromString(aliasSource)
	c.dispatcher = commands.NewDispatcher(store, c.aliases)

	bus.On(state.TopicRawInput, func(payload any) {
		if text, ok := payload.(string); ok {
			c.HandleRaw(text)
		}
	})
	bus.On(state.TopicAliasSource, func(payload any) {
		if source, ok := payload.(string); ok {
			c.aliases.ImportFromString(source)
		}
	})
	return c
}

// Dispatcher returns the session's dispatcher.
func (c *Coordinator) Dispatcher() *commands.Dispatcher {
	return c.dispatcher
}

// HandleRaw splits a raw input payload on newlines and processes each
// line in order, synchronously. A pasted block is fully dispatched before
// HandleRaw returns.
func (c *Coordinator) HandleRaw(text string) {
	for _, line := range strings.Split(text, "\n") {
		c.dispatcher.ProcessLine(strings.TrimRight(line, "\r"))
	}
}
