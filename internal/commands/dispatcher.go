// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log"
	"strings"

	"github.com/jeranaias/ircline/internal/alias"
	"github.com/jeranaias/ircline/internal/state"
)

// =============================================================================
// DISPATCHER
// =============================================================================

// MaxDepth bounds re-entrant ProcessLine calls. The lines command and
// alias chains recurse; a self-referential alias would otherwise recurse
// without bound. At the cap the line is dropped as a handled no-op with a
// warning in the active buffer.
const MaxDepth = 8

// Dispatcher turns raw input lines into command dispatches against one
// Store. It is not safe for concurrent use; all input for a session is
// processed on one goroutine.
type Dispatcher struct {
	store    *state.Store
	aliases  *alias.Engine
	registry *Registry

	depth int
}

// NewDispatcher returns a dispatcher over the given store and alias engine
// with every built-in command registered.
func NewDispatcher(store *state.Store, aliases *alias.Engine) *Dispatcher {
	d := &Dispatcher{
		store:   store,
		aliases: aliases,
	}
	d.registry = d.builtins()
	return d
}

// Registry exposes the command table (for help listings and tests).
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// =============================================================================
// LINE PROCESSING
// =============================================================================

// ProcessLine runs one raw input line through the full pipeline: implicit
// command rewrite, alias expansion, command extraction, dispatch, and the
// unhandled-line passthrough. It never returns an error; malformed input
// degrades to defined fallbacks.
func (d *Dispatcher) ProcessLine(rawLine string) {
	if d.depth >= MaxDepth {
		log.Printf("commands: recursion limit reached, dropping line: %q", rawLine)
		d.store.AddMessage(d.store.ActiveBuffer(), state.Message{
			Nick: "*",
			Text: "Command expansion too deep, line dropped",
			Type: state.MessageSystem,
		})
		return
	}
	d.depth++
	defer func() { d.depth-- }()

	line := d.implicitCommand(rawLine)
	line = d.aliases.Process(line, d.contextVars())

	working := strings.TrimPrefix(line, "/")
	command, params, _ := strings.Cut(working, " ")

	ev := &Event{
		Raw:     rawLine,
		Command: command,
		Params:  params,
	}
	if h := d.registry.Get(command); h != nil {
		h(ev, command, params)
	}

	// Anything no handler claimed goes to the wire verbatim, minus the
	// leading slash. Unknown commands are the normal case here, not errors.
	if !ev.Handled {
		if net := d.store.ActiveNetwork(); net != nil && net.Client != nil {
			net.Client.Raw(working)
		}
	}
}

// implicitCommand guarantees the working line starts with "/": plain text
// typed into a server buffer becomes /quote, anywhere else it becomes a
// /msg to the active buffer.
func (d *Dispatcher) implicitCommand(rawLine string) string {
	if strings.HasPrefix(rawLine, "/") {
		return rawLine
	}
	buf := d.store.ActiveBuffer()
	if buf == nil || buf.ServerBuffer {
		return "/quote " + rawLine
	}
	return "/msg " + buf.Name + " " + rawLine
}

// contextVars snapshots the active network and buffer for alias expansion.
// Re-read per line: the active buffer may change between the lines of one
// multi-line paste.
func (d *Dispatcher) contextVars() alias.Vars {
	var vars alias.Vars
	if net := d.store.ActiveNetwork(); net != nil {
		vars.Server = net.Name
		vars.Nick = net.Nick
		if buf := d.store.ActiveBuffer(); buf != nil && !buf.ServerBuffer {
			vars.Destination = buf.Name
			if net.IsChannelName(buf.Name) {
				vars.Channel = buf.Name
			}
		}
	}
	return vars
}
