// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strconv"
	"strings"

	"github.com/jeranaias/ircline/internal/state"
)

// DefaultPort is used when the server command omits or garbles the port.
const DefaultPort = 6667

// DefaultNick is used when the server command omits the nickname.
const DefaultNick = "ircline"

// systemNick labels locally generated messages.
const systemNick = "*"

// builtins returns the registry of built-in commands, each handler bound
// to this dispatcher.
func (d *Dispatcher) builtins() *Registry {
	r := NewRegistry()
	r.Register("lines", d.cmdLines)
	r.Register("msg", d.cmdMsg)
	r.Register("action", d.cmdAction)
	r.Register("notice", d.cmdNotice)
	r.Register("join", d.cmdJoin)
	r.Register("part", d.cmdPart)
	r.Register("close", d.cmdClose)
	r.Register("query", d.cmdQuery)
	r.Register("nick", d.cmdNick)
	r.Register("quote", d.cmdQuote)
	r.Register("clear", d.cmdClear)
	r.Register("echo", d.cmdEcho)
	r.Register("server", d.cmdServer)
	return r
}

// =============================================================================
// MULTI-COMMAND LINES
// =============================================================================

// cmdLines splits its parameters on "|" and re-runs each trimmed segment
// through the full pipeline. This is what lets an alias expand into
// several commands.
func (d *Dispatcher) cmdLines(ev *Event, _, params string) {
	ev.Handled = true
	for _, segment := range strings.Split(params, "|") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if !strings.HasPrefix(segment, "/") {
			segment = "/" + segment
		}
		d.ProcessLine(segment)
	}
}

// =============================================================================
// MESSAGING
// =============================================================================

func (d *Dispatcher) cmdMsg(ev *Event, _, params string) {
	d.sendMessage(ev, params, state.MessageChat)
}

func (d *Dispatcher) cmdAction(ev *Event, _, params string) {
	d.sendMessage(ev, params, state.MessageAction)
}

func (d *Dispatcher) cmdNotice(ev *Event, _, params string) {
	d.sendMessage(ev, params, state.MessageNotice)
}

// sendMessage resolves the target, echoes locally, and calls the matching
// transport primitive. When the first token is a channel name it is the
// target; otherwise the whole parameter string goes to the active buffer.
// A target with no local buffer skips the echo but still sends.
func (d *Dispatcher) sendMessage(ev *Event, params string, kind state.MessageType) {
	ev.Handled = true

	net := d.store.ActiveNetwork()
	if net == nil || net.Client == nil {
		return
	}

	target, text := "", params
	if first, rest, ok := strings.Cut(params, " "); ok && net.IsChannelName(first) {
		target, text = first, rest
	} else if !ok && net.IsChannelName(params) {
		target, text = params, ""
	}
	if target == "" {
		buf := d.store.ActiveBuffer()
		if buf == nil {
			return
		}
		target = buf.Name
	}

	if buf := d.store.BufferByName(net.ID, target); buf != nil {
		d.store.AddMessage(buf, state.Message{
			Nick: net.Nick,
			Text: text,
			Type: kind,
		})
	}

	switch kind {
	case state.MessageAction:
		net.Client.Action(target, text)
	case state.MessageNotice:
		net.Client.Notice(target, text)
	default:
		net.Client.Say(target, text)
	}
}

// =============================================================================
// BUFFER MANAGEMENT
// =============================================================================

// cmdJoin joins a comma-separated channel list, with optional positional
// keys in a second comma-separated list. Only the first newly created
// buffer steals focus.
func (d *Dispatcher) cmdJoin(ev *Event, _, params string) {
	ev.Handled = true

	net := d.store.ActiveNetwork()
	if net == nil {
		return
	}

	nameList, keyList, _ := strings.Cut(params, " ")
	var keys []string
	if keyList != "" {
		keys = strings.Split(keyList, ",")
	}

	focused := false
	for i, name := range strings.Split(nameList, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !net.IsChannelName(name) {
			name = "#" + name
		}
		if created := d.store.AddBuffer(net.ID, name); created != nil && !focused {
			d.store.SetActiveBuffer(net.ID, name)
			focused = true
		}
		key := ""
		if i < len(keys) {
			key = keys[i]
		}
		if net.Client != nil {
			net.Client.Join(name, key)
		}
	}
}

// cmdPart parts channels without touching local buffers. Three parameter
// shapes: empty (part the active buffer), a leading channel list plus
// optional message, or a bare message for the active buffer.
func (d *Dispatcher) cmdPart(ev *Event, _, params string) {
	ev.Handled = true

	net := d.store.ActiveNetwork()
	if net == nil || net.Client == nil {
		return
	}

	first, rest, _ := strings.Cut(params, " ")
	if first != "" && net.IsChannelName(first) {
		for _, name := range strings.Split(first, ",") {
			if name != "" {
				net.Client.Part(name, rest)
			}
		}
		return
	}

	buf := d.store.ActiveBuffer()
	if buf == nil {
		return
	}
	net.Client.Part(buf.Name, params)
}

// cmdClose parts and removes each named buffer; names may be separated by
// spaces, commas, or both. No names means the active buffer. Names with no
// matching buffer are skipped silently.
func (d *Dispatcher) cmdClose(ev *Event, _, params string) {
	ev.Handled = true

	net := d.store.ActiveNetwork()
	if net == nil {
		return
	}

	var names []string
	for _, field := range strings.Fields(params) {
		for _, name := range strings.Split(field, ",") {
			if name != "" {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		buf := d.store.ActiveBuffer()
		if buf == nil {
			return
		}
		names = []string{buf.Name}
	}

	for _, name := range names {
		buf := d.store.BufferByName(net.ID, name)
		if buf == nil || buf.ServerBuffer {
			continue
		}
		if net.Client != nil {
			net.Client.Part(buf.Name, "")
		}
		d.store.RemoveBuffer(buf)
	}
}

// cmdQuery opens a buffer per space-separated nick; the first newly
// created one becomes active. Nothing is sent on the wire.
func (d *Dispatcher) cmdQuery(ev *Event, _, params string) {
	ev.Handled = true

	net := d.store.ActiveNetwork()
	if net == nil {
		return
	}

	focused := false
	for _, nick := range strings.Fields(params) {
		if created := d.store.AddBuffer(net.ID, nick); created != nil && !focused {
			d.store.SetActiveBuffer(net.ID, nick)
			focused = true
		}
	}
}

// =============================================================================
// SIMPLE COMMANDS
// =============================================================================

func (d *Dispatcher) cmdNick(ev *Event, _, params string) {
	ev.Handled = true

	net := d.store.ActiveNetwork()
	if net == nil || net.Client == nil {
		return
	}
	if nick, _, _ := strings.Cut(strings.TrimSpace(params), " "); nick != "" {
		net.Client.ChangeNick(nick)
	}
}

func (d *Dispatcher) cmdQuote(ev *Event, _, params string) {
	ev.Handled = true

	if net := d.store.ActiveNetwork(); net != nil && net.Client != nil {
		net.Client.Raw(params)
	}
}

func (d *Dispatcher) cmdClear(ev *Event, _, _ string) {
	ev.Handled = true

	buf := d.store.ActiveBuffer()
	if buf == nil {
		return
	}
	d.store.ClearMessages(buf)
	d.store.AddMessage(buf, state.Message{
		Nick: systemNick,
		Text: "Scrollback cleared",
		Type: state.MessageSystem,
	})
}

func (d *Dispatcher) cmdEcho(ev *Event, _, params string) {
	ev.Handled = true

	d.store.AddMessage(d.store.ActiveBuffer(), state.Message{
		Nick: systemNick,
		Text: params,
		Type: state.MessageSystem,
	})
}

// =============================================================================
// SERVER REGISTRATION
// =============================================================================

// cmdServer registers a new network: "addr [+]port [password] [nick]".
// A "+" port prefix means TLS. Parsing is lenient with defined fallbacks:
// a garbled port falls back to DefaultPort (keeping the TLS flag the "+"
// implied), a missing nick falls back to DefaultNick.
func (d *Dispatcher) cmdServer(ev *Event, _, params string) {
	ev.Handled = true

	args := strings.Fields(params)
	if len(args) == 0 {
		return
	}

	opts := state.ConnectionOptions{
		Address: args[0],
		Port:    DefaultPort,
	}
	if len(args) > 1 {
		portArg := args[1]
		if strings.HasPrefix(portArg, "+") {
			opts.TLS = true
			portArg = portArg[1:]
		}
		if port, err := strconv.Atoi(portArg); err == nil {
			opts.Port = port
		}
	}
	if len(args) > 2 {
		opts.Password = args[2]
	}

	nick := DefaultNick
	if len(args) > 3 {
		nick = args[3]
	}

	d.store.AddNetwork(opts.Address, nick, opts)
}
