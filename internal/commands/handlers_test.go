// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"testing"

	"github.com/jeranaias/ircline/internal/state"
)

// =============================================================================
// MESSAGING
// =============================================================================

func TestMsgWithExplicitChannelTarget(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	joinChannel(t, store, "#go")
	store.SetActiveBuffer("net", state.ServerBufferName)
	client.calls = nil

	d.ProcessLine("/msg #go hello")

	want := []string{"say(#go, hello)"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

func TestMsgToMissingBufferStillSends(t *testing.T) {
	d, _, client := newTestDispatcher(t, "")
	client.calls = nil

	// #ghost has no local buffer: the echo is skipped, the send is not.
	d.ProcessLine("/msg #ghost hi")

	want := []string{"say(#ghost, hi)"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

func TestActionAndNoticeUseTheirPrimitives(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	joinChannel(t, store, "#go")

	tests := []struct {
		line     string
		want     string
		wantType state.MessageType
	}{
		{"/action waves", "action(#go, waves)", state.MessageAction},
		{"/notice heads up", "notice(#go, heads up)", state.MessageNotice},
	}
	for _, tc := range tests {
		client.calls = nil
		d.ProcessLine(tc.line)
		if !equalCalls(client.calls, []string{tc.want}) {
			t.Errorf("ProcessLine(%q) calls = %v, want [%s]", tc.line, client.calls, tc.want)
		}
		buf := store.BufferByName("net", "#go")
		last := buf.Messages[len(buf.Messages)-1]
		if last.Type != tc.wantType {
			t.Errorf("ProcessLine(%q) echo type = %s, want %s", tc.line, last.Type, tc.wantType)
		}
	}
}

// =============================================================================
// JOIN
// =============================================================================

func TestJoinCreatesBuffersAndFocusesFirstOnly(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	client.calls = nil

	d.ProcessLine("/join chan1,chan2")

	if store.BufferByName("net", "#chan1") == nil || store.BufferByName("net", "#chan2") == nil {
		t.Fatal("expected buffers #chan1 and #chan2")
	}
	if got := store.ActiveBuffer().Name; got != "#chan1" {
		t.Errorf("active buffer = %s, want #chan1", got)
	}
	want := []string{"join(#chan1, )", "join(#chan2, )"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

func TestJoinWithKeys(t *testing.T) {
	d, _, client := newTestDispatcher(t, "")
	client.calls = nil

	// Ragged key list: the third channel gets no key.
	d.ProcessLine("/join #a,#b,#c k1,k2")

	want := []string{"join(#a, k1)", "join(#b, k2)", "join(#c, )"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

func TestJoinDoesNotStealFocusForExistingChannel(t *testing.T) {
	d, store, _ := newTestDispatcher(t, "")
	joinChannel(t, store, "#home")

	// #home already exists; rejoining must not move focus off of it, and
	// joining another channel focuses only the newly created one.
	d.ProcessLine("/join #home")
	if got := store.ActiveBuffer().Name; got != "#home" {
		t.Errorf("active buffer = %s, want #home", got)
	}
}

// =============================================================================
// PART / CLOSE
// =============================================================================

func TestPartActiveBufferNoParams(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	joinChannel(t, store, "#foo")
	client.calls = nil

	d.ProcessLine("/part")

	want := []string{"part(#foo, )"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

func TestPartChannelListWithMessage(t *testing.T) {
	d, _, client := newTestDispatcher(t, "")
	client.calls = nil

	d.ProcessLine("/part #a,#b gone fishing")

	want := []string{"part(#a, gone fishing)", "part(#b, gone fishing)"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

func TestPartBareMessagePartsActiveBuffer(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	joinChannel(t, store, "#foo")
	client.calls = nil

	d.ProcessLine("/part so long")

	want := []string{"part(#foo, so long)"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

func TestCloseRemovesNamedBuffers(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	joinChannel(t, store, "#a")
	joinChannel(t, store, "#b")
	joinChannel(t, store, "#c")
	client.calls = nil

	// Mixed space/comma separation; ghosts are skipped silently.
	d.ProcessLine("/close #a #b,#ghost")

	if store.BufferByName("net", "#a") != nil || store.BufferByName("net", "#b") != nil {
		t.Error("#a and #b should be removed")
	}
	if store.BufferByName("net", "#c") == nil {
		t.Error("#c should survive")
	}
	want := []string{"part(#a, )", "part(#b, )"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

func TestCloseDefaultsToActiveBuffer(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	joinChannel(t, store, "#foo")
	client.calls = nil

	d.ProcessLine("/close")

	if store.BufferByName("net", "#foo") != nil {
		t.Error("#foo should be removed")
	}
	// Focus falls back to the server console.
	if got := store.ActiveBuffer(); got == nil || !got.ServerBuffer {
		t.Errorf("active buffer = %+v, want server buffer", got)
	}
	want := []string{"part(#foo, )"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

// =============================================================================
// QUERY / NICK / QUOTE
// =============================================================================

func TestQueryOpensBuffersAndFocusesFirst(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	client.calls = nil

	d.ProcessLine("/query alice bob")

	if store.BufferByName("net", "alice") == nil || store.BufferByName("net", "bob") == nil {
		t.Fatal("expected query buffers for alice and bob")
	}
	if got := store.ActiveBuffer().Name; got != "alice" {
		t.Errorf("active buffer = %s, want alice", got)
	}
	if len(client.calls) != 0 {
		t.Errorf("query must not touch the wire, got %v", client.calls)
	}
}

func TestNickUsesFirstTokenOnly(t *testing.T) {
	d, _, client := newTestDispatcher(t, "")
	client.calls = nil

	d.ProcessLine("/nick newnick ignored extra")

	want := []string{"nick(newnick)"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

func TestQuoteSendsVerbatim(t *testing.T) {
	d, _, client := newTestDispatcher(t, "")
	client.calls = nil

	d.ProcessLine("/quote PRIVMSG NickServ :IDENTIFY hunter2")

	want := []string{"raw(PRIVMSG NickServ :IDENTIFY hunter2)"}
	if !equalCalls(client.calls, want) {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
}

// =============================================================================
// CLEAR / ECHO
// =============================================================================

func TestClearEmptiesScrollback(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	joinChannel(t, store, "#go")
	d.ProcessLine("hello")
	d.ProcessLine("world")
	client.calls = nil

	d.ProcessLine("/clear")

	buf := store.BufferByName("net", "#go")
	if len(buf.Messages) != 1 {
		t.Fatalf("message count = %d, want just the clear notice", len(buf.Messages))
	}
	if buf.Messages[0].Text != "Scrollback cleared" || buf.Messages[0].Type != state.MessageSystem {
		t.Errorf("notice = %+v", buf.Messages[0])
	}
	if len(client.calls) != 0 {
		t.Errorf("clear must not touch the wire, got %v", client.calls)
	}
}

func TestEchoAppendsSystemMessage(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	joinChannel(t, store, "#go")
	client.calls = nil

	d.ProcessLine("/echo just testing")

	buf := store.BufferByName("net", "#go")
	last := buf.Messages[len(buf.Messages)-1]
	if last.Text != "just testing" || last.Type != state.MessageSystem {
		t.Errorf("echo = %+v", last)
	}
	if len(client.calls) != 0 {
		t.Errorf("echo must not touch the wire, got %v", client.calls)
	}
}

// =============================================================================
// SERVER
// =============================================================================

func TestServerParsing(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantAddr string
		wantPort int
		wantTLS  bool
		wantPass string
		wantNick string
	}{
		{
			name:     "full form with TLS",
			line:     "/server irc.example.org +6697 secret nick1",
			wantAddr: "irc.example.org",
			wantPort: 6697,
			wantTLS:  true,
			wantPass: "secret",
			wantNick: "nick1",
		},
		{
			name:     "plain port",
			line:     "/server irc.example.org 6667",
			wantAddr: "irc.example.org",
			wantPort: 6667,
			wantNick: DefaultNick,
		},
		{
			name:     "address only",
			line:     "/server irc.example.org",
			wantAddr: "irc.example.org",
			wantPort: DefaultPort,
			wantNick: DefaultNick,
		},
		{
			name:     "garbled port falls back, TLS prefix survives",
			line:     "/server irc.example.org +junk",
			wantAddr: "irc.example.org",
			wantPort: DefaultPort,
			wantTLS:  true,
			wantNick: DefaultNick,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, store, _ := newTestDispatcher(t, "")

			d.ProcessLine(tc.line)

			net := store.NetworkByID(tc.wantAddr)
			if net == nil {
				t.Fatalf("network %s not registered", tc.wantAddr)
			}
			opts := net.Options
			if opts.Port != tc.wantPort || opts.TLS != tc.wantTLS || opts.Password != tc.wantPass {
				t.Errorf("options = %+v", opts)
			}
			if net.Nick != tc.wantNick {
				t.Errorf("nick = %s, want %s", net.Nick, tc.wantNick)
			}
		})
	}
}

func TestServerWithoutAddressIsNoOp(t *testing.T) {
	d, store, client := newTestDispatcher(t, "")
	client.calls = nil

	d.ProcessLine("/server")

	if len(client.calls) != 0 {
		t.Errorf("calls = %v, want none", client.calls)
	}
	if store.NetworkByID("") != nil {
		t.Error("no network should be registered")
	}
}
