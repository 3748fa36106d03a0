// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package irc

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"golang.org/x/time/rate"
)

// =============================================================================
// LINE WRITER
// =============================================================================

// DefaultSendRate is the outbound line budget. Two lines per second with a
// burst of five keeps well under common server flood limits.
var DefaultSendRate = rate.Limit(2)

// DefaultSendBurst is the burst size paired with DefaultSendRate.
const DefaultSendBurst = 5

// LineWriter is a Client that renders wire lines to an io.Writer, one line
// per send primitive, throttled by a token bucket. It backs the interactive
// shell (writing to stdout) and any writer-shaped connection.
type LineWriter struct {
	mu      sync.Mutex
	w       io.Writer
	limiter *rate.Limiter
}

// NewLineWriter returns a LineWriter with the default send throttle.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{
		w:       w,
		limiter: rate.NewLimiter(DefaultSendRate, DefaultSendBurst),
	}
}

// NewUnthrottledLineWriter returns a LineWriter without a send throttle.
// Used by tests and by local echo surfaces.
func NewUnthrottledLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{
		w:       w,
		limiter: rate.NewLimiter(rate.Inf, 0),
	}
}

// send throttles, then writes a single CRLF-terminated line.
func (lw *LineWriter) send(line string) {
	if err := lw.limiter.Wait(context.Background()); err != nil {
		return
	}
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if _, err := fmt.Fprintf(lw.w, "%s\r\n", line); err != nil {
		log.Printf("irc: write failed: %v", err)
	}
}

// Raw implements Client.
func (lw *LineWriter) Raw(line string) {
	lw.send(line)
}

// Say implements Client.
func (lw *LineWriter) Say(target, text string) {
	lw.send(fmt.Sprintf("PRIVMSG %s :%s", target, text))
}

// Action implements Client.
func (lw *LineWriter) Action(target, text string) {
	lw.send(fmt.Sprintf("PRIVMSG %s :\x01ACTION %s\x01", target, text))
}

// Notice implements Client.
func (lw *LineWriter) Notice(target, text string) {
	lw.send(fmt.Sprintf("NOTICE %s :%s", target, text))
}

// Join implements Client.
func (lw *LineWriter) Join(channel, key string) {
	if key == "" {
		lw.send("JOIN " + channel)
		return
	}
	lw.send(fmt.Sprintf("JOIN %s %s", channel, key))
}

// Part implements Client.
func (lw *LineWriter) Part(channel, message string) {
	if message == "" {
		lw.send("PART " + channel)
		return
	}
	lw.send(fmt.Sprintf("PART %s :%s", channel, message))
}

// ChangeNick implements Client.
func (lw *LineWriter) ChangeNick(nick string) {
	lw.send("NICK " + nick)
}
