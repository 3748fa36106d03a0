// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package state

import (
	"time"

	"github.com/google/uuid"
)

// MessageType classifies a buffer message for display purposes.
type MessageType string

const (
	// MessageChat is an ordinary PRIVMSG-style message.
	MessageChat MessageType = "chat"

	// MessageAction is a /me action line.
	MessageAction MessageType = "action"

	// MessageNotice is a notice line.
	MessageNotice MessageType = "notice"

	// MessageSystem is a locally generated informational line
	// (e.g. "Scrollback cleared"); it never touches the wire.
	MessageSystem MessageType = "system"
)

// Message is one line in a buffer's scrollback.
type Message struct {
	// ID uniquely identifies the message within the process.
	ID string

	// Time is when the message was added. Zero means "now" at add time.
	Time time.Time

	// Nick is the sender, or a label for system messages.
	Nick string

	// Text is the message body.
	Text string

	// Type defaults to MessageChat when empty.
	Type MessageType
}

// normalize fills defaulted fields in place.
func (m *Message) normalize() {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Time.IsZero() {
		m.Time = time.Now()
	}
	if m.Type == "" {
		m.Type = MessageChat
	}
}
