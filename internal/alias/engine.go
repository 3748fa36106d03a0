// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package alias

import (
	"strings"
	"sync"
)

// =============================================================================
// RULES
// =============================================================================

// Vars is the per-line context snapshot available to expansions. It is
// rebuilt for every processed line; the active buffer may change between
// lines of one paste.
type Vars struct {
	// Server is the active network's name.
	Server string

	// Channel is the active buffer's name when it is a channel, else "".
	Channel string

	// Destination is the active buffer's name, channel or query alike.
	Destination string

	// Nick is the client's nickname on the active network.
	Nick string
}

type rule struct {
	name      string
	expansion string
}

// Engine holds the current alias rule set. The zero value is usable and
// rewrites nothing.
type Engine struct {
	mu    sync.RWMutex
	rules map[string]rule
}

// NewEngine returns an engine with no rules.
func NewEngine() *Engine {
	return &Engine{rules: make(map[string]rule)}
}

// =============================================================================
// IMPORT
// =============================================================================

// ImportFromString replaces the rule set from an alias definition source.
// One definition per line: "name expansion...", with an optional leading
// slash on the name; blank lines and #-comments are skipped. Lines without
// an expansion are ignored rather than rejected; the source is user-edited
// and a half-typed line must not break the rest.
//
// An expansion containing "|" chains several commands; it is stored behind
// the lines command so each segment gets its own dispatch.
func (e *Engine) ImportFromString(source string) {
	rules := make(map[string]rule)

	for _, defLine := range strings.Split(source, "\n") {
		defLine = strings.TrimSpace(defLine)
		if defLine == "" || strings.HasPrefix(defLine, "#") {
			continue
		}
		name, expansion, ok := strings.Cut(defLine, " ")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimPrefix(name, "/"))
		expansion = strings.TrimSpace(expansion)
		if name == "" || expansion == "" {
			continue
		}
		if strings.Contains(expansion, "|") && !strings.HasPrefix(expansion, "lines ") {
			expansion = "lines " + expansion
		}
		rules[name] = rule{name: name, expansion: expansion}
	}

	e.mu.Lock()
	e.rules = rules
	e.mu.Unlock()
}

// =============================================================================
// PROCESS
// =============================================================================

// Process rewrites line if its command token matches a rule; otherwise the
// line is returned unchanged. The input is expected to start with "/".
func (e *Engine) Process(line string, vars Vars) string {
	if !strings.HasPrefix(line, "/") {
		return line
	}
	name, params, _ := strings.Cut(line[1:], " ")
	key := strings.ToLower(name)

	e.mu.RLock()
	r, ok := e.rules[key]
	e.mu.RUnlock()
	if !ok {
		return line
	}

	args := strings.Fields(params)
	expanded, usedArgs := expand(r.expansion, args, vars)
	if !usedArgs && params != "" {
		expanded += " " + params
	}
	return "/" + expanded
}

// expand substitutes $-placeholders in template. usedArgs reports whether
// any positional placeholder was consumed, so the caller knows whether to
// append the untouched parameter tail.
func expand(template string, args []string, vars Vars) (out string, usedArgs bool) {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			b.WriteByte(c)
			continue
		}
		rest := template[i+1:]

		// $1..$9 and the "rest of line" form $N-
		if rest[0] >= '1' && rest[0] <= '9' {
			n := int(rest[0] - '1')
			usedArgs = true
			if len(rest) > 1 && rest[1] == '-' {
				if n < len(args) {
					b.WriteString(strings.Join(args[n:], " "))
				}
				i += 2
			} else {
				if n < len(args) {
					b.WriteString(args[n])
				}
				i++
			}
			continue
		}

		if value, width, ok := contextVar(rest, vars); ok {
			b.WriteString(value)
			i += width
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), usedArgs
}

// contextVar matches a named context variable at the start of rest.
func contextVar(rest string, vars Vars) (value string, width int, ok bool) {
	for _, v := range []struct {
		name  string
		value string
	}{
		{"destination", vars.Destination},
		{"channel", vars.Channel},
		{"server", vars.Server},
		{"nick", vars.Nick},
	} {
		if strings.HasPrefix(rest, v.name) {
			return v.value, len(v.name), true
		}
	}
	return "", 0, false
}
