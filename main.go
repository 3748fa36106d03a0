// ircline - a terminal IRC client core with an interactive shell.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/jeranaias/ircline/internal/config"
	"github.com/jeranaias/ircline/internal/input"
	"github.com/jeranaias/ircline/internal/irc"
	"github.com/jeranaias/ircline/internal/state"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := state.NewStore(func(opts state.ConnectionOptions) irc.Client {
		// Wire lines go to stdout tagged with the network address; real
		// connection management lives outside this core.
		return irc.NewLineWriter(prefixWriter{prefix: opts.Address + " <- ", w: os.Stdout})
	})
	bus := state.NewBus()
	input.NewCoordinator(store, bus, cfg.LoadAliasSource())

	stopWatch := cfg.WatchAliasFile(func(source string) {
		bus.Emit(state.TopicAliasSource, source)
	})
	defer stopWatch()

	if cfg.Server.Address != "" {
		store.AddNetwork(cfg.Server.Address, cfg.Nick, state.ConnectionOptions{
			Address:  cfg.Server.Address,
			Port:     cfg.Server.Port,
			TLS:      cfg.Server.TLS,
			Password: cfg.Server.Password,
		})
	}

	runShell(cfg, store, bus)
}

// =============================================================================
// INTERACTIVE SHELL
// =============================================================================

// runShell is the REPL: read a line (with history), push it through the
// input pipeline, then print whatever arrived in the active buffer.
func runShell(cfg *config.Config, store *state.Store, bus *state.Bus) {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()

	loadHistory(line, cfg.HistoryFile)
	defer saveHistory(line, cfg.HistoryFile)

	fmt.Printf("ircline %s. /server <addr> [+]<port> to get started, Ctrl-D to exit\n", Version)

	seen := make(map[string]int)
	for {
		text, err := line.Prompt(prompt(store))
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			log.Printf("input error: %v", err)
			return
		}
		if text != "" {
			line.AppendHistory(text)
		}
		bus.Emit(state.TopicRawInput, text)
		printNewMessages(store, seen)
	}
}

func prompt(store *state.Store) string {
	buf := store.ActiveBuffer()
	if buf == nil {
		return "> "
	}
	return buf.Name + "> "
}

// printNewMessages prints messages appended to the active buffer since the
// last call, tracked per buffer ID.
func printNewMessages(store *state.Store, seen map[string]int) {
	buf := store.ActiveBuffer()
	if buf == nil {
		return
	}
	for _, msg := range buf.Messages[seen[buf.ID]:] {
		fmt.Printf("[%s] <%s> %s\n", msg.Time.Format("15:04:05"), msg.Nick, msg.Text)
	}
	seen[buf.ID] = len(buf.Messages)
}

// =============================================================================
// HISTORY
// =============================================================================

func loadHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.ReadHistory(f)
}

func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}

// prefixWriter tags every written line with a fixed prefix.
type prefixWriter struct {
	prefix string
	w      io.Writer
}

func (p prefixWriter) Write(b []byte) (int, error) {
	if _, err := io.WriteString(p.w, p.prefix); err != nil {
		return 0, err
	}
	return p.w.Write(b)
}
