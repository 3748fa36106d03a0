// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchAliasFile watches the alias definition file and calls onChange with
// the new source after each write. Editors replace files by rename, so the
// watch is on the containing directory. Returns a stop function; if the
// watch cannot be established the callback is simply never called.
func (c *Config) WatchAliasFile(onChange func(source string)) (stop func()) {
	if c.AliasFile == "" {
		return func() {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("config: alias watch unavailable: %v", err)
		return func() {}
	}
	if err := watcher.Add(filepath.Dir(c.AliasFile)); err != nil {
		log.Printf("config: alias watch unavailable: %v", err)
		watcher.Close()
		return func() {}
	}

	target := filepath.Clean(c.AliasFile)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				data, err := os.ReadFile(target)
				if err != nil {
					continue
				}
				onChange(string(data))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config: alias watch error: %v", err)
			}
		}
	}()
	return func() { watcher.Close() }
}
