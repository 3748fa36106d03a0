// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands is the input-line dispatcher: it turns raw typed lines
// into slash commands, rewrites them through the alias engine, and routes
// them to registered handlers.
//
// # Key Types
//
//   - Event: one dispatch cycle's state, with the Handled flag that
//     suppresses the raw passthrough
//   - Registry: explicit command-name → handler table, built once and
//     injected into the dispatcher
//   - Dispatcher: ProcessLine, the whole pipeline
//
// # Pipeline
//
// A line that does not start with "/" becomes an implicit command first:
// /quote on a server buffer, /msg <active buffer> elsewhere. The line then
// passes through the alias engine, is split into (command, params), and is
// dispatched. A command no handler claims is forwarded verbatim to the
// active network's transport; unknown commands are not errors.
//
// Dispatch is synchronous and single-threaded; the lines command re-enters
// ProcessLine recursively, bounded by MaxDepth.
package commands
