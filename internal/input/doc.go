// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package input wires the pieces of the input pipeline together: it owns
// the alias engine, keeps it primed from the alias source, and feeds raw
// input, which may span several newline-separated lines, into the
// dispatcher one line at a time.
package input
