// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package alias implements user-defined command rewriting. An alias maps a
// command name to an expansion template; Process rewrites a matching input
// line by splicing in arguments ($1..$9, $2- for "2 through end") and
// context variables ($server, $channel, $destination, $nick).
//
// Process is pure: it has no side effects and returns its input unchanged
// when no rule matches. ImportFromString is tolerant of malformed source
// and may be called again at any time to replace the rule set.
package alias
