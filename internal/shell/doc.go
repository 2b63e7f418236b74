// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell implements the command-shell core: the lexer that splits
// input lines into words, the scope/command tree, the tokenizer that turns
// words into an invocation (options and positionals), option value
// dereferencing (file:// and http(s):// values), the dispatcher that routes
// an input line to a command handler, and tab completion.
//
// The package is deliberately ignorant of the remote API's semantics. It
// resolves and tokenizes lines and hands a generic Invocation to whatever
// handler the command tree carries; the command definitions live in
// internal/commands.
package shell
