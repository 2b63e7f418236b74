// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package output collects per-line user-facing output. Each processed
// input line gets a fresh Buffer; command handlers and error reporting
// append to it, and the REPL driver flushes it to the terminal once the
// line is done. An optional regular-expression filter, extracted from a
// trailing "| pattern" on the input line, selects which regular output
// lines survive the flush; warnings and errors always do.
package output
