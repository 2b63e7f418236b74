// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string helpers shared by the output layer.
package util

import "github.com/mattn/go-runewidth"

// TruncateWidth truncates a string to a maximum display width, counting
// double-width (CJK) characters as two columns. Truncated strings get a
// "..." suffix when there is room for one.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
