// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "testing"

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 0, ""},
		{"", 5, ""},
	}

	for _, tc := range tests {
		got := TruncateWidth(tc.input, tc.max)
		if got != tc.want {
			t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.want)
		}
	}
}

func TestTruncateWidthCountsDisplayColumns(t *testing.T) {
	// Four CJK runes occupy eight columns; five columns keep the first
	// two runes plus the suffix.
	if got := TruncateWidth("日本語字", 8); got != "日本語字" {
		t.Errorf("untruncated = %q", got)
	}
	got := TruncateWidth("日本語字", 7)
	if got == "日本語字" {
		t.Errorf("wide string not truncated: %q", got)
	}
}
