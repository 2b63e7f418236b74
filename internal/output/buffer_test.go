// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package output

import (
	"strings"
	"testing"
)

func TestAppendSplitsLines(t *testing.T) {
	buf := NewBuffer()
	buf.Append("one\ntwo")
	buf.Appendf("%s %d", "three", 3)

	want := []string{"one", "two", "three 3"}
	got := buf.Lines()
	if len(got) != len(want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFlushAppliesFilter(t *testing.T) {
	buf := NewBuffer()
	buf.Append("keep this")
	buf.Append("drop that")
	buf.Warn("always shown")
	buf.Error("also always shown")

	filter, err := NewFilter("keep", false)
	if err != nil {
		t.Fatal(err)
	}
	buf.SetFilter(filter)

	var sb strings.Builder
	buf.Flush(&sb)
	text := sb.String()

	if !strings.Contains(text, "keep this") {
		t.Errorf("kept line missing:\n%s", text)
	}
	if strings.Contains(text, "drop that") {
		t.Errorf("filtered line leaked:\n%s", text)
	}
	// Warnings and errors bypass the filter.
	if !strings.Contains(text, "always shown") || !strings.Contains(text, "also always shown") {
		t.Errorf("warning or error filtered out:\n%s", text)
	}
}

func TestFlushClearsBuffer(t *testing.T) {
	buf := NewBuffer()
	buf.Append("once")

	var first, second strings.Builder
	buf.Flush(&first)
	buf.Flush(&second)

	if !strings.Contains(first.String(), "once") {
		t.Errorf("first flush = %q", first.String())
	}
	if second.Len() != 0 {
		t.Errorf("second flush emitted %q, want nothing", second.String())
	}
	if buf.Len() != 0 {
		t.Errorf("buffer length after flush = %d", buf.Len())
	}
}

func TestAppendKeyValue(t *testing.T) {
	buf := NewBuffer()
	buf.AppendKeyValue("Name", "host", 8)
	buf.AppendKeyValue("Id", 42, 8)

	lines := buf.Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %v", lines)
	}
	if !strings.Contains(lines[0], "Name") || !strings.HasSuffix(lines[0], ": host") {
		t.Errorf("line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ": 42") {
		t.Errorf("line = %q", lines[1])
	}
}

func TestAppendTable(t *testing.T) {
	buf := NewBuffer()
	buf.AppendTable(
		[]string{"Id", "Name"},
		[][]string{
			{"1", "host"},
			{"2", "switch"},
		},
	)

	lines := buf.Lines()
	if len(lines) != 4 {
		t.Fatalf("lines = %v", lines)
	}
	if !strings.HasPrefix(lines[0], "Id") || !strings.Contains(lines[0], "Name") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "--") {
		t.Errorf("separator = %q", lines[1])
	}
	if !strings.Contains(lines[3], "switch") {
		t.Errorf("row = %q", lines[3])
	}
}
