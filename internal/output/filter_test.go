// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package output

import "testing"

func TestSplitFilter(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantCommand string
		wantPattern string
		wantInvert  bool
		wantOK      bool
	}{
		{
			name:        "no filter",
			line:        "class list",
			wantCommand: "class list",
		},
		{
			name:        "plain filter",
			line:        "class list | host",
			wantCommand: "class list",
			wantPattern: "host",
			wantOK:      true,
		},
		{
			name:        "inverted filter",
			line:        "class list | !error",
			wantCommand: "class list",
			wantPattern: "error",
			wantInvert:  true,
			wantOK:      true,
		},
		{
			name:        "only the first pipe splits",
			line:        "class list | a|b",
			wantCommand: "class list",
			wantPattern: "a|b",
			wantOK:      true,
		},
		{
			name:        "empty pattern",
			line:        "class list |",
			wantCommand: "class list",
			wantPattern: "",
			wantOK:      true,
		},
		{
			name:        "tight spacing",
			line:        "class list|host",
			wantCommand: "class list",
			wantPattern: "host",
			wantOK:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, pattern, invert, ok := SplitFilter(tt.line)
			if command != tt.wantCommand || pattern != tt.wantPattern || invert != tt.wantInvert || ok != tt.wantOK {
				t.Errorf("SplitFilter(%q) = (%q, %q, %v, %v), want (%q, %q, %v, %v)",
					tt.line, command, pattern, invert, ok,
					tt.wantCommand, tt.wantPattern, tt.wantInvert, tt.wantOK)
			}
		})
	}
}

func TestFilterKeep(t *testing.T) {
	plain, err := NewFilter("err", false)
	if err != nil {
		t.Fatal(err)
	}
	if !plain.Keep("an error line") || plain.Keep("all fine") {
		t.Error("plain filter misclassified lines")
	}

	inverted, err := NewFilter("err", true)
	if err != nil {
		t.Fatal(err)
	}
	if inverted.Keep("an error line") || !inverted.Keep("all fine") {
		t.Error("inverted filter misclassified lines")
	}

	if _, err := NewFilter("(", false); err == nil {
		t.Error("bad pattern accepted")
	}
}
