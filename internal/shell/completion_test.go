// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"reflect"
	"testing"
)

func completionTree() *Scope {
	root := NewScope("")

	class := root.MustAddScope("class")
	class.MustAddCommand(&Command{Name: "new", Brief: "Create a class"})
	class.MustAddCommand(&Command{
		Name:  "info",
		Brief: "Show one class",
		Options: []Option{
			{Short: "n", Long: "name", Help: "Class name", Complete: func(prefix string, _ []string) []string {
				return []string{"host", "hostgroup", "switch"}
			}},
			{Short: "v", Long: "verbose", Help: "More detail", Kind: KindBool, Flag: true},
		},
	})

	root.MustAddScope("namespace")
	root.MustAddCommand(&Command{Name: "status", Brief: "Show status"})
	return root
}

func TestCandidates(t *testing.T) {
	c := NewCompleter(completionTree(), nil)

	tests := []struct {
		name    string
		words   []string
		partial string
		want    []string
	}{
		{
			name:    "root scopes and commands",
			partial: "",
			want:    []string{"class", "namespace", "status"},
		},
		{
			name:    "root prefix",
			partial: "s",
			want:    []string{"status"},
		},
		{
			name:    "commands inside scope",
			words:   []string{"class"},
			partial: "",
			want:    []string{"info", "new"},
		},
		{
			name:    "command prefix inside scope",
			words:   []string{"class"},
			partial: "i",
			want:    []string{"info"},
		},
		{
			name:    "option keys",
			words:   []string{"class", "info"},
			partial: "--",
			want:    []string{"--name", "--verbose"},
		},
		{
			name:    "short option keys",
			words:   []string{"class", "info"},
			partial: "-",
			want:    []string{"--name", "--verbose", "-n", "-v"},
		},
		{
			name:    "dynamic option values",
			words:   []string{"class", "info", "--name"},
			partial: "host",
			want:    []string{"host", "hostgroup"},
		},
		{
			name:    "short alias reaches the same provider",
			words:   []string{"class", "info", "-n"},
			partial: "sw",
			want:    []string{"switch"},
		},
		{
			name:    "bool option values",
			words:   []string{"class", "info", "--verbose"},
			partial: "t",
			want:    []string{"true"},
		},
		{
			name:    "no provider no candidates",
			words:   []string{"class", "info"},
			partial: "x",
			want:    nil,
		},
		{
			name:    "unknown word yields nothing",
			words:   []string{"wat"},
			partial: "x",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Candidates(tt.words, tt.partial)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Candidates(%v, %q) = %v, want %v", tt.words, tt.partial, got, tt.want)
			}
		})
	}
}

func TestCompleteSplitsLine(t *testing.T) {
	c := NewCompleter(completionTree(), nil)

	head, candidates, tail := c.Complete("class in", 8)
	if head != "class " {
		t.Errorf("head = %q", head)
	}
	if !reflect.DeepEqual(candidates, []string{"info"}) {
		t.Errorf("candidates = %v", candidates)
	}
	if tail != "" {
		t.Errorf("tail = %q", tail)
	}
}

func TestCompleteMidLine(t *testing.T) {
	c := NewCompleter(completionTree(), nil)

	// Cursor before the trailing text; the tail must survive untouched.
	line := "class in --verbose"
	head, candidates, tail := c.Complete(line, 8)
	if head != "class " || tail != " --verbose" {
		t.Errorf("head = %q, tail = %q", head, tail)
	}
	if !reflect.DeepEqual(candidates, []string{"info"}) {
		t.Errorf("candidates = %v", candidates)
	}
}

func TestCompleteUnbalancedQuote(t *testing.T) {
	c := NewCompleter(completionTree(), nil)

	// An open quote in the already-typed words cannot lex; completion
	// stays silent rather than erroring under the cursor.
	_, candidates, _ := c.Complete(`class "info x`, 13)
	if candidates != nil {
		t.Errorf("candidates = %v, want none", candidates)
	}
}
