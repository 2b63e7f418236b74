// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"
	"testing"

	"github.com/jeranaias/hubshell/internal/output"
)

func testDispatcher(run HandlerFunc) *Dispatcher {
	root := NewScope("")
	class := root.MustAddScope("class")
	class.MustAddCommand(&Command{
		Name:  "info",
		Brief: "Show one class",
		Options: []Option{
			{Short: "n", Long: "name", Help: "Class name"},
		},
		Run: run,
	})
	return NewDispatcher(root, NewResolver(nil), nil)
}

func TestDispatch(t *testing.T) {
	var got *Invocation
	d := testDispatcher(func(inv *Invocation, out *output.Buffer) error {
		got = inv
		out.Append("ran")
		return nil
	})

	buf := output.NewBuffer()
	if err := d.Dispatch("class info -n host", buf); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got == nil {
		t.Fatal("handler not invoked")
	}
	if got.Options["name"] != "host" {
		t.Errorf("options not canonicalized: %v", got.Options)
	}
	if lines := buf.Lines(); len(lines) != 1 || lines[0] != "ran" {
		t.Errorf("output = %v", lines)
	}
}

func TestDispatchEmptyLineIsNoOp(t *testing.T) {
	d := testDispatcher(func(*Invocation, *output.Buffer) error {
		t.Fatal("handler invoked for empty line")
		return nil
	})

	buf := output.NewBuffer()
	for _, line := range []string{"", "   ", "\t"} {
		if err := d.Dispatch(line, buf); err != nil {
			t.Errorf("Dispatch(%q): %v", line, err)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("output = %v, want none", buf.Lines())
	}
}

func TestDispatchHelpSkipsHandler(t *testing.T) {
	invoked := false
	d := testDispatcher(func(*Invocation, *output.Buffer) error {
		invoked = true
		return nil
	})

	for _, line := range []string{"class info --help", "class info -h"} {
		buf := output.NewBuffer()
		if err := d.Dispatch(line, buf); err != nil {
			t.Fatalf("Dispatch(%q): %v", line, err)
		}
		if invoked {
			t.Fatalf("Dispatch(%q) ran the handler", line)
		}
		if text := strings.Join(buf.Lines(), "\n"); !strings.Contains(text, "class info - Show one class") {
			t.Errorf("Dispatch(%q) help output:\n%s", line, text)
		}
	}
}

func TestDispatchErrors(t *testing.T) {
	d := testDispatcher(func(*Invocation, *output.Buffer) error { return nil })

	tests := []struct {
		line     string
		wantKind ErrorKind
	}{
		{`class info "unterminated`, ErrKindParse},
		{"bogus", ErrKindCommandNotFound},
		{"class", ErrKindCommandNotFound},
		{"--name class info", ErrKindOptionBeforeCommand},
		{"class info -n a -n b", ErrKindDuplicateOption},
		{"class info --name a -n b", ErrKindDuplicateOption},
	}

	for _, tt := range tests {
		buf := output.NewBuffer()
		err := d.Dispatch(tt.line, buf)
		if KindOf(err) != tt.wantKind {
			t.Errorf("Dispatch(%q) kind = %v, want %v (err: %v)", tt.line, KindOf(err), tt.wantKind, err)
		}
	}
}
