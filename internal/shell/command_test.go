// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"
	"testing"

	"github.com/jeranaias/hubshell/internal/output"
)

func testCommand() *Command {
	return &Command{
		Name:  "new",
		Brief: "Create a class",
		Options: []Option{
			{Short: "n", Long: "name", Help: "Class name", Required: true},
			{Short: "i", Long: "namespace-id", Help: "Namespace id", Kind: KindInt},
			{Short: "v", Long: "validate", Help: "Validate objects", Kind: KindBool, Flag: true},
			{Short: "s", Long: "schema", Help: "JSON schema", Kind: KindJSON},
		},
	}
}

func TestCanonicalize(t *testing.T) {
	cmd := testCommand()

	inv := &Invocation{Options: map[string]string{"n": "host", "namespace-id": "3"}}
	if err := cmd.Canonicalize(inv); err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if inv.Options["name"] != "host" {
		t.Errorf("short alias not canonicalized: %v", inv.Options)
	}
	if _, ok := inv.Options["n"]; ok {
		t.Errorf("short key left behind: %v", inv.Options)
	}
	if inv.Options["namespace-id"] != "3" {
		t.Errorf("long key lost: %v", inv.Options)
	}
}

func TestCanonicalizeAliasCollision(t *testing.T) {
	cmd := testCommand()

	// -n and --name are the same option supplied twice.
	inv := &Invocation{Options: map[string]string{"n": "a", "name": "b"}}
	err := cmd.Canonicalize(inv)
	if KindOf(err) != ErrKindDuplicateOption {
		t.Fatalf("error kind = %v, want duplicate_option", KindOf(err))
	}
}

func TestCanonicalizeKeepsUnknownKeys(t *testing.T) {
	cmd := testCommand()

	inv := &Invocation{Options: map[string]string{"extra": "x"}}
	if err := cmd.Canonicalize(inv); err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if inv.Options["extra"] != "x" {
		t.Errorf("unknown key dropped: %v", inv.Options)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		options  map[string]string
		wantKind ErrorKind
	}{
		{
			name:    "all good",
			options: map[string]string{"name": "host", "namespace-id": "3", "validate": "true", "schema": `{"a":1}`},
		},
		{
			name:     "missing required",
			options:  map[string]string{"namespace-id": "3"},
			wantKind: ErrKindMissingOption,
		},
		{
			name:     "bad int",
			options:  map[string]string{"name": "host", "namespace-id": "three"},
			wantKind: ErrKindBadValue,
		},
		{
			name:     "bad bool",
			options:  map[string]string{"name": "host", "validate": "maybe"},
			wantKind: ErrKindBadValue,
		},
		{
			name:    "empty bool is a bare flag",
			options: map[string]string{"name": "host", "validate": ""},
		},
		{
			name:     "bad json",
			options:  map[string]string{"name": "host", "schema": "{"},
			wantKind: ErrKindBadValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := testCommand()
			err := cmd.Validate(&Invocation{Options: tt.options})
			if KindOf(err) != tt.wantKind {
				t.Errorf("Validate(%v) kind = %v, want %v (err: %v)", tt.options, KindOf(err), tt.wantKind, err)
			}
		})
	}
}

func TestHelpRendering(t *testing.T) {
	cmd := testCommand()
	cmd.Positionals = []Positional{{Name: "name", Help: "Class name"}}
	cmd.Examples = []string{"--name host"}

	buf := output.NewBuffer()
	cmd.Help([]string{"class"}, buf)

	text := strings.Join(buf.Lines(), "\n")
	for _, want := range []string{
		"class new - Create a class",
		"-n, --name",
		"(required)",
		"Usage: class new [options] <name>",
		"Examples:",
		"  class new --name host",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("help missing %q:\n%s", want, text)
		}
	}
}
