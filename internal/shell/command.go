// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/hubshell/internal/output"
)

// =============================================================================
// OPTION SCHEMA
// =============================================================================

// ValueKind describes how an option value is coerced during validation.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindBool
	KindJSON
)

// CompleteFunc produces completion candidates for an option value. prefix
// is the partial word being completed and words are all words typed so
// far, so providers can anchor on earlier options (e.g. --class).
type CompleteFunc func(prefix string, words []string) []string

// Option describes one recognized option of a command.
type Option struct {
	// Short is the single-letter alias, without the dash.
	Short string

	// Long is the canonical key, without the dashes. Downstream handlers
	// always see values under this key.
	Long string

	// Help is the one-line description shown in command help.
	Help string

	// Flag marks an option that is meaningful without a value.
	Flag bool

	// Required options must be supplied on every invocation.
	Required bool

	// Kind selects value coercion during validation.
	Kind ValueKind

	// Complete optionally provides dynamic value candidates. Options of
	// KindBool complete to true/false without a provider.
	Complete CompleteFunc
}

// Positional describes an expected positional slot, for help and
// completion hints only; extra positionals are not rejected.
type Positional struct {
	Name string
	Help string
}

// =============================================================================
// COMMAND
// =============================================================================

// HandlerFunc executes a command. Output goes through the per-line
// buffer; the returned error is categorized at the REPL boundary.
type HandlerFunc func(inv *Invocation, out *output.Buffer) error

// Command is a leaf of the command tree: a name, an option/positional
// schema, and an execution handler.
type Command struct {
	Name        string
	Brief       string
	Long        string
	Examples    []string
	Options     []Option
	Positionals []Positional
	Run         HandlerFunc
}

// canonical maps an option key (short or long alias) to its canonical
// long key. Unknown keys map to themselves so commands can accept
// undeclared options; the help aliases are always recognized.
func (c *Command) canonical(key string) string {
	for i := range c.Options {
		opt := &c.Options[i]
		if key == opt.Long || (opt.Short != "" && key == opt.Short) {
			return opt.Long
		}
	}
	return key
}

// option looks up the declared option for a canonical key.
func (c *Command) option(key string) *Option {
	for i := range c.Options {
		if c.Options[i].Long == key {
			return &c.Options[i]
		}
	}
	return nil
}

// Canonicalize rewrites inv.Options so every key is canonical. Two
// aliases of the same option supplied together collapse to one key and
// are rejected as duplicates.
func (c *Command) Canonicalize(inv *Invocation) error {
	canonical := make(map[string]string, len(inv.Options))
	for key, value := range inv.Options {
		ck := c.canonical(key)
		if _, seen := canonical[ck]; seen {
			return newError(ErrKindDuplicateOption, "duplicate option", ck)
		}
		canonical[ck] = value
	}
	inv.Options = canonical
	return nil
}

// Validate checks required options and coerces typed values. It runs
// after Canonicalize and never runs for help invocations.
func (c *Command) Validate(inv *Invocation) error {
	var missing []string
	for i := range c.Options {
		opt := &c.Options[i]
		value, supplied := inv.Options[opt.Long]

		if !supplied {
			if opt.Required {
				missing = append(missing, opt.Long)
			}
			continue
		}

		switch opt.Kind {
		case KindInt:
			if _, err := strconv.Atoi(value); err != nil {
				return newError(ErrKindBadValue, "option "+opt.Long+" wants an integer", value)
			}
		case KindBool:
			if value != "" {
				if _, err := strconv.ParseBool(value); err != nil {
					return newError(ErrKindBadValue, "option "+opt.Long+" wants true or false", value)
				}
			}
		case KindJSON:
			if value != "" && !json.Valid([]byte(value)) {
				return newError(ErrKindBadValue, "option "+opt.Long+" wants valid JSON", value)
			}
		}
	}

	if len(missing) > 0 {
		return newError(ErrKindMissingOption, "missing required options", strings.Join(missing, ", "))
	}
	return nil
}

// =============================================================================
// HELP RENDERING
// =============================================================================

// Help writes the usage text for the command into out. path is the scope
// path the command was reached through.
func (c *Command) Help(path []string, out *output.Buffer) {
	full := strings.Join(append(append([]string{}, path...), c.Name), " ")

	out.Append(full + " - " + c.Brief)
	if c.Long != "" {
		out.Append("")
		out.Append(c.Long)
	}

	if len(c.Positionals) > 0 {
		var slots []string
		for _, p := range c.Positionals {
			slots = append(slots, "<"+p.Name+">")
		}
		out.Append("")
		out.Append("Usage: " + full + " [options] " + strings.Join(slots, " "))
	}

	if len(c.Options) > 0 {
		out.Append("")
		out.Append("Options:")
		for _, opt := range c.Options {
			forms := "--" + opt.Long
			if opt.Short != "" {
				forms = "-" + opt.Short + ", " + forms
			}
			line := fmt.Sprintf("  %-26s %s", forms, opt.Help)
			if opt.Required {
				line += " (required)"
			}
			out.Append(line)
		}
	}

	if len(c.Examples) > 0 {
		out.Append("")
		out.Append("Examples:")
		for _, ex := range c.Examples {
			out.Append("  " + full + " " + ex)
		}
	}
}
