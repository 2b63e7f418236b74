// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import "strings"

// =============================================================================
// INVOCATION
// =============================================================================

// Invocation is one fully tokenized command request derived from a single
// input line. It is created fresh per line and owns nothing beyond its
// strings.
type Invocation struct {
	// Scopes is the scope path consumed before the command word, in
	// traversal order. The tree walk has already validated it.
	Scopes []string

	// Command is the resolved command word.
	Command string

	// Options maps canonical option keys to their (dereferenced) values.
	// Keys are unique per invocation; duplicates are rejected during
	// tokenizing.
	Options map[string]string

	// Positionals are the leftover bare words in encounter order.
	Positionals []string
}

// Option returns the value for key and whether it was supplied.
func (inv *Invocation) Option(key string) (string, bool) {
	v, ok := inv.Options[key]
	return v, ok
}

// Positional returns the positional at index i, or "" and false when
// there are fewer positionals.
func (inv *Invocation) Positional(i int) (string, bool) {
	if i < 0 || i >= len(inv.Positionals) {
		return "", false
	}
	return inv.Positionals[i], true
}

// HelpRequested reports whether the invocation carries a help option
// under either alias.
func (inv *Invocation) HelpRequested() bool {
	if _, ok := inv.Options["help"]; ok {
		return true
	}
	_, ok := inv.Options["h"]
	return ok
}

// =============================================================================
// TOKENIZER
// =============================================================================

// Tokenize splits lexed words into an Invocation given the resolved
// command word.
//
// Words before the first occurrence of command become the scope path.
// A -prefixed word before the command boundary is an error. After the
// boundary, each -x or --key word is an option key; the word following it
// is its raw value, or the empty string when the line ends first (flag
// style). Every option value passes through resolver before being
// stored. Bare words between the boundary and the first option are
// positionals, in order; once an option has been consumed, a bare word
// in key position is rejected.
//
// A bare - or -- (empty key) and a key supplied twice are both rejected.
func Tokenize(words []string, command string, resolver *Resolver) (*Invocation, error) {
	inv := &Invocation{
		Options: make(map[string]string),
	}

	i := 0
	for i < len(words) {
		word := words[i]

		switch {
		case inv.Command == "" && word == command:
			inv.Command = word
			i++

		case strings.HasPrefix(word, "-"):
			if inv.Command == "" {
				return nil, newError(ErrKindOptionBeforeCommand, "option before command", word)
			}
			key := strings.TrimPrefix(word, "-")
			key = strings.TrimPrefix(key, "-")
			if key == "" {
				return nil, newError(ErrKindInvalidOption, "empty option key", word)
			}
			if _, seen := inv.Options[key]; seen {
				return nil, newError(ErrKindDuplicateOption, "duplicate option", key)
			}

			value := ""
			if i+1 < len(words) {
				value = words[i+1]
				i++
			}
			resolved, err := resolver.Resolve(value)
			if err != nil {
				return nil, err
			}
			inv.Options[key] = resolved
			i++

		case inv.Command == "":
			inv.Scopes = append(inv.Scopes, word)
			i++

		default:
			if len(inv.Options) > 0 {
				return nil, newError(ErrKindInvalidOption, "unexpected word after options", word)
			}
			inv.Positionals = append(inv.Positionals, word)
			i++
		}
	}

	return inv, nil
}
