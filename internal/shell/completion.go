// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completer produces tab-completion candidates from the command tree and
// from per-option providers. Completion is best effort: a line that does
// not lex, an unknown word, or a failed provider all yield an empty
// candidate set, never an error.
type Completer struct {
	root *Scope
	log  *zap.Logger
}

// NewCompleter creates a completer over the shared command tree.
func NewCompleter(root *Scope, log *zap.Logger) *Completer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Completer{root: root, log: log}
}

// Complete implements liner.WordCompleter. It completes the word under
// the cursor and leaves the rest of the line untouched.
func (c *Completer) Complete(line string, pos int) (string, []string, string) {
	if pos > len(line) {
		pos = len(line)
	}
	typed, tail := line[:pos], line[pos:]

	// The word being completed is the raw text after the last space; the
	// words before it are lexed for the tree walk.
	cut := strings.LastIndexAny(typed, " \t") + 1
	head, partial := typed[:cut], typed[cut:]

	words, err := Lex(head)
	if err != nil {
		// Mid-line quoting states are normal while typing.
		return head, nil, tail
	}

	candidates := c.Candidates(words, partial)
	return head, candidates, tail
}

// Candidates returns the sorted, deduplicated completion candidates for
// partial given the complete words typed before it.
func (c *Completer) Candidates(words []string, partial string) []string {
	scope, cmd := c.walk(words)

	var candidates []string
	switch {
	case cmd == nil:
		candidates = scope.ChildrenWithPrefix(partial)

	case strings.HasPrefix(partial, "-"):
		candidates = optionKeyCandidates(cmd, partial)

	default:
		candidates = c.valueCandidates(cmd, words, partial)
	}

	return dedupe(candidates)
}

// walk descends the tree over words, stopping at the first command.
func (c *Completer) walk(words []string) (*Scope, *Command) {
	current := c.root
	for _, word := range words {
		if child := current.Scope(word); child != nil {
			current = child
			continue
		}
		if cmd := current.Command(word); cmd != nil {
			return current, cmd
		}
		// Unknown word: anything after it cannot be completed from the
		// tree, but options of a matched command are handled above.
		return current, nil
	}
	return current, nil
}

// valueCandidates completes the value of the option immediately before
// the cursor, when there is one.
func (c *Completer) valueCandidates(cmd *Command, words []string, partial string) []string {
	if len(words) == 0 {
		return nil
	}
	last := words[len(words)-1]
	if !strings.HasPrefix(last, "-") {
		return nil
	}

	key := cmd.canonical(strings.TrimLeft(last, "-"))
	opt := cmd.option(key)
	if opt == nil {
		return nil
	}

	if opt.Kind == KindBool {
		return prefixFilter([]string{"true", "false"}, partial)
	}
	if opt.Complete == nil {
		return nil
	}

	candidates := opt.Complete(partial, words)
	c.log.Debug("dynamic completion",
		zap.String("option", key),
		zap.String("prefix", partial),
		zap.Int("candidates", len(candidates)),
	)
	return prefixFilter(candidates, partial)
}

// =============================================================================
// CANDIDATE HELPERS
// =============================================================================

func optionKeyCandidates(cmd *Command, partial string) []string {
	var out []string
	for _, opt := range cmd.Options {
		long := "--" + opt.Long
		if strings.HasPrefix(long, partial) {
			out = append(out, long)
		}
		if opt.Short != "" {
			short := "-" + opt.Short
			if strings.HasPrefix(short, partial) {
				out = append(out, short)
			}
		}
	}
	return out
}

func prefixFilter(candidates []string, prefix string) []string {
	if prefix == "" {
		return candidates
	}
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func dedupe(candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(candidates))
	var out []string
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
