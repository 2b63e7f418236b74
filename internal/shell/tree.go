// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"fmt"
	"sort"
)

// =============================================================================
// SCOPE TREE
// =============================================================================

// Scope is a named grouping node of the command tree. A scope owns child
// scopes and child commands; no child scope name may collide with a child
// command name, which keeps the greedy tree walk unambiguous. The tree is
// built once at startup and read-only afterwards, so the dispatcher and
// the completer share it without locking.
type Scope struct {
	name     string
	scopes   map[string]*Scope
	commands map[string]*Command
	order    []string // child names in registration order, for help
}

// NewScope creates an empty scope. The root scope's name is "".
func NewScope(name string) *Scope {
	return &Scope{
		name:     name,
		scopes:   make(map[string]*Scope),
		commands: make(map[string]*Command),
	}
}

// AddScope registers and returns a child scope. Registration fails when
// the name is empty or collides with a sibling scope or command.
func (s *Scope) AddScope(name string) (*Scope, error) {
	if name == "" {
		return nil, fmt.Errorf("scope name must not be empty")
	}
	if _, ok := s.scopes[name]; ok {
		return nil, fmt.Errorf("scope %q already registered", name)
	}
	if _, ok := s.commands[name]; ok {
		return nil, fmt.Errorf("scope %q collides with a command of the same name", name)
	}
	child := NewScope(name)
	s.scopes[name] = child
	s.order = append(s.order, name)
	return child, nil
}

// AddCommand registers a command under the scope. Registration fails when
// the command name is empty or collides with a sibling scope or command.
func (s *Scope) AddCommand(cmd *Command) error {
	if cmd == nil || cmd.Name == "" {
		return fmt.Errorf("command name must not be empty")
	}
	if _, ok := s.commands[cmd.Name]; ok {
		return fmt.Errorf("command %q already registered", cmd.Name)
	}
	if _, ok := s.scopes[cmd.Name]; ok {
		return fmt.Errorf("command %q collides with a scope of the same name", cmd.Name)
	}
	s.commands[cmd.Name] = cmd
	s.order = append(s.order, cmd.Name)
	return nil
}

// MustAddScope is AddScope for static tree construction; collisions are
// programming errors there.
func (s *Scope) MustAddScope(name string) *Scope {
	child, err := s.AddScope(name)
	if err != nil {
		panic(err)
	}
	return child
}

// MustAddCommand is AddCommand for static tree construction.
func (s *Scope) MustAddCommand(cmd *Command) {
	if err := s.AddCommand(cmd); err != nil {
		panic(err)
	}
}

// Scope returns the named child scope, or nil.
func (s *Scope) Scope(name string) *Scope {
	return s.scopes[name]
}

// Command returns the named child command, or nil.
func (s *Scope) Command(name string) *Command {
	return s.commands[name]
}

// Children returns the names of all child scopes and commands in
// registration order.
func (s *Scope) Children() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// ChildrenWithPrefix returns the sorted child names starting with prefix.
func (s *Scope) ChildrenWithPrefix(prefix string) []string {
	var out []string
	for _, name := range s.order {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolution is the result of walking the tree over the leading words of
// a line.
type Resolution struct {
	// Path is the scope path consumed, in order.
	Path []string

	// Scope is the scope the command was found in.
	Scope *Scope

	// Command is the matched command. Nil only when the word list was
	// exhausted inside a scope (e.g. the bare line "class"); the
	// dispatcher turns that into a scope listing.
	Command *Command
}

// Resolve walks the tree greedily left to right. Each word either names a
// child scope (descend) or a child command (stop and match); anything
// else fails with a command-not-found error carrying the word. There is
// no backtracking: the construction-time collision check guarantees a
// word cannot name both.
func (s *Scope) Resolve(words []string) (*Resolution, error) {
	res := &Resolution{Scope: s}

	current := s
	for _, word := range words {
		if child := current.Scope(word); child != nil {
			res.Path = append(res.Path, word)
			res.Scope = child
			current = child
			continue
		}
		if cmd := current.Command(word); cmd != nil {
			res.Command = cmd
			return res, nil
		}
		return nil, newError(ErrKindCommandNotFound, "command not found", word)
	}

	return res, nil
}
