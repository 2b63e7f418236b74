// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/hubshell/internal/output"
)

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatcher routes one input line through the lexer, the tree walk, the
// tokenizer and finally the matched command's handler. It holds no
// per-line state; a fresh Invocation is built for every line.
type Dispatcher struct {
	root     *Scope
	resolver *Resolver
	log      *zap.Logger
}

// NewDispatcher creates a dispatcher over the given command tree. A nil
// logger disables diagnostics.
func NewDispatcher(root *Scope, resolver *Resolver, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{root: root, resolver: resolver, log: log}
}

// Root returns the command tree root, shared with the completer.
func (d *Dispatcher) Root() *Scope {
	return d.root
}

// Dispatch executes a single line. An empty line is a no-op. Output is
// written to out; the returned error is one of the shell error kinds, a
// handler error passed through unchanged, or nil.
func (d *Dispatcher) Dispatch(line string, out *output.Buffer) error {
	words, err := Lex(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}

	res, err := d.root.Resolve(words)
	if err != nil {
		return err
	}
	if res.Command == nil {
		// The line named scopes only ("class" with no command).
		return newError(ErrKindCommandNotFound, "command not found", strings.Join(words, " "))
	}

	inv, err := Tokenize(words, res.Command.Name, d.resolver)
	if err != nil {
		return err
	}
	if err := res.Command.Canonicalize(inv); err != nil {
		return err
	}

	if inv.HelpRequested() {
		res.Command.Help(res.Path, out)
		return nil
	}

	if err := res.Command.Validate(inv); err != nil {
		return err
	}

	// Timing is diagnostics only and never changes the outcome.
	start := time.Now()
	runErr := res.Command.Run(inv, out)
	d.log.Debug("command executed",
		zap.String("command", strings.Join(append(append([]string{}, res.Path...), res.Command.Name), " ")),
		zap.Duration("took", time.Since(start)),
		zap.Bool("ok", runErr == nil),
	)
	return runErr
}
