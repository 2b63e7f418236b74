// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/jeranaias/hubshell/internal/api"
	"github.com/jeranaias/hubshell/internal/config"
	"github.com/jeranaias/hubshell/internal/output"
	"github.com/jeranaias/hubshell/internal/shell"
)

// =============================================================================
// REPL
// =============================================================================

// REPL drives the interactive loop: read a line, strip its filter
// suffix, dispatch, flush the buffered output. One-shot (--command) and
// script (--source) execution reuse the same per-line path without the
// line editor.
type REPL struct {
	dispatcher *shell.Dispatcher
	completer  *shell.Completer
	log        *zap.Logger

	prompt      string
	historyPath string
	out         io.Writer
}

// NewREPL creates the loop. out defaults to stdout when nil.
func NewREPL(d *shell.Dispatcher, c *shell.Completer, log *zap.Logger, prompt, historyPath string, out io.Writer) *REPL {
	if log == nil {
		log = zap.NewNop()
	}
	if out == nil {
		out = os.Stdout
	}
	return &REPL{
		dispatcher:  d,
		completer:   c,
		log:         log,
		prompt:      prompt,
		historyPath: historyPath,
		out:         out,
	}
}

// Prompt renders the "user@host:port > " prompt for cfg.
func Prompt(cfg *config.Config) string {
	text := fmt.Sprintf("%s@%s:%d > ", cfg.Server.Username, cfg.Server.Hostname, cfg.Server.Port)
	if !ColorsEnabled() {
		return text
	}
	return PromptStyle.Render(strings.TrimRight(text, " ")) + " "
}

// Run reads and executes lines until exit or EOF. History is loaded at
// start and written back on every accepted line so a crash loses
// nothing.
func (r *REPL) Run() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetWordCompleter(r.completer.Complete)

	if f, err := os.Open(r.historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	for {
		input, err := line.Prompt(r.prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			// Ctrl-C abandons the line, not the session.
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.out)
			return nil
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
			r.writeHistory(line)
		}

		if exit := r.Execute(input); exit {
			return nil
		}
	}
}

func (r *REPL) writeHistory(line *liner.State) {
	f, err := os.OpenFile(r.historyPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		r.log.Warn("writing history failed", zap.Error(err))
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}

// =============================================================================
// PER-LINE EXECUTION
// =============================================================================

// Execute runs one raw input line end to end and reports whether the
// user asked to exit.
func (r *REPL) Execute(raw string) (exit bool) {
	buf := output.NewBuffer()

	command, pattern, invert, hasFilter := output.SplitFilter(raw)
	if hasFilter {
		filter, err := output.NewFilter(pattern, invert)
		if err != nil {
			buf.Errorf("bad filter pattern %q: %v", pattern, err)
			buf.Flush(r.out)
			return false
		}
		buf.SetFilter(filter)
	}

	err := r.dispatcher.Dispatch(command, buf)
	exit = r.report(buf, err)
	buf.Flush(r.out)
	return exit
}

// report turns a dispatch error into buffered output. The shell stays up
// for every error; only ErrExit ends the session.
func (r *REPL) report(buf *output.Buffer, err error) (exit bool) {
	switch {
	case err == nil:
		return false
	case errors.Is(err, shell.ErrExit):
		return true
	case errors.Is(err, shell.ErrQuiet):
		return false
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && (apiErr.Status == 401 || apiErr.Status == 403) {
		buf.Error("not authorized; check your credentials and try again")
		r.log.Warn("request rejected", zap.Error(err))
		return false
	}

	buf.Error(err.Error())
	r.log.Debug("command failed",
		zap.Stringer("kind", shell.KindOf(err)),
		zap.Error(err),
	)
	return false
}

// =============================================================================
// NON-INTERACTIVE EXECUTION
// =============================================================================

// RunOnce executes a single line (--command) and returns an error when
// the line failed, for the process exit code.
func (r *REPL) RunOnce(line string) error {
	buf := output.NewBuffer()

	command, pattern, invert, hasFilter := output.SplitFilter(line)
	if hasFilter {
		filter, err := output.NewFilter(pattern, invert)
		if err != nil {
			return fmt.Errorf("bad filter pattern %q: %w", pattern, err)
		}
		buf.SetFilter(filter)
	}

	err := r.dispatcher.Dispatch(command, buf)
	if err != nil && !errors.Is(err, shell.ErrExit) && !errors.Is(err, shell.ErrQuiet) {
		r.report(buf, err)
		buf.Flush(r.out)
		return shell.ErrQuiet
	}
	buf.Flush(r.out)
	return nil
}

// RunScript executes lines from reader (--source). Empty lines and
// #-comments are skipped. A failing line is reported and the script
// continues; a reader failure stops it.
func (r *REPL) RunScript(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if exit := r.Execute(line); exit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return nil
}
