// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Amber
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Light gray
)

// =============================================================================
// LEVELS
// =============================================================================

// Level classifies a buffered line.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

type entry struct {
	level Level
	text  string
}

// =============================================================================
// BUFFER
// =============================================================================

// Buffer accumulates the output of one processed input line. It starts
// empty, is filled during dispatch, and is flushed exactly once. Buffers
// are not shared between lines.
type Buffer struct {
	entries []entry
	filter  *Filter
}

// NewBuffer returns an empty buffer with no filter.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// SetFilter installs the output filter for this line. A nil filter keeps
// everything.
func (b *Buffer) SetFilter(f *Filter) {
	b.filter = f
}

// Append adds a regular output line. Multi-line text is split so the
// filter sees individual lines.
func (b *Buffer) Append(text string) {
	for _, line := range strings.Split(text, "\n") {
		b.entries = append(b.entries, entry{level: LevelInfo, text: line})
	}
}

// Appendf formats and appends a regular output line.
func (b *Buffer) Appendf(format string, args ...any) {
	b.Append(fmt.Sprintf(format, args...))
}

// Warn adds a warning line. Warnings bypass the output filter.
func (b *Buffer) Warn(text string) {
	b.entries = append(b.entries, entry{level: LevelWarning, text: text})
}

// Warnf formats and appends a warning line.
func (b *Buffer) Warnf(format string, args ...any) {
	b.Warn(fmt.Sprintf(format, args...))
}

// Error adds an error line. Errors bypass the output filter.
func (b *Buffer) Error(text string) {
	b.entries = append(b.entries, entry{level: LevelError, text: text})
}

// Errorf formats and appends an error line.
func (b *Buffer) Errorf(format string, args ...any) {
	b.Error(fmt.Sprintf(format, args...))
}

// Len returns the number of buffered lines.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Lines returns the buffered text lines without styling, in order.
// Primarily for tests.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e.text)
	}
	return out
}

// Flush writes the buffered lines to w, applying the filter to regular
// lines and styling warnings and errors. The buffer is cleared so an
// accidental second flush emits nothing.
func (b *Buffer) Flush(w io.Writer) {
	for _, e := range b.entries {
		switch e.level {
		case LevelWarning:
			fmt.Fprintln(w, warningStyle.Render("Warning:")+" "+e.text)
		case LevelError:
			fmt.Fprintln(w, errorStyle.Render("Error:")+" "+e.text)
		default:
			if b.filter != nil && !b.filter.Keep(e.text) {
				continue
			}
			fmt.Fprintln(w, e.text)
		}
	}
	b.entries = nil
	b.filter = nil
}
