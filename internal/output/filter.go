// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package output

import (
	"regexp"
	"strings"
)

// =============================================================================
// OUTPUT FILTER
// =============================================================================

// Filter selects output lines by regular expression. With Invert set,
// matching lines are dropped instead of kept.
type Filter struct {
	re     *regexp.Regexp
	invert bool
}

// NewFilter compiles pattern into a Filter.
func NewFilter(pattern string, invert bool) (*Filter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Filter{re: re, invert: invert}, nil
}

// Pattern returns the original pattern text.
func (f *Filter) Pattern() string {
	return f.re.String()
}

// Inverted reports whether the filter drops matching lines.
func (f *Filter) Inverted() bool {
	return f.invert
}

// Keep reports whether line survives the filter.
func (f *Filter) Keep(line string) bool {
	matched := f.re.MatchString(line)
	if f.invert {
		return !matched
	}
	return matched
}

// =============================================================================
// FILTER SUFFIX EXTRACTION
// =============================================================================

// SplitFilter extracts a trailing "| pattern" or "| !pattern" suffix from
// an input line. It returns the command part with the suffix stripped,
// the pattern, whether the pattern is inverted, and whether a suffix was
// present at all. Only the first pipe splits; later pipes belong to the
// pattern.
func SplitFilter(line string) (command, pattern string, invert, ok bool) {
	idx := strings.IndexByte(line, '|')
	if idx < 0 {
		return line, "", false, false
	}

	command = strings.TrimSpace(line[:idx])
	pattern = strings.TrimSpace(line[idx+1:])
	if rest, found := strings.CutPrefix(pattern, "!"); found {
		invert = true
		pattern = strings.TrimSpace(rest)
	}
	return command, pattern, invert, true
}
