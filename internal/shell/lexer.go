// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"
	"unicode"
)

// =============================================================================
// LEXER
// =============================================================================

// Lex splits a raw input line into shell-style words.
//
// Splitting happens on whitespace outside quotes. Both single and double
// quotes group words; inside double quotes a backslash escapes the next
// character, outside quotes a backslash escapes the next character
// (including whitespace). Single-quoted text is taken literally.
//
// A quoted empty string ("" or '') yields an empty word, so option values
// can be explicitly blanked.
//
// An unterminated quote or a trailing backslash is a parse error; the
// whole line is rejected. An empty or whitespace-only line yields an
// empty word list and no error.
func Lex(line string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		quoted  bool // current word had a quote, keep it even when empty
		inSingle,
		inDouble bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch {
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true

		case ch == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true

		case ch == '\\' && !inSingle:
			// Escapes apply outside quotes and inside double quotes.
			if i+1 >= len(runes) {
				return nil, newError(ErrKindParse, "dangling escape at end of input", "")
			}
			i++
			current.WriteRune(runes[i])

		case unicode.IsSpace(ch) && !inSingle && !inDouble:
			if current.Len() > 0 || quoted {
				words = append(words, current.String())
				current.Reset()
				quoted = false
			}

		default:
			current.WriteRune(ch)
		}
	}

	if inSingle || inDouble {
		return nil, newError(ErrKindParse, "unterminated quote", "")
	}

	if current.Len() > 0 || quoted {
		words = append(words, current.String())
	}

	return words, nil
}
