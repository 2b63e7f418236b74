// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import "errors"

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorKind categorizes shell errors so the REPL boundary can decide how
// to present them. Every kind is recoverable for the session; only the
// line that produced the error is affected.
type ErrorKind int

const (
	ErrKindUnknown ErrorKind = iota

	// ErrKindParse covers malformed quoting or escaping in the raw line.
	ErrKindParse

	// ErrKindCommandNotFound is a tree-walk miss. Token carries the word
	// that failed to resolve.
	ErrKindCommandNotFound

	// ErrKindOptionBeforeCommand is a -prefixed word seen before the
	// command word.
	ErrKindOptionBeforeCommand

	// ErrKindDuplicateOption is an option key supplied more than once.
	ErrKindDuplicateOption

	// ErrKindInvalidOption is a malformed option key, e.g. a bare - or --.
	ErrKindInvalidOption

	// ErrKindMissingOption is a required option that was not supplied.
	ErrKindMissingOption

	// ErrKindBadValue is an option value that failed type coercion.
	ErrKindBadValue

	// ErrKindResolveNetwork is a failed http(s):// value dereference.
	ErrKindResolveNetwork

	// ErrKindResolveIO is a failed file:// value dereference.
	ErrKindResolveIO
)

// String names the kind for diagnostics.
func (k ErrorKind) String() string {
	switch k {
	case ErrKindParse:
		return "parse"
	case ErrKindCommandNotFound:
		return "command_not_found"
	case ErrKindOptionBeforeCommand:
		return "option_before_command"
	case ErrKindDuplicateOption:
		return "duplicate_option"
	case ErrKindInvalidOption:
		return "invalid_option"
	case ErrKindMissingOption:
		return "missing_option"
	case ErrKindBadValue:
		return "bad_value"
	case ErrKindResolveNetwork:
		return "resolve_network"
	case ErrKindResolveIO:
		return "resolve_io"
	default:
		return "unknown"
	}
}

// Error is the error type produced by the lexer, tokenizer, tree walk and
// value resolver. Token holds the offending word where one exists.
type Error struct {
	Kind    ErrorKind
	Token   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Token != "" {
		msg += ": " + e.Token
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// newError builds an *Error without a cause.
func newError(kind ErrorKind, message, token string) *Error {
	return &Error{Kind: kind, Message: message, Token: token}
}

// KindOf returns the ErrorKind of err, or ErrKindUnknown if err is not a
// shell error.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ErrKindUnknown
}

// =============================================================================
// SENTINELS
// =============================================================================

var (
	// ErrQuiet signals that a prior step already reported to the user and
	// no further message should be emitted for this line.
	ErrQuiet = errors.New("quiet")

	// ErrExit signals that the user asked to leave the shell.
	ErrExit = errors.New("exit requested")
)
