// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// Error is a structured error from the remote API. Status is the HTTP
// status code; Message is the server's error text when it sent one.
type Error struct {
	Status    int
	Message   string
	RequestID string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d - %s", e.Status, e.Message)
	}
	return fmt.Sprintf("status %d", e.Status)
}

// Sentinel errors for the expect-single-result lookups.
var (
	// ErrNotFound: a lookup that must match exactly one entity matched
	// none.
	ErrNotFound = errors.New("entity not found")

	// ErrMultipleMatches: a lookup that must match exactly one entity
	// matched several.
	ErrMultipleMatches = errors.New("multiple entities found")

	// ErrNotAuthenticated: a request was made before a successful login.
	ErrNotAuthenticated = errors.New("not authenticated")
)
