// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// VALUE RESOLVER
// =============================================================================

// Resolver dereferences option values. Values beginning with http:// or
// https:// are replaced by the fetched response body; values beginning
// with file:// are replaced by the contents of the named local file. In
// both cases trailing whitespace is trimmed. Anything else passes through
// unchanged.
//
// Dereferencing applies to option values only, never to scope or command
// words and never to positionals. There is no escape mechanism for a
// literal value starting with one of the prefixes.
type Resolver struct {
	httpClient *http.Client
}

// NewResolver returns a Resolver that fetches URLs with client. A nil
// client gets a default with a 30 second timeout.
func NewResolver(client *http.Client) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Resolver{httpClient: client}
}

// Resolve returns the dereferenced form of value.
func (r *Resolver) Resolve(value string) (string, error) {
	switch {
	case strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://"):
		return r.fetchURL(value)
	case strings.HasPrefix(value, "file://"):
		return readFile(strings.TrimPrefix(value, "file://"))
	default:
		return value, nil
	}
}

func (r *Resolver) fetchURL(url string) (string, error) {
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return "", &Error{Kind: ErrKindResolveNetwork, Message: "fetching option value", Token: url, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newError(ErrKindResolveNetwork, "fetching option value: unexpected status "+resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: ErrKindResolveNetwork, Message: "reading option value body", Token: url, Cause: err}
	}
	return strings.TrimRight(string(body), " \t\r\n"), nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Kind: ErrKindResolveIO, Message: "reading option value file", Token: path, Cause: err}
	}
	return strings.TrimRight(string(data), " \t\r\n"), nil
}
