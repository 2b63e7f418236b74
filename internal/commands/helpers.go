// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jeranaias/hubshell/internal/api"
	"github.com/jeranaias/hubshell/internal/config"
	"github.com/jeranaias/hubshell/internal/shell"
)

// =============================================================================
// COMMAND SET
// =============================================================================

// Set holds the dependencies the command handlers close over.
type Set struct {
	client *api.Client
	cache  *api.Cache
}

// New creates the command set. cache may be nil when caching is disabled.
func New(client *api.Client, cache *api.Cache) *Set {
	return &Set{client: client, cache: cache}
}

// opCtx returns the context for one handler-driven API call.
func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// completionCtx returns the context for completion-driven API calls,
// which must stay snappy under the cursor.
func completionCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 3*time.Second)
}

// =============================================================================
// ARGUMENT HELPERS
// =============================================================================

// nameArg returns the entity name from the name option or, failing that,
// the first positional.
func nameArg(inv *shell.Invocation) (string, bool) {
	if v, ok := inv.Option("name"); ok && v != "" {
		return v, true
	}
	return inv.Positional(0)
}

// requireName is nameArg with a uniform error for commands that cannot
// proceed without one.
func requireName(inv *shell.Invocation) (string, error) {
	name, ok := nameArg(inv)
	if !ok {
		return "", fmt.Errorf("a name is required (use --name or a positional argument)")
	}
	return name, nil
}

// intOption returns an integer option value. Validation has already
// coerced the value, so conversion cannot fail for declared KindInt
// options.
func intOption(inv *shell.Invocation, key string) (int, bool) {
	v, ok := inv.Option(key)
	if !ok || v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// boolOption reports whether a flag-style option is set. A bare flag
// (empty value) counts as true.
func boolOption(inv *shell.Invocation, key string) bool {
	v, ok := inv.Option(key)
	if !ok {
		return false
	}
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// =============================================================================
// COMPLETION PROVIDERS
// =============================================================================

// apiCompletionEnabled gates the server-backed value providers. They stay
// silent when disabled in the config or before login; completion must
// never trigger a password prompt or an error under the cursor.
func (s *Set) apiCompletionEnabled() bool {
	return !config.Global().Completion.DisableAPI && s.client.Authenticated()
}

// classNames completes class name values from the server.
func (s *Set) classNames(prefix string, _ []string) []string {
	if !s.apiCompletionEnabled() {
		return nil
	}
	ctx, cancel := completionCtx()
	defer cancel()

	classes, err := s.client.Classes().List(ctx, api.StartsWith("name", prefix))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, c.Name)
	}
	return names
}

// namespaceNames completes namespace name values from the server.
func (s *Set) namespaceNames(prefix string, _ []string) []string {
	if !s.apiCompletionEnabled() {
		return nil
	}
	ctx, cancel := completionCtx()
	defer cancel()

	namespaces, err := s.client.Namespaces().List(ctx, api.StartsWith("name", prefix))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(namespaces))
	for _, n := range namespaces {
		names = append(names, n.Name)
	}
	return names
}

// usernames completes user name values from the server.
func (s *Set) usernames(prefix string, _ []string) []string {
	if !s.apiCompletionEnabled() {
		return nil
	}
	ctx, cancel := completionCtx()
	defer cancel()

	users, err := s.client.Users().List(ctx, api.StartsWith("username", prefix))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names
}

// objectNames completes object name values, anchored on the class named
// earlier on the line (-c or --class). Without a class there is no
// endpoint to query.
func (s *Set) objectNames(prefix string, words []string) []string {
	if !s.apiCompletionEnabled() {
		return nil
	}
	className := optionValueFromWords(words, "c", "class")
	if className == "" {
		return nil
	}

	ctx, cancel := completionCtx()
	defer cancel()

	class, err := s.client.Classes().One(ctx, api.Eq("name", className))
	if err != nil {
		return nil
	}
	objects, err := s.client.Objects(class.ID).List(ctx, api.StartsWith("name", prefix))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(objects))
	for _, o := range objects {
		names = append(names, o.Name)
	}
	return names
}

// optionValueFromWords scans raw typed words for the value following any
// of the given option keys. The line is still being typed, so this is a
// best-effort scan, not a full tokenize.
func optionValueFromWords(words []string, keys ...string) string {
	for i, word := range words {
		for _, key := range keys {
			if (word == "-"+key || word == "--"+key) && i+1 < len(words) {
				return words[i+1]
			}
		}
	}
	return ""
}

// lookupClass resolves a class by name for handlers that take --class.
func (s *Set) lookupClass(ctx context.Context, name string) (*api.Class, error) {
	class, err := s.client.Classes().One(ctx, api.Eq("name", name))
	if err != nil {
		return nil, fmt.Errorf("class %q: %w", name, err)
	}
	return class, nil
}

// lookupNamespace resolves a namespace by name.
func (s *Set) lookupNamespace(ctx context.Context, name string) (*api.Namespace, error) {
	ns, err := s.client.Namespaces().One(ctx, api.Eq("name", name))
	if err != nil {
		return nil, fmt.Errorf("namespace %q: %w", name, err)
	}
	return ns, nil
}
