// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package token persists issued session tokens between runs so the
// shell can skip the password prompt when a saved token is still valid.
package token

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// TOKEN STORE
// =============================================================================

// Entry is one saved token, keyed by server and account.
type Entry struct {
	Hostname string `toml:"hostname"`
	Username string `toml:"username"`
	Token    string `toml:"token"`
}

// Store reads and writes the token file. The file is TOML with a single
// [[tokens]] array and is created mode 0600; it holds credentials.
type Store struct {
	path    string
	entries []Entry
}

type tokenFile struct {
	Tokens []Entry `toml:"tokens"`
}

// Open loads the store at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	var file tokenFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing token file: %w", err)
	}
	s.entries = file.Tokens
	return s, nil
}

// Lookup returns the saved token for hostname and username, or "" when
// none is stored.
func (s *Store) Lookup(hostname, username string) string {
	for _, e := range s.entries {
		if e.Hostname == hostname && e.Username == username {
			return e.Token
		}
	}
	return ""
}

// Save stores tok for hostname and username, replacing any previous
// entry, and writes the file.
func (s *Store) Save(hostname, username, tok string) error {
	replaced := false
	for i := range s.entries {
		if s.entries[i].Hostname == hostname && s.entries[i].Username == username {
			s.entries[i].Token = tok
			replaced = true
			break
		}
	}
	if !replaced {
		s.entries = append(s.entries, Entry{
			Hostname: hostname,
			Username: username,
			Token:    tok,
		})
	}
	return s.write()
}

// Forget removes the entry for hostname and username, if present, and
// writes the file. Called when the server rejects a saved token.
func (s *Store) Forget(hostname, username string) error {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Hostname == hostname && e.Username == username {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == len(s.entries) {
		return nil
	}
	s.entries = kept
	return s.write()
}

func (s *Store) write() error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tokenFile{Tokens: s.entries}); err != nil {
		return fmt.Errorf("encoding token file: %w", err)
	}
	return nil
}
