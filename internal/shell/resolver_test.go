// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveIdentity(t *testing.T) {
	r := NewResolver(nil)
	for _, value := range []string{"plain", "", "ftp://elsewhere", "file:/missing-slash"} {
		got, err := r.Resolve(value)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", value, err)
		}
		if got != value {
			t.Errorf("Resolve(%q) = %q, want unchanged", value, got)
		}
	}
}

func TestResolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := NewResolver(nil).Resolve("file://" + path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "hello" {
		t.Errorf("Resolve = %q, want %q", got, "hello")
	}
}

func TestResolveFileMissing(t *testing.T) {
	_, err := NewResolver(nil).Resolve("file:///no/such/file")
	if KindOf(err) != ErrKindResolveIO {
		t.Fatalf("error kind = %v, want resolve_io", KindOf(err))
	}
}

func TestResolveURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote value\r\n"))
	}))
	defer srv.Close()

	got, err := NewResolver(srv.Client()).Resolve(srv.URL)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "remote value" {
		t.Errorf("Resolve = %q, want %q", got, "remote value")
	}
}

func TestResolveURLErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewResolver(srv.Client()).Resolve(srv.URL)
	if KindOf(err) != ErrKindResolveNetwork {
		t.Fatalf("error kind = %v, want resolve_network", KindOf(err))
	}
}

func TestResolveURLUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewResolver(nil).Resolve(url)
	if KindOf(err) != ErrKindResolveNetwork {
		t.Fatalf("error kind = %v, want resolve_network", KindOf(err))
	}
}
