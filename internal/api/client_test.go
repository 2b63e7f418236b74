// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body.Username)
		assert.Equal(t, "secret", body.Password)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))
	defer srv.Close()

	client := New(ClientConfig{BaseURL: srv.URL}, nil)
	require.False(t, client.Authenticated())

	require.NoError(t, client.Login(context.Background(), "alice", "secret"))
	assert.True(t, client.Authenticated())
	assert.Equal(t, "tok-123", client.Token())
}

func TestLoginWithTokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/validate", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer srv.Close()

	client := New(ClientConfig{BaseURL: srv.URL}, nil)
	err := client.LoginWithToken(context.Background(), "stale")
	require.Error(t, err)
	assert.False(t, client.Authenticated(), "rejected token must be cleared")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestBearerTokenAndFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/classes", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		query := r.URL.Query()
		assert.Equal(t, "host", query.Get("name__startswith"))
		assert.Equal(t, "old", query.Get("name__not_contains"))

		json.NewEncoder(w).Encode([]Class{{ID: 1, Name: "host"}})
	}))
	defer srv.Close()

	client := New(ClientConfig{BaseURL: srv.URL}, nil)
	client.token = "tok"

	notOld := Contains("name", "old")
	notOld.Negate = true
	classes, err := client.Classes().List(context.Background(),
		StartsWith("name", "host"), notOld)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "host", classes[0].Name)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("anonymous request reached the server: %s", r.URL.Path)
	}))
	defer srv.Close()

	client := New(ClientConfig{BaseURL: srv.URL}, nil)
	_, err := client.Classes().List(context.Background())
	assert.True(t, errors.Is(err, ErrNotAuthenticated), "got %v", err)

	_, err = client.Namespaces().Create(context.Background(), NamespaceRequest{Name: "x"})
	assert.True(t, errors.Is(err, ErrNotAuthenticated), "got %v", err)
}

func TestServerErrorBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "class already exists"})
	}))
	defer srv.Close()

	client := New(ClientConfig{BaseURL: srv.URL}, nil)
	client.token = "tok"
	_, err := client.Classes().Create(context.Background(), ClassRequest{Name: "host"})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "class already exists", apiErr.Message)
	assert.NotEmpty(t, apiErr.RequestID)
	assert.Contains(t, apiErr.Error(), "409")
}

func TestOneSemantics(t *testing.T) {
	var payload []Namespace
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := New(ClientConfig{BaseURL: srv.URL}, nil)
	client.token = "tok"
	ctx := context.Background()

	payload = nil
	_, err := client.Namespaces().One(ctx, Eq("name", "missing"))
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	payload = []Namespace{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	_, err = client.Namespaces().One(ctx, Eq("name", "ambiguous"))
	assert.True(t, errors.Is(err, ErrMultipleMatches), "got %v", err)

	payload = []Namespace{{ID: 7, Name: "production"}}
	ns, err := client.Namespaces().One(ctx, Eq("name", "production"))
	require.NoError(t, err)
	assert.Equal(t, 7, ns.ID)
}

func TestGetListUsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			json.NewEncoder(w).Encode(Class{ID: 2, Name: "other"})
			return
		}
		hits++
		json.NewEncoder(w).Encode([]Class{{ID: 1, Name: "host"}})
	}))
	defer srv.Close()

	cache := openTestCache(t)
	client := New(ClientConfig{BaseURL: srv.URL}, nil)
	client.token = "tok"
	client.SetCache(cache)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		classes, err := client.Classes().List(ctx)
		require.NoError(t, err)
		require.Len(t, classes, 1)
	}
	assert.Equal(t, 1, hits, "repeat lists must come from the cache")

	// A mutation invalidates the endpoint and the next list goes through.
	_, err := client.Classes().Create(ctx, ClassRequest{Name: "other"})
	require.NoError(t, err)
	_, err = client.Classes().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}
