// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"time"
)

// =============================================================================
// RESOURCE TYPES
// =============================================================================

// Class is a schema-bearing grouping of objects.
type Class struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	NamespaceID    int             `json:"namespace_id"`
	JSONSchema     json.RawMessage `json:"json_schema,omitempty"`
	ValidateSchema bool            `json:"validate_schema"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ClassRequest is the payload for creating a class.
type ClassRequest struct {
	Name           string          `json:"name"`
	NamespaceID    int             `json:"namespace_id"`
	Description    string          `json:"description"`
	JSONSchema     json.RawMessage `json:"json_schema,omitempty"`
	ValidateSchema *bool           `json:"validate_schema,omitempty"`
}

// Namespace is an access-control and grouping boundary.
type Namespace struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NamespaceRequest is the payload for creating a namespace.
type NamespaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Object is an instance of a class.
type Object struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ClassID     int             `json:"class_id"`
	NamespaceID int             `json:"namespace_id"`
	Data        json.RawMessage `json:"data,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ObjectRequest is the payload for creating an object.
type ObjectRequest struct {
	Name        string          `json:"name"`
	ClassID     int             `json:"class_id"`
	NamespaceID int             `json:"namespace_id"`
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// User is an account on the remote server.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRequest is the payload for creating a user.
type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}
