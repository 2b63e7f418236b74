// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
)

// =============================================================================
// CLASSES
// =============================================================================

// ClassService accesses the class endpoints.
type ClassService struct {
	c *Client
}

// Classes returns the class service.
func (c *Client) Classes() *ClassService {
	return &ClassService{c: c}
}

// List returns the classes matching all filters.
func (s *ClassService) List(ctx context.Context, filters ...Filter) ([]Class, error) {
	var out []Class
	if err := s.c.getList(ctx, "/classes", filters, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// One returns the single class matching all filters, ErrNotFound when
// none matches and ErrMultipleMatches when several do.
func (s *ClassService) One(ctx context.Context, filters ...Filter) (*Class, error) {
	items, err := s.List(ctx, filters...)
	if err != nil {
		return nil, err
	}
	return single(items)
}

// Create creates a class.
func (s *ClassService) Create(ctx context.Context, req ClassRequest) (*Class, error) {
	var out Class
	if err := s.c.do(ctx, http.MethodPost, "/classes", nil, req, &out); err != nil {
		return nil, err
	}
	s.c.invalidate("/classes")
	return &out, nil
}

// Delete removes a class by id.
func (s *ClassService) Delete(ctx context.Context, id int) error {
	if err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/classes/%d", id), nil, nil, nil); err != nil {
		return err
	}
	s.c.invalidate("/classes")
	return nil
}

// =============================================================================
// NAMESPACES
// =============================================================================

// NamespaceService accesses the namespace endpoints.
type NamespaceService struct {
	c *Client
}

// Namespaces returns the namespace service.
func (c *Client) Namespaces() *NamespaceService {
	return &NamespaceService{c: c}
}

// List returns the namespaces matching all filters.
func (s *NamespaceService) List(ctx context.Context, filters ...Filter) ([]Namespace, error) {
	var out []Namespace
	if err := s.c.getList(ctx, "/namespaces", filters, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// One returns the single namespace matching all filters.
func (s *NamespaceService) One(ctx context.Context, filters ...Filter) (*Namespace, error) {
	items, err := s.List(ctx, filters...)
	if err != nil {
		return nil, err
	}
	return single(items)
}

// Create creates a namespace.
func (s *NamespaceService) Create(ctx context.Context, req NamespaceRequest) (*Namespace, error) {
	var out Namespace
	if err := s.c.do(ctx, http.MethodPost, "/namespaces", nil, req, &out); err != nil {
		return nil, err
	}
	s.c.invalidate("/namespaces")
	return &out, nil
}

// Delete removes a namespace by id.
func (s *NamespaceService) Delete(ctx context.Context, id int) error {
	if err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/namespaces/%d", id), nil, nil, nil); err != nil {
		return err
	}
	s.c.invalidate("/namespaces")
	return nil
}

// =============================================================================
// OBJECTS
// =============================================================================

// ObjectService accesses the object endpoints of one class.
type ObjectService struct {
	c       *Client
	classID int
}

// Objects returns the object service scoped to a class.
func (c *Client) Objects(classID int) *ObjectService {
	return &ObjectService{c: c, classID: classID}
}

func (s *ObjectService) path() string {
	return fmt.Sprintf("/classes/%d/objects", s.classID)
}

// List returns the class's objects matching all filters.
func (s *ObjectService) List(ctx context.Context, filters ...Filter) ([]Object, error) {
	var out []Object
	if err := s.c.getList(ctx, s.path(), filters, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// One returns the single object matching all filters.
func (s *ObjectService) One(ctx context.Context, filters ...Filter) (*Object, error) {
	items, err := s.List(ctx, filters...)
	if err != nil {
		return nil, err
	}
	return single(items)
}

// Create creates an object in the class.
func (s *ObjectService) Create(ctx context.Context, req ObjectRequest) (*Object, error) {
	var out Object
	if err := s.c.do(ctx, http.MethodPost, s.path(), nil, req, &out); err != nil {
		return nil, err
	}
	s.c.invalidate(s.path())
	return &out, nil
}

// Delete removes an object by id.
func (s *ObjectService) Delete(ctx context.Context, id int) error {
	if err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", s.path(), id), nil, nil, nil); err != nil {
		return err
	}
	s.c.invalidate(s.path())
	return nil
}

// =============================================================================
// USERS
// =============================================================================

// UserService accesses the user endpoints.
type UserService struct {
	c *Client
}

// Users returns the user service.
func (c *Client) Users() *UserService {
	return &UserService{c: c}
}

// List returns the users matching all filters.
func (s *UserService) List(ctx context.Context, filters ...Filter) ([]User, error) {
	var out []User
	if err := s.c.getList(ctx, "/users", filters, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// One returns the single user matching all filters.
func (s *UserService) One(ctx context.Context, filters ...Filter) (*User, error) {
	items, err := s.List(ctx, filters...)
	if err != nil {
		return nil, err
	}
	return single(items)
}

// Create creates a user.
func (s *UserService) Create(ctx context.Context, req UserRequest) (*User, error) {
	var out User
	if err := s.c.do(ctx, http.MethodPost, "/users", nil, req, &out); err != nil {
		return nil, err
	}
	s.c.invalidate("/users")
	return &out, nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil); err != nil {
		return err
	}
	s.c.invalidate("/users")
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// single enforces the exactly-one-match contract shared by the One
// lookups.
func single[T any](items []T) (*T, error) {
	switch len(items) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &items[0], nil
	default:
		return nil, ErrMultipleMatches
	}
}

// invalidate drops cached list responses under prefix after a mutation.
func (c *Client) invalidate(prefix string) {
	if c.cache != nil {
		c.cache.InvalidatePrefix(prefix)
	}
}
