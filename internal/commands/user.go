// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/hubshell/internal/api"
	"github.com/jeranaias/hubshell/internal/output"
	"github.com/jeranaias/hubshell/internal/shell"
)

// =============================================================================
// USER COMMANDS
// =============================================================================

func (s *Set) registerUser(root *shell.Scope) {
	scope := root.MustAddScope("user")

	scope.MustAddCommand(&shell.Command{
		Name:  "new",
		Brief: "Create a user",
		Options: []shell.Option{
			{Short: "u", Long: "username", Help: "Account name", Required: true},
			{Short: "p", Long: "password", Help: "Initial password", Required: true},
			{Short: "e", Long: "email", Help: "Email address"},
		},
		Run: s.userNew,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "info",
		Brief: "Show one user",
		Options: []shell.Option{
			{Short: "u", Long: "username", Help: "Account name", Complete: s.usernames},
		},
		Positionals: []shell.Positional{{Name: "username", Help: "Account name"}},
		Run:         s.userInfo,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "list",
		Brief: "List users",
		Options: []shell.Option{
			{Short: "u", Long: "username", Help: "Match names containing this text"},
		},
		Run: s.userList,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "delete",
		Brief: "Delete a user",
		Options: []shell.Option{
			{Short: "u", Long: "username", Help: "Account name", Complete: s.usernames},
		},
		Positionals: []shell.Positional{{Name: "username", Help: "Account name"}},
		Run:         s.userDelete,
	})
}

// usernameArg mirrors nameArg for the user commands, which key on
// --username instead of --name.
func usernameArg(inv *shell.Invocation) (string, error) {
	if v, ok := inv.Option("username"); ok && v != "" {
		return v, nil
	}
	if v, ok := inv.Positional(0); ok {
		return v, nil
	}
	return "", fmt.Errorf("a username is required (use --username or a positional argument)")
}

func (s *Set) lookupUser(inv *shell.Invocation) (*api.User, error) {
	username, err := usernameArg(inv)
	if err != nil {
		return nil, err
	}

	ctx, cancel := opCtx()
	defer cancel()

	user, err := s.client.Users().One(ctx, api.Eq("username", username))
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", username, err)
	}
	return user, nil
}

func (s *Set) userNew(inv *shell.Invocation, out *output.Buffer) error {
	ctx, cancel := opCtx()
	defer cancel()

	username, _ := inv.Option("username")
	password, _ := inv.Option("password")
	email, _ := inv.Option("email")

	user, err := s.client.Users().Create(ctx, api.UserRequest{
		Username: username,
		Password: password,
		Email:    email,
	})
	if err != nil {
		return err
	}
	out.Appendf("Created user %s (id %d)", user.Username, user.ID)
	return nil
}

func (s *Set) userInfo(inv *shell.Invocation, out *output.Buffer) error {
	user, err := s.lookupUser(inv)
	if err != nil {
		return err
	}

	const pad = 14
	out.AppendKeyValue("Id", user.ID, pad)
	out.AppendKeyValue("Username", user.Username, pad)
	out.AppendKeyValue("Email", user.Email, pad)
	out.AppendKeyValue("Created", user.CreatedAt.Format("2006-01-02 15:04:05"), pad)
	out.AppendKeyValue("Updated", user.UpdatedAt.Format("2006-01-02 15:04:05"), pad)
	return nil
}

func (s *Set) userList(inv *shell.Invocation, out *output.Buffer) error {
	ctx, cancel := opCtx()
	defer cancel()

	var filters []api.Filter
	if username, ok := inv.Option("username"); ok && username != "" {
		filters = append(filters, api.Contains("username", username))
	}

	users, err := s.client.Users().List(ctx, filters...)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		out.Append("No users found.")
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.Itoa(u.ID),
			u.Username,
			u.Email,
		})
	}
	out.AppendTable([]string{"Id", "Username", "Email"}, rows)
	return nil
}

func (s *Set) userDelete(inv *shell.Invocation, out *output.Buffer) error {
	user, err := s.lookupUser(inv)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx()
	defer cancel()

	if err := s.client.Users().Delete(ctx, user.ID); err != nil {
		return err
	}
	out.Appendf("Deleted user %s (id %d)", user.Username, user.ID)
	return nil
}
