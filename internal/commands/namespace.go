// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strconv"

	"github.com/jeranaias/hubshell/internal/api"
	"github.com/jeranaias/hubshell/internal/output"
	"github.com/jeranaias/hubshell/internal/shell"
)

// =============================================================================
// NAMESPACE COMMANDS
// =============================================================================

func (s *Set) registerNamespace(root *shell.Scope) {
	scope := root.MustAddScope("namespace")

	scope.MustAddCommand(&shell.Command{
		Name:  "new",
		Brief: "Create a namespace",
		Examples: []string{
			"--name production --description 'Production hosts'",
		},
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Namespace name", Required: true},
			{Short: "d", Long: "description", Help: "Description"},
		},
		Run: s.namespaceNew,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "info",
		Brief: "Show one namespace",
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Namespace name", Complete: s.namespaceNames},
		},
		Positionals: []shell.Positional{{Name: "name", Help: "Namespace name"}},
		Run:         s.namespaceInfo,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "list",
		Brief: "List namespaces",
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Match names containing this text"},
		},
		Run: s.namespaceList,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "delete",
		Brief: "Delete a namespace",
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Namespace name", Complete: s.namespaceNames},
		},
		Positionals: []shell.Positional{{Name: "name", Help: "Namespace name"}},
		Run:         s.namespaceDelete,
	})
}

func (s *Set) namespaceNew(inv *shell.Invocation, out *output.Buffer) error {
	ctx, cancel := opCtx()
	defer cancel()

	name, _ := inv.Option("name")
	description, _ := inv.Option("description")

	ns, err := s.client.Namespaces().Create(ctx, api.NamespaceRequest{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return err
	}
	out.Appendf("Created namespace %s (id %d)", ns.Name, ns.ID)
	return nil
}

func (s *Set) namespaceInfo(inv *shell.Invocation, out *output.Buffer) error {
	name, err := requireName(inv)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx()
	defer cancel()

	ns, err := s.lookupNamespace(ctx, name)
	if err != nil {
		return err
	}

	const pad = 14
	out.AppendKeyValue("Id", ns.ID, pad)
	out.AppendKeyValue("Name", ns.Name, pad)
	out.AppendKeyValue("Description", ns.Description, pad)
	out.AppendKeyValue("Created", ns.CreatedAt.Format("2006-01-02 15:04:05"), pad)
	out.AppendKeyValue("Updated", ns.UpdatedAt.Format("2006-01-02 15:04:05"), pad)
	return nil
}

func (s *Set) namespaceList(inv *shell.Invocation, out *output.Buffer) error {
	ctx, cancel := opCtx()
	defer cancel()

	var filters []api.Filter
	if name, ok := inv.Option("name"); ok && name != "" {
		filters = append(filters, api.Contains("name", name))
	}

	namespaces, err := s.client.Namespaces().List(ctx, filters...)
	if err != nil {
		return err
	}
	if len(namespaces) == 0 {
		out.Append("No namespaces found.")
		return nil
	}

	rows := make([][]string, 0, len(namespaces))
	for _, ns := range namespaces {
		rows = append(rows, []string{
			strconv.Itoa(ns.ID),
			ns.Name,
			ns.Description,
		})
	}
	out.AppendTable([]string{"Id", "Name", "Description"}, rows)
	return nil
}

func (s *Set) namespaceDelete(inv *shell.Invocation, out *output.Buffer) error {
	name, err := requireName(inv)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx()
	defer cancel()

	ns, err := s.lookupNamespace(ctx, name)
	if err != nil {
		return err
	}
	if err := s.client.Namespaces().Delete(ctx, ns.ID); err != nil {
		return err
	}
	out.Appendf("Deleted namespace %s (id %d)", ns.Name, ns.ID)
	return nil
}
