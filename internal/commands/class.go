// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"strconv"

	"github.com/jeranaias/hubshell/internal/api"
	"github.com/jeranaias/hubshell/internal/output"
	"github.com/jeranaias/hubshell/internal/shell"
)

// =============================================================================
// CLASS COMMANDS
// =============================================================================

func (s *Set) registerClass(root *shell.Scope) {
	scope := root.MustAddScope("class")

	scope.MustAddCommand(&shell.Command{
		Name:  "new",
		Brief: "Create a class",
		Long:  "Creates a class in the given namespace. The schema may be given inline, or as file:// or http(s):// to load it from disk or the network.",
		Examples: []string{
			"--name host --namespace-id 1",
			"--name host --namespace-id 1 --schema file://host-schema.json --validate true",
		},
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Class name", Required: true},
			{Short: "i", Long: "namespace-id", Help: "Owning namespace id", Kind: shell.KindInt, Required: true},
			{Short: "d", Long: "description", Help: "Description"},
			{Short: "s", Long: "schema", Help: "JSON schema for objects of this class", Kind: shell.KindJSON},
			{Short: "v", Long: "validate", Help: "Validate objects against the schema", Kind: shell.KindBool, Flag: true},
		},
		Run: s.classNew,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "info",
		Brief: "Show one class",
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Class name", Complete: s.classNames},
		},
		Positionals: []shell.Positional{{Name: "name", Help: "Class name"}},
		Run:         s.classInfo,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "list",
		Brief: "List classes",
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Match names containing this text"},
		},
		Run: s.classList,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "delete",
		Brief: "Delete a class",
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Class name", Complete: s.classNames},
		},
		Positionals: []shell.Positional{{Name: "name", Help: "Class name"}},
		Run:         s.classDelete,
	})
}

func (s *Set) classNew(inv *shell.Invocation, out *output.Buffer) error {
	ctx, cancel := opCtx()
	defer cancel()

	name, _ := inv.Option("name")
	namespaceID, _ := intOption(inv, "namespace-id")
	description, _ := inv.Option("description")

	req := api.ClassRequest{
		Name:        name,
		NamespaceID: namespaceID,
		Description: description,
	}
	if schema, ok := inv.Option("schema"); ok && schema != "" {
		req.JSONSchema = json.RawMessage(schema)
	}
	if _, ok := inv.Option("validate"); ok {
		validate := boolOption(inv, "validate")
		req.ValidateSchema = &validate
	}

	class, err := s.client.Classes().Create(ctx, req)
	if err != nil {
		return err
	}
	out.Appendf("Created class %s (id %d)", class.Name, class.ID)
	return nil
}

func (s *Set) classInfo(inv *shell.Invocation, out *output.Buffer) error {
	name, err := requireName(inv)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx()
	defer cancel()

	class, err := s.lookupClass(ctx, name)
	if err != nil {
		return err
	}

	renderClass(out, class)
	return nil
}

func renderClass(out *output.Buffer, class *api.Class) {
	const pad = 14
	out.AppendKeyValue("Id", class.ID, pad)
	out.AppendKeyValue("Name", class.Name, pad)
	out.AppendKeyValue("Description", class.Description, pad)
	out.AppendKeyValue("Namespace", class.NamespaceID, pad)
	out.AppendKeyValue("Validation", class.ValidateSchema, pad)
	if len(class.JSONSchema) > 0 {
		out.AppendKeyValue("Schema", string(class.JSONSchema), pad)
	}
	out.AppendKeyValue("Created", class.CreatedAt.Format("2006-01-02 15:04:05"), pad)
	out.AppendKeyValue("Updated", class.UpdatedAt.Format("2006-01-02 15:04:05"), pad)
}

func (s *Set) classList(inv *shell.Invocation, out *output.Buffer) error {
	ctx, cancel := opCtx()
	defer cancel()

	var filters []api.Filter
	if name, ok := inv.Option("name"); ok && name != "" {
		filters = append(filters, api.Contains("name", name))
	}

	classes, err := s.client.Classes().List(ctx, filters...)
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		out.Append("No classes found.")
		return nil
	}

	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Name,
			strconv.Itoa(c.NamespaceID),
			c.Description,
		})
	}
	out.AppendTable([]string{"Id", "Name", "Namespace", "Description"}, rows)
	return nil
}

func (s *Set) classDelete(inv *shell.Invocation, out *output.Buffer) error {
	name, err := requireName(inv)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx()
	defer cancel()

	class, err := s.lookupClass(ctx, name)
	if err != nil {
		return err
	}
	if err := s.client.Classes().Delete(ctx, class.ID); err != nil {
		return err
	}
	out.Appendf("Deleted class %s (id %d)", class.Name, class.ID)
	return nil
}
