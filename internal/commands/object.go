// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jeranaias/hubshell/internal/api"
	"github.com/jeranaias/hubshell/internal/output"
	"github.com/jeranaias/hubshell/internal/shell"
)

// =============================================================================
// OBJECT COMMANDS
// =============================================================================

// Objects always belong to a class, so every object command takes
// -c/--class and resolves it by name first.

func (s *Set) registerObject(root *shell.Scope) {
	scope := root.MustAddScope("object")

	scope.MustAddCommand(&shell.Command{
		Name:  "new",
		Brief: "Create an object",
		Long:  "Creates an object of the given class in the given namespace. The data payload may be inline JSON, or file:// or http(s):// to load it from disk or the network.",
		Examples: []string{
			"--name web01 --class host --namespace production",
			"--name web01 --class host --namespace production --data file://web01.json",
		},
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Object name", Required: true},
			{Short: "c", Long: "class", Help: "Class name", Required: true, Complete: s.classNames},
			{Short: "N", Long: "namespace", Help: "Namespace name", Required: true, Complete: s.namespaceNames},
			{Short: "d", Long: "description", Help: "Description"},
			{Short: "D", Long: "data", Help: "JSON data payload", Kind: shell.KindJSON},
		},
		Run: s.objectNew,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "info",
		Brief: "Show one object",
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Object name", Complete: s.objectNames},
			{Short: "c", Long: "class", Help: "Class name", Required: true, Complete: s.classNames},
		},
		Positionals: []shell.Positional{{Name: "name", Help: "Object name"}},
		Run:         s.objectInfo,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "list",
		Brief: "List a class's objects",
		Options: []shell.Option{
			{Short: "c", Long: "class", Help: "Class name", Required: true, Complete: s.classNames},
			{Short: "n", Long: "name", Help: "Match names containing this text"},
		},
		Run: s.objectList,
	})

	scope.MustAddCommand(&shell.Command{
		Name:  "delete",
		Brief: "Delete an object",
		Options: []shell.Option{
			{Short: "n", Long: "name", Help: "Object name", Complete: s.objectNames},
			{Short: "c", Long: "class", Help: "Class name", Required: true, Complete: s.classNames},
		},
		Positionals: []shell.Positional{{Name: "name", Help: "Object name"}},
		Run:         s.objectDelete,
	})
}

func (s *Set) objectNew(inv *shell.Invocation, out *output.Buffer) error {
	ctx, cancel := opCtx()
	defer cancel()

	className, _ := inv.Option("class")
	class, err := s.lookupClass(ctx, className)
	if err != nil {
		return err
	}
	namespaceName, _ := inv.Option("namespace")
	ns, err := s.lookupNamespace(ctx, namespaceName)
	if err != nil {
		return err
	}

	name, _ := inv.Option("name")
	description, _ := inv.Option("description")
	req := api.ObjectRequest{
		Name:        name,
		ClassID:     class.ID,
		NamespaceID: ns.ID,
		Description: description,
	}
	if data, ok := inv.Option("data"); ok && data != "" {
		req.Data = json.RawMessage(data)
	}

	object, err := s.client.Objects(class.ID).Create(ctx, req)
	if err != nil {
		return err
	}
	out.Appendf("Created object %s (id %d) in class %s", object.Name, object.ID, class.Name)
	return nil
}

// findObject resolves the class option and then the named object in it.
func (s *Set) findObject(inv *shell.Invocation) (*api.Class, *api.Object, error) {
	name, err := requireName(inv)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := opCtx()
	defer cancel()

	className, _ := inv.Option("class")
	class, err := s.lookupClass(ctx, className)
	if err != nil {
		return nil, nil, err
	}
	object, err := s.client.Objects(class.ID).One(ctx, api.Eq("name", name))
	if err != nil {
		return nil, nil, fmt.Errorf("object %q: %w", name, err)
	}
	return class, object, nil
}

func (s *Set) objectInfo(inv *shell.Invocation, out *output.Buffer) error {
	class, object, err := s.findObject(inv)
	if err != nil {
		return err
	}

	const pad = 14
	out.AppendKeyValue("Id", object.ID, pad)
	out.AppendKeyValue("Name", object.Name, pad)
	out.AppendKeyValue("Description", object.Description, pad)
	out.AppendKeyValue("Class", class.Name, pad)
	out.AppendKeyValue("Namespace", object.NamespaceID, pad)
	if len(object.Data) > 0 {
		out.AppendKeyValue("Data", string(object.Data), pad)
	}
	out.AppendKeyValue("Created", object.CreatedAt.Format("2006-01-02 15:04:05"), pad)
	out.AppendKeyValue("Updated", object.UpdatedAt.Format("2006-01-02 15:04:05"), pad)
	return nil
}

func (s *Set) objectList(inv *shell.Invocation, out *output.Buffer) error {
	ctx, cancel := opCtx()
	defer cancel()

	className, _ := inv.Option("class")
	class, err := s.lookupClass(ctx, className)
	if err != nil {
		return err
	}

	var filters []api.Filter
	if name, ok := inv.Option("name"); ok && name != "" {
		filters = append(filters, api.Contains("name", name))
	}

	objects, err := s.client.Objects(class.ID).List(ctx, filters...)
	if err != nil {
		return err
	}
	if len(objects) == 0 {
		out.Appendf("No objects found in class %s.", class.Name)
		return nil
	}

	rows := make([][]string, 0, len(objects))
	for _, o := range objects {
		rows = append(rows, []string{
			strconv.Itoa(o.ID),
			o.Name,
			strconv.Itoa(o.NamespaceID),
			o.Description,
		})
	}
	out.AppendTable([]string{"Id", "Name", "Namespace", "Description"}, rows)
	return nil
}

func (s *Set) objectDelete(inv *shell.Invocation, out *output.Buffer) error {
	class, object, err := s.findObject(inv)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx()
	defer cancel()

	if err := s.client.Objects(class.ID).Delete(ctx, object.ID); err != nil {
		return err
	}
	out.Appendf("Deleted object %s (id %d) from class %s", object.Name, object.ID, class.Name)
	return nil
}
