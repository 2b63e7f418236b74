// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "github.com/jeranaias/hubshell/internal/shell"

// =============================================================================
// TREE ASSEMBLY
// =============================================================================

// BuildTree assembles the full command tree. It panics on registration
// collisions, which can only come from a bad edit here.
func (s *Set) BuildTree() *shell.Scope {
	root := shell.NewScope("")

	s.registerClass(root)
	s.registerObject(root)
	s.registerNamespace(root)
	s.registerUser(root)
	s.registerRoot(root)

	return root
}
