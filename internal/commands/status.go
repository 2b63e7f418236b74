// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/jeranaias/hubshell/internal/config"
	"github.com/jeranaias/hubshell/internal/output"
	"github.com/jeranaias/hubshell/internal/shell"
)

// =============================================================================
// STATUS AND SESSION COMMANDS
// =============================================================================

func (s *Set) registerRoot(root *shell.Scope) {
	root.MustAddCommand(&shell.Command{
		Name:  "status",
		Brief: "Show connection and session state",
		Run:   s.status,
	})

	root.MustAddCommand(&shell.Command{
		Name:  "quit",
		Brief: "Leave the shell",
		Run:   exitShell,
	})

	root.MustAddCommand(&shell.Command{
		Name:  "exit",
		Brief: "Leave the shell",
		Run:   exitShell,
	})
}

func (s *Set) status(_ *shell.Invocation, out *output.Buffer) error {
	cfg := config.Global()
	const pad = 14

	out.AppendKeyValue("Server", cfg.BaseURL(), pad)
	out.AppendKeyValue("User", cfg.Server.Username, pad)

	auth := "no"
	if s.client.Authenticated() {
		auth = "yes"
	}
	out.AppendKeyValue("Authenticated", auth, pad)

	switch {
	case s.cache == nil:
		out.AppendKeyValue("Cache", "disabled", pad)
	default:
		out.AppendKeyValue("Cache", s.cache.Count(), pad)
	}

	completion := "on"
	if cfg.Completion.DisableAPI {
		completion = "off"
	}
	out.AppendKeyValue("Completion", completion, pad)
	return nil
}

func exitShell(_ *shell.Invocation, _ *output.Buffer) error {
	return shell.ErrExit
}
