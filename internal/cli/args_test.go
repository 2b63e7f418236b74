// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/jeranaias/hubshell/internal/config"
)

func TestParseArgs(t *testing.T) {
	opts, err := ParseArgs([]string{
		"--hostname", "hub.example.com",
		"--port", "9090",
		"--protocol=http",
		"--username", "alice",
		"--ssl-validation", "false",
		"--cache-disable",
		"--command", "class list",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	if opts.Hostname != "hub.example.com" {
		t.Errorf("hostname = %q", opts.Hostname)
	}
	if opts.Port != 9090 {
		t.Errorf("port = %d", opts.Port)
	}
	if opts.Protocol != "http" {
		t.Errorf("protocol = %q (inline form)", opts.Protocol)
	}
	if opts.SSLValidation == nil || *opts.SSLValidation {
		t.Errorf("ssl-validation = %v, want false", opts.SSLValidation)
	}
	if opts.CacheDisable == nil || !*opts.CacheDisable {
		t.Errorf("cache-disable = %v, want true", opts.CacheDisable)
	}
	if opts.Command != "class list" {
		t.Errorf("command = %q", opts.Command)
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "missing value", args: []string{"--hostname"}},
		{name: "bad port", args: []string{"--port", "nope"}},
		{name: "port out of range", args: []string{"--port", "99999"}},
		{name: "bad protocol", args: []string{"--protocol", "gopher"}},
		{name: "bad bool", args: []string{"--ssl-validation", "maybe"}},
		{name: "command and source together", args: []string{"--command", "x", "--source", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseArgs(tt.args); err == nil {
				t.Errorf("ParseArgs(%v) accepted", tt.args)
			}
		})
	}
}

func TestParseArgsDefaultsLeaveConfigAlone(t *testing.T) {
	opts, err := ParseArgs(nil)
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	before := *cfg
	opts.Apply(cfg)
	if *cfg != before {
		t.Errorf("Apply with no flags changed the config: %+v", cfg)
	}
}

func TestApplyOverrides(t *testing.T) {
	opts, err := ParseArgs([]string{
		"--hostname", "flag-host",
		"--port", "1234",
		"--completion-api-disable",
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Server.Hostname = "file-host"
	opts.Apply(cfg)

	if cfg.Server.Hostname != "flag-host" {
		t.Errorf("hostname = %q, want flag to win", cfg.Server.Hostname)
	}
	if cfg.Server.Port != 1234 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if !cfg.Completion.DisableAPI {
		t.Error("completion-api-disable not applied")
	}
	// Untouched fields keep their values.
	if cfg.Server.Protocol != "https" {
		t.Errorf("protocol = %q, want untouched default", cfg.Server.Protocol)
	}
}
