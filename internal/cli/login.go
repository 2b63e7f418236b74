// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/jeranaias/hubshell/internal/api"
	"github.com/jeranaias/hubshell/internal/config"
	"github.com/jeranaias/hubshell/internal/token"
)

// =============================================================================
// LOGIN FLOW
// =============================================================================

// Login authenticates the client, preferring a previously saved token
// over a password. The order is:
//
//  1. A saved token for this server and account, validated server-side.
//  2. The configured password (config file, environment or --password).
//  3. An interactive password prompt, when stdin is a terminal.
//
// A rejected saved token is forgotten and the flow falls through to the
// password path. On success the fresh token is saved for next time.
func Login(ctx context.Context, client *api.Client, store *token.Store, cfg *config.Config, log *zap.Logger) error {
	hostname := cfg.Server.Hostname
	username := cfg.Server.Username
	if username == "" {
		return fmt.Errorf("no username configured (set server.username or pass --username)")
	}

	if saved := store.Lookup(hostname, username); saved != "" {
		if err := client.LoginWithToken(ctx, saved); err == nil {
			log.Debug("logged in with saved token",
				zap.String("hostname", hostname),
				zap.String("username", username),
			)
			return nil
		}
		log.Debug("saved token rejected",
			zap.String("hostname", hostname),
			zap.String("username", username),
		)
		if err := store.Forget(hostname, username); err != nil {
			log.Warn("dropping rejected token failed", zap.Error(err))
		}
	}

	password := cfg.Server.Password
	if password == "" {
		var err error
		password, err = promptPassword(username, hostname)
		if err != nil {
			return err
		}
	}

	if err := client.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login as %s@%s failed: %w", username, hostname, err)
	}

	if err := store.Save(hostname, username, client.Token()); err != nil {
		log.Warn("saving token failed", zap.Error(err))
	}
	return nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(username, hostname string) (string, error) {
	if !IsTTY() {
		return "", fmt.Errorf("no password configured and stdin is not a terminal")
	}

	fmt.Fprintf(os.Stderr, "Password for %s@%s: ", username, hostname)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}
