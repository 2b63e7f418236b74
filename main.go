// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// hubshell is an interactive shell for a hubuum-style resource
// management server: classes, objects, namespaces and users, with
// tab completion fed by the server itself.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/hubshell/internal/api"
	"github.com/jeranaias/hubshell/internal/cli"
	"github.com/jeranaias/hubshell/internal/commands"
	"github.com/jeranaias/hubshell/internal/config"
	"github.com/jeranaias/hubshell/internal/logging"
	"github.com/jeranaias/hubshell/internal/shell"
	"github.com/jeranaias/hubshell/internal/token"
)

// version is stamped by the release build.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:")+" "+err.Error())
		fmt.Fprintln(os.Stderr, cli.DimStyle.Render("Run 'hubshell --help' for usage."))
		return 2
	}
	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return 0
	}
	if opts.ShowVersion {
		fmt.Println("hubshell " + version)
		return 0
	}

	if err := config.EnsureConfigDir(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:")+" "+err.Error())
		return 1
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:")+" "+err.Error())
		return 1
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:")+" "+err.Error())
		return 1
	}
	config.SetGlobal(cfg)

	log, err := logging.Open(config.LogFile())
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.WarningStyle.Render("Warning:")+" logging disabled: "+err.Error())
	}
	defer log.Sync()

	client := api.New(api.ClientConfig{
		BaseURL:       cfg.BaseURL(),
		SkipTLSVerify: !cfg.Server.SSLValidation,
	}, log)

	var cache *api.Cache
	if !cfg.Cache.Disable {
		cache, err = api.OpenCache(
			config.CacheFile(),
			time.Duration(cfg.Cache.TimeSecs)*time.Second,
			cfg.Cache.SizeBytes,
		)
		if err != nil {
			log.Warn("response cache disabled", zap.Error(err))
		} else {
			client.SetCache(cache)
			defer cache.Close()
		}
	}

	store, err := token.Open(config.TokenFile())
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.WarningStyle.Render("Warning:")+" "+err.Error())
		store, _ = token.Open(os.DevNull)
	}

	loginCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = cli.Login(loginCtx, client, store, cfg, log)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:")+" "+err.Error())
		return 1
	}

	set := commands.New(client, cache)
	root := set.BuildTree()
	resolver := shell.NewResolver(client.HTTPClient())
	dispatcher := shell.NewDispatcher(root, resolver, log)
	completer := shell.NewCompleter(root, log)

	repl := cli.NewREPL(dispatcher, completer, log,
		cli.Prompt(cfg), config.HistoryFile(), os.Stdout)

	// One-shot and script modes skip the line editor entirely.
	if opts.Command != "" {
		if err := repl.RunOnce(opts.Command); err != nil {
			return 1
		}
		return 0
	}
	if opts.Source != "" {
		f, err := os.Open(opts.Source)
		if err != nil {
			fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:")+" "+err.Error())
			return 1
		}
		defer f.Close()
		if err := repl.RunScript(f); err != nil {
			fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:")+" "+err.Error())
			return 1
		}
		return 0
	}

	// Interactive session: watch the config file so edits apply without a
	// restart.
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigFile()
	}
	watcher, err := config.NewWatcher(configPath, log)
	if err != nil {
		log.Warn("config watcher disabled", zap.Error(err))
	} else {
		defer watcher.Close()
	}

	if err := repl.Run(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:")+" "+err.Error())
		return 1
	}
	return 0
}
