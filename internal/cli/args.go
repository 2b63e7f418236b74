// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/hubshell/internal/config"
)

// =============================================================================
// STARTUP ARGUMENTS
// =============================================================================

// Options holds the parsed command-line arguments. Unset values leave the
// file/environment configuration untouched; pointer fields distinguish
// "not given" from an explicit false.
type Options struct {
	ConfigPath string

	Hostname      string
	Port          int
	Protocol      string
	Username      string
	Password      string
	SSLValidation *bool

	CacheTime    int
	CacheSize    int64
	CacheDisable *bool

	CompletionDisableAPI *bool

	// Command runs one line and exits.
	Command string

	// Source runs a file of lines and exits.
	Source string

	ShowVersion bool
	ShowHelp    bool
}

const usageText = `Usage: hubshell [options]

An interactive shell for a hubshell server.

Options:
  --config <path>            Configuration file (default: ~/.hubshell/config.toml)
  --hostname <host>          Server hostname
  --port <port>              Server port
  --protocol <http|https>    Server protocol
  --username <name>          Account to log in as
  --password <password>      Password (prompted when omitted)
  --ssl-validation <bool>    Verify the server certificate
  --cache-time <seconds>     Response cache lifetime
  --cache-size <bytes>       Response cache size cap
  --cache-disable            Disable the response cache
  --completion-api-disable   Disable server-backed tab completion
  --command <line>           Run one command and exit
  --source <path>            Run commands from a file and exit
  --version                  Print the version and exit
  --help                     Print this help and exit

Environment variables of the form HUBSHELL_SERVER_HOSTNAME override the
configuration file; command-line options override both.`

// Usage returns the startup help text.
func Usage() string {
	return usageText
}

// ParseArgs parses command-line arguments (without the program name).
// Both "--key value" and "--key=value" forms are accepted.
func ParseArgs(args []string) (*Options, error) {
	opts := &Options{
		Port:      -1,
		CacheTime: -1,
		CacheSize: -1,
	}

	i := 0
	next := func(flag string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		i++
		return args[i], nil
	}

	for ; i < len(args); i++ {
		arg := args[i]

		// Split --key=value into its parts.
		flag, inline := arg, ""
		hasInline := false
		if eq := strings.Index(arg, "="); eq > 0 && strings.HasPrefix(arg, "--") {
			flag, inline = arg[:eq], arg[eq+1:]
			hasInline = true
		}
		value := func() (string, error) {
			if hasInline {
				return inline, nil
			}
			return next(flag)
		}

		switch flag {
		case "--config":
			v, err := value()
			if err != nil {
				return nil, err
			}
			opts.ConfigPath = v

		case "--hostname":
			v, err := value()
			if err != nil {
				return nil, err
			}
			opts.Hostname = v

		case "--port":
			v, err := value()
			if err != nil {
				return nil, err
			}
			port, err := strconv.Atoi(v)
			if err != nil || port <= 0 || port > 65535 {
				return nil, fmt.Errorf("--port wants a port number, got %q", v)
			}
			opts.Port = port

		case "--protocol":
			v, err := value()
			if err != nil {
				return nil, err
			}
			if v != "http" && v != "https" {
				return nil, fmt.Errorf("--protocol wants http or https, got %q", v)
			}
			opts.Protocol = v

		case "--username":
			v, err := value()
			if err != nil {
				return nil, err
			}
			opts.Username = v

		case "--password":
			v, err := value()
			if err != nil {
				return nil, err
			}
			opts.Password = v

		case "--ssl-validation":
			v, err := value()
			if err != nil {
				return nil, err
			}
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("--ssl-validation wants true or false, got %q", v)
			}
			opts.SSLValidation = &b

		case "--cache-time":
			v, err := value()
			if err != nil {
				return nil, err
			}
			secs, err := strconv.Atoi(v)
			if err != nil || secs < 0 {
				return nil, fmt.Errorf("--cache-time wants a non-negative number of seconds, got %q", v)
			}
			opts.CacheTime = secs

		case "--cache-size":
			v, err := value()
			if err != nil {
				return nil, err
			}
			size, err := strconv.ParseInt(v, 10, 64)
			if err != nil || size < 0 {
				return nil, fmt.Errorf("--cache-size wants a non-negative byte count, got %q", v)
			}
			opts.CacheSize = size

		case "--cache-disable":
			b := true
			opts.CacheDisable = &b

		case "--completion-api-disable":
			b := true
			opts.CompletionDisableAPI = &b

		case "--command":
			v, err := value()
			if err != nil {
				return nil, err
			}
			opts.Command = v

		case "--source":
			v, err := value()
			if err != nil {
				return nil, err
			}
			opts.Source = v

		case "--version", "-v":
			opts.ShowVersion = true

		case "--help", "-h":
			opts.ShowHelp = true

		default:
			return nil, fmt.Errorf("unknown option %q", arg)
		}
	}

	if opts.Command != "" && opts.Source != "" {
		return nil, fmt.Errorf("--command and --source are mutually exclusive")
	}

	return opts, nil
}

// Apply overlays the parsed options onto cfg. Command-line arguments win
// over both the configuration file and the environment.
func (o *Options) Apply(cfg *config.Config) {
	if o.Hostname != "" {
		cfg.Server.Hostname = o.Hostname
	}
	if o.Port > 0 {
		cfg.Server.Port = o.Port
	}
	if o.Protocol != "" {
		cfg.Server.Protocol = o.Protocol
	}
	if o.Username != "" {
		cfg.Server.Username = o.Username
	}
	if o.Password != "" {
		cfg.Server.Password = o.Password
	}
	if o.SSLValidation != nil {
		cfg.Server.SSLValidation = *o.SSLValidation
	}
	if o.CacheTime >= 0 {
		cfg.Cache.TimeSecs = o.CacheTime
	}
	if o.CacheSize >= 0 {
		cfg.Cache.SizeBytes = o.CacheSize
	}
	if o.CacheDisable != nil {
		cfg.Cache.Disable = *o.CacheDisable
	}
	if o.CompletionDisableAPI != nil {
		cfg.Completion.DisableAPI = *o.CompletionDisableAPI
	}
}
