// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging sets up the file-backed diagnostics logger. The shell
// never logs to the terminal; the terminal belongs to command output.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envLevel is the environment variable controlling the log level.
const envLevel = "HUBSHELL_LOG"

// Open creates a JSON logger writing to path. The level comes from
// HUBSHELL_LOG (debug, info, warn, error), defaulting to info. Callers
// that cannot open the log file get a no-op logger and the error, so a
// read-only home directory never blocks the shell.
func Open(path string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if v := os.Getenv(envLevel); v != "" {
		if err := level.Set(v); err != nil {
			level = zapcore.InfoLevel
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}
	return log, nil
}
