// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli is the outer surface of hubshell: startup argument
// parsing, the login flow, terminal detection and the interactive
// read-eval-print loop plus its one-shot and script variants.
package cli
