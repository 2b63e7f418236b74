// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands defines the hubshell command set: the class, object,
// namespace and user scopes plus the root-level status and exit
// commands. BuildTree assembles them into the scope tree the dispatcher
// and the completer share.
package commands
