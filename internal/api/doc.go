// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the client for the remote resource-management API. It
// exposes the handful of capabilities the shell consumes: token and
// password login, and list/fetch/create/delete for classes, namespaces,
// objects and users, with server-side filtering used heavily by tab
// completion.
//
// All calls are blocking; the shell is single-threaded and one command
// runs at a time. A client-side rate limiter keeps completion bursts
// polite, and an optional sqlite-backed cache answers repeated list
// queries within the configured time window.
package api
