// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides durable per-key local state for the chatpaat TUI.
//
// The store is the terminal analog of browser localStorage: each key is an
// independent record backed by its own file under ~/.chatpaat/state/, and
// every write is a synchronous whole-record replace. Session tokens are
// additionally encrypted at rest via the package keystore.
package store
