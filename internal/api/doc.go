// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the ChatPaat backend REST API.
//
// The backend owns authentication, persistence, and inference; this client
// is a thin JSON-over-HTTP layer. Errors are classified into a small
// taxonomy (auth, network, validation, invalid response) that the UI maps
// to inline form errors, toasts, or forced sign-out. There is no retry
// logic anywhere: every failure is terminal for that attempt.
package api
