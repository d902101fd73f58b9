// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the ChatPaat backend REST API.
package api

// =============================================================================
// WIRE TYPES
// =============================================================================

// User is the backend's user record as returned by the auth endpoints.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
}

// AuthResponse is returned by login, register, and the OAuth exchange.
type AuthResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    User   `json:"user"`
}

// ChatSummary is one entry in a recency bucket. Favorite and archived
// state are client-local decorations and deliberately not part of this
// wire type; the backend does not round-trip them.
type ChatSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Created string `json:"created"`
}

// Message is one transcript entry.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// PromptResponse is the reply to a prompt call.
type PromptResponse struct {
	Reply string `json:"reply"`
}

// Profile is the account record behind /api/profile/.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ProfileUpdateResult reports the outcome of a profile update.
// EmailUpdated means the account email changed server-side and the
// current tokens are no longer valid; the caller must force a fresh
// sign-in. Email carries the new address when it changed.
type ProfileUpdateResult struct {
	User         Profile `json:"user"`
	Email        string  `json:"email"`
	EmailUpdated bool    `json:"email_updated"`
}

// =============================================================================
// REQUEST BODIES
// =============================================================================

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type oauthExchangeRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

type passwordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type promptRequest struct {
	ChatID  string `json:"chat_id"`
	Content string `json:"content"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type storeSearchRequest struct {
	SearchQuery string `json:"search_query"`
}

// errorBody is the backend's error envelope. Django-style handlers use
// "detail", the chat handlers use "error"; either may be present.
type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (e errorBody) message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error
}
