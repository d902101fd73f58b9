// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the ChatPaat backend REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://127.0.0.1:7004)
	// Note: Uses explicit IPv4 address instead of localhost to avoid IPv6
	// resolution issues on Windows
	BaseURL string

	// Timeout for requests (default: 30s). The prompt endpoint waits on
	// model inference server-side, so this is deliberately generous.
	Timeout time.Duration

	// SearchLogRate limits best-effort search logging calls per second
	// (default: 1/s with a burst of 5). Search logging is fire-and-forget
	// and must never compete with interactive requests.
	SearchLogRate rate.Limit

	// SearchLogBurst is the limiter burst size (default: 5).
	SearchLogBurst int
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:        "http://127.0.0.1:7004",
		Timeout:        30 * time.Second,
		SearchLogRate:  rate.Limit(1),
		SearchLogBurst: 5,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the ChatPaat backend. It is safe for concurrent use;
// Bubble Tea commands call it from short-lived goroutines.
//
// No method retries. Every failure is terminal for that attempt and
// requires a new user action.
type Client struct {
	config        *ClientConfig
	httpClient    *http.Client
	searchLimiter *rate.Limiter
}

// NewClient creates a client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:7004"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.SearchLogRate == 0 {
		config.SearchLogRate = rate.Limit(1)
	}
	if config.SearchLogBurst == 0 {
		config.SearchLogBurst = 5
	}

	return &Client{
		config:        config,
		httpClient:    &http.Client{Timeout: config.Timeout},
		searchLimiter: rate.NewLimiter(config.SearchLogRate, config.SearchLogBurst),
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// AUTH ENDPOINTS
// =============================================================================

// Login exchanges credentials for a token pair and user record.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/login/", "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns the same shape as Login.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/register/", "",
		registerRequest{Username: username, Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ExchangeOAuthCode trades a Google OAuth authorization code for tokens.
func (c *Client) ExchangeOAuthCode(ctx context.Context, code, redirectURI string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/google/exchange/", "",
		oauthExchangeRequest{Code: code, RedirectURI: redirectURI}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordReset asks the backend to email a reset token.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/password-reset/", "", passwordResetRequest{Email: email}, nil)
}

// ConfirmPasswordReset completes a reset with the emailed token.
func (c *Client) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/password-reset/confirm/", "",
		passwordResetConfirmRequest{Token: token, NewPassword: newPassword}, nil)
}

// =============================================================================
// CHAT ENDPOINTS
// =============================================================================

// SendPrompt submits a user message and returns the assistant reply.
func (c *Client) SendPrompt(ctx context.Context, token, chatID, content string) (*PromptResponse, error) {
	var out PromptResponse
	err := c.do(ctx, http.MethodPost, "/prompt_gpt/", token, promptRequest{ChatID: chatID, Content: content}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetChatMessages fetches the transcript for a chat id.
func (c *Client) GetChatMessages(ctx context.Context, token, chatID string) ([]Message, error) {
	var out []Message
	err := c.do(ctx, http.MethodGet, "/get_chat_messages/"+url.PathEscape(chatID)+"/", token, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TodaysChats returns the summaries created today.
func (c *Client) TodaysChats(ctx context.Context, token string) ([]ChatSummary, error) {
	return c.getSummaries(ctx, token, "/todays_chat/")
}

// YesterdaysChats returns the summaries created yesterday.
func (c *Client) YesterdaysChats(ctx context.Context, token string) ([]ChatSummary, error) {
	return c.getSummaries(ctx, token, "/yesterdays_chat/")
}

// SevenDaysChats returns the summaries from the trailing seven-day window.
func (c *Client) SevenDaysChats(ctx context.Context, token string) ([]ChatSummary, error) {
	return c.getSummaries(ctx, token, "/seven_days_chat/")
}

func (c *Client) getSummaries(ctx context.Context, token, path string) ([]ChatSummary, error) {
	var out []ChatSummary
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteChat removes a chat server-side.
func (c *Client) DeleteChat(ctx context.Context, token, chatID string) error {
	return c.do(ctx, http.MethodDelete, "/delete_chat/"+url.PathEscape(chatID)+"/", token, nil, nil)
}

// =============================================================================
// PROFILE ENDPOINTS
// =============================================================================

// GetProfile fetches the signed-in account's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile/", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces mutable profile fields. When the email changed,
// the result's EmailUpdated flag is set and the caller must force re-auth.
func (c *Client) UpdateProfile(ctx context.Context, token string, p Profile) (*ProfileUpdateResult, error) {
	var out ProfileUpdateResult
	if err := c.do(ctx, http.MethodPut, "/api/profile/", token, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the account password. On success the current
// tokens are invalid; the caller must force re-auth.
func (c *Client) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/api/profile/change-password/", token,
		changePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}, nil)
}

// DeleteAccount permanently removes the account.
func (c *Client) DeleteAccount(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/profile/", token, nil, nil)
}

// =============================================================================
// BEST-EFFORT ENDPOINTS
// =============================================================================

// StoreSearch logs a search/prompt string server-side. Best effort: calls
// beyond the rate limit are dropped and every error is swallowed.
func (c *Client) StoreSearch(ctx context.Context, token, query string) {
	if token == "" || query == "" {
		return
	}
	if !c.searchLimiter.Allow() {
		return
	}
	_ = c.do(ctx, http.MethodPost, "/api/store_search/", token, storeSearchRequest{SearchQuery: query}, nil)
}

// =============================================================================
// TRANSPORT
// =============================================================================

// do runs one JSON request/response exchange. A nil body sends no payload;
// a nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Type: ErrTypeUnknown, Message: "failed to marshal request", Cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return &Error{Type: ErrTypeNetwork, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		if ctx.Err() != nil {
			return &Error{Type: ErrTypeNetwork, Message: "request canceled", Cause: ctx.Err()}
		}
		return &Error{Type: ErrTypeNetwork, Message: "backend is unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil {
		// Drain so the transport can reuse the connection.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// statusError converts a non-2xx response into a typed error, preserving
// the backend-reported reason when one is present.
func (c *Client) statusError(resp *http.Response) *Error {
	var envelope errorBody
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	msg := envelope.message()
	if msg == "" {
		msg = "unexpected status from backend: " + resp.Status
	}

	errType := ErrTypeNetwork
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		errType = ErrTypeAuth
	}
	return &Error{Type: errType, Status: resp.StatusCode, Message: msg}
}
