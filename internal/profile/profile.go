// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package profile implements the account operations: profile load and
// update, password change, password reset, and account deletion.
//
// Credential-affecting changes (email update, password change, account
// deletion) invalidate the backend tokens, so they end with a forced
// sign-out. Outcomes are surfaced as toasts.
package profile

import (
	"context"
	"errors"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/auth"
	"github.com/jeranaias/chatpaat-tui/internal/notify"
)

// minPasswordLen matches the backend's password policy.
const minPasswordLen = 8

// Service wires the account operations to the session and the toast queue.
type Service struct {
	client  *api.Client
	session *auth.Store
	toasts  *notify.Queue
}

// NewService creates the account service.
func NewService(client *api.Client, session *auth.Store, toasts *notify.Queue) *Service {
	return &Service{client: client, session: session, toasts: toasts}
}

// =============================================================================
// PROFILE
// =============================================================================

// Load fetches the account profile. Failure is reported as a toast and a
// nil profile.
func (s *Service) Load(ctx context.Context) *api.Profile {
	p, err := s.client.GetProfile(ctx, s.session.Token())
	if err != nil {
		s.toasts.Error("Failed to load profile")
		return nil
	}
	return p
}

// Update saves the profile. An email change invalidates the session: the
// user is signed out and told to sign back in with the new address.
// Returns the saved profile when the session survives, nil otherwise.
func (s *Service) Update(ctx context.Context, p api.Profile) *api.Profile {
	user, signedIn := s.session.User()
	if !signedIn {
		return nil
	}

	res, err := s.client.UpdateProfile(ctx, s.session.Token(), p)
	if err != nil {
		s.toasts.Error(errMessage(err, "Failed to update profile"))
		return nil
	}

	if res.EmailUpdated {
		updatedEmail := res.Email
		if updatedEmail == "" {
			updatedEmail = p.Email
		}
		username := user.Username
		if username == "" {
			username = "User"
		}
		s.session.ForceReauth()
		s.toasts.Success("For " + username + ", the Email is updated to: " + updatedEmail +
			". Please log in using that updated email")
		return nil
	}

	s.toasts.Success("Profile updated successfully")
	saved := res.User
	return &saved
}

// =============================================================================
// PASSWORD
// =============================================================================

// ChangePassword validates and applies a password change, then forces a
// fresh sign-in. Returns true when the password was changed.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) bool {
	if newPassword != confirm {
		s.toasts.Error("Passwords do not match")
		return false
	}
	if len(newPassword) < minPasswordLen {
		s.toasts.Error("Password must be at least 8 characters")
		return false
	}

	if err := s.client.ChangePassword(ctx, s.session.Token(), oldPassword, newPassword); err != nil {
		s.toasts.Error(errMessage(err, "Failed to change password"))
		return false
	}

	s.session.ForceReauth()
	s.toasts.Success("Password is updated. Please Log in again")
	return true
}

// RequestPasswordReset starts the email reset flow. The confirmation is
// deliberately identical whether or not the account exists.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) bool {
	if err := s.client.RequestPasswordReset(ctx, email); err != nil {
		s.toasts.Error(errMessage(err, "Failed to send request"))
		return false
	}
	s.toasts.Info("If an account with that email exists, you will receive instructions shortly.")
	return true
}

// ConfirmPasswordReset completes the reset flow with the emailed token.
func (s *Service) ConfirmPasswordReset(ctx context.Context, token, password, confirm string) bool {
	if token == "" {
		s.toasts.Error("Missing token")
		return false
	}
	if len(password) < minPasswordLen {
		s.toasts.Error("Password must be at least 8 characters")
		return false
	}
	if password != confirm {
		s.toasts.Error("Passwords do not match")
		return false
	}

	if err := s.client.ConfirmPasswordReset(ctx, token, password); err != nil {
		s.toasts.Error(errMessage(err, "Failed to reset password"))
		return false
	}
	s.toasts.Success("Password reset. You can now sign in.")
	return true
}

// =============================================================================
// ACCOUNT
// =============================================================================

// DeleteAccount removes the account and everything behind it, then signs
// out. The caller is responsible for confirming the action first.
func (s *Service) DeleteAccount(ctx context.Context) bool {
	if err := s.client.DeleteAccount(ctx, s.session.Token()); err != nil {
		s.toasts.Error(errMessage(err, "Failed to delete account"))
		return false
	}

	s.session.ForceReauth()
	s.toasts.Success("Account deleted successfully. All your data has been removed.")
	return true
}

// errMessage prefers the backend's own message over the generic fallback.
func errMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
