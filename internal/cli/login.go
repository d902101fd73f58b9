// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// login.go - credential commands for the terminal.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/auth"
)

// promptLine reads one line of input with line editing.
func promptLine(label string) (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	value, err := line.Prompt(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// promptPassword reads a password without echo.
func promptPassword(label string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// HandleLogin signs in interactively and persists the session.
func HandleLogin(session *auth.Store) int {
	email, err := promptLine("Email: ")
	if err != nil {
		return 1
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return 1
	}

	if err := session.SignIn(context.Background(), email, password); err != nil {
		Errorf("Sign in failed: %v", err)
		return 1
	}
	user, _ := session.User()
	Successf("Signed in as %s", user.Username)
	return 0
}

// HandleLoginOAuth completes a Google sign-in from the terminal. The
// browser leg happens elsewhere; the user pastes the authorization code
// from the redirect URL here and we trade it for a session.
func HandleLoginOAuth(client *api.Client, session *auth.Store, redirectURI string) int {
	Mutedf("Complete the Google sign-in in your browser, then paste the")
	Mutedf("`code` parameter from the %s redirect.", redirectURI)

	code, err := promptLine("Authorization code: ")
	if err != nil {
		return 1
	}
	if code == "" {
		Errorf("No authorization code given")
		return 1
	}

	resp, err := client.ExchangeOAuthCode(context.Background(), code, redirectURI)
	if err != nil {
		Errorf("Sign in failed: %v", err)
		return 1
	}
	session.SignInWithTokens(resp.Access, resp.Refresh, resp.User)
	Successf("Signed in as %s", resp.User.Username)
	return 0
}

// HandleRegister creates an account interactively.
func HandleRegister(session *auth.Store) int {
	username, err := promptLine("Username: ")
	if err != nil {
		return 1
	}
	email, err := promptLine("Email: ")
	if err != nil {
		return 1
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return 1
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return 1
	}
	if len(password) < 8 {
		Errorf("Password must be at least 8 characters")
		return 1
	}
	if password != confirm {
		Errorf("Passwords do not match")
		return 1
	}

	if err := session.Register(context.Background(), username, email, password); err != nil {
		Errorf("Registration failed: %v", err)
		return 1
	}
	Successf("Account created; signed in as %s", username)
	return 0
}

// HandleLogout clears the stored session.
func HandleLogout(session *auth.Store) int {
	if !session.SignedIn() {
		Mutedf("Not signed in")
		return 0
	}
	session.SignOut()
	Successf("Signed out")
	return 0
}

// requireSession prints a hint and fails when no session is stored.
func requireSession(session *auth.Store) bool {
	if session.SignedIn() {
		return true
	}
	fmt.Fprintln(os.Stderr, "Not signed in. Run `chatpaat login` first.")
	return false
}
