// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - line-mode chat REPL for terminals where the full-screen
// TUI is unwanted (ssh sessions, scripts, screen readers).
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/peterh/liner"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/auth"
	"github.com/jeranaias/chatpaat-tui/internal/history"
)

// HandleChat runs the REPL until EOF, ctrl+c, or /quit.
func HandleChat(client *api.Client, session *auth.Store, hist *history.Store, quiet bool) int {
	if !requireSession(session) {
		return 1
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	// Seed line history with recent searches so up-arrow is useful
	// from the first prompt.
	if hist != nil {
		if recent, err := hist.Recent(context.Background(), 50); err == nil {
			for i := len(recent) - 1; i >= 0; i-- {
				line.AppendHistory(recent[i])
			}
		}
	}

	if !quiet {
		user, _ := session.User()
		Mutedf("Chatting as %s. /new starts a fresh chat, /quit exits.", user.Username)
	}

	chatID := uuid.NewString()
	for {
		input, err := line.Prompt(promptStyle.Render("you› "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return 0
			}
			// EOF or terminal error ends the session.
			return 0
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case "/quit", "/exit", "/q":
			return 0
		case "/new", "/n":
			chatID = uuid.NewString()
			if !quiet {
				Mutedf("Started a new chat")
			}
			continue
		}

		resp, err := client.SendPrompt(context.Background(), session.Token(), chatID, input)
		if err != nil {
			Errorf("Request failed: %v", err)
			continue
		}
		if hist != nil {
			_ = hist.Add(context.Background(), input)
		}
		if resp.Reply != "" {
			fmt.Println(renderReply(resp.Reply))
			fmt.Println()
		}
	}
}
