// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - one-shot question command.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/auth"
)

// HandleAsk sends a single prompt to a fresh chat and prints the reply.
func HandleAsk(client *api.Client, session *auth.Store, query string, quiet bool) int {
	query = strings.TrimSpace(query)
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: chatpaat ask \"question\"")
		return 2
	}
	if !requireSession(session) {
		return 1
	}

	resp, err := client.SendPrompt(context.Background(), session.Token(), uuid.NewString(), query)
	if err != nil {
		Errorf("Request failed: %v", err)
		return 1
	}
	if resp.Reply == "" {
		if !quiet {
			Mutedf("(empty reply)")
		}
		return 0
	}

	fmt.Println(renderReply(resp.Reply))
	return 0
}

// renderReply renders markdown for the terminal, falling back to the
// raw text when rendering fails or stdout is not a terminal.
func renderReply(reply string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return reply
	}
	out, err := r.Render(reply)
	if err != nil {
		return reply
	}
	return strings.Trim(out, "\n")
}
