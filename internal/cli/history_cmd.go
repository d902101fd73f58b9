// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - search history inspection from the shell.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jeranaias/chatpaat-tui/internal/history"
)

// HandleHistory implements `chatpaat history [show|clear]`.
func HandleHistory(hist *history.Store, args *Args) int {
	if hist == nil {
		Mutedf("Search history is disabled")
		return 0
	}

	switch args.Subcommand {
	case "", "show":
		entries, err := hist.Recent(context.Background(), 50)
		if err != nil {
			Errorf("%v", err)
			return 1
		}
		if len(entries) == 0 {
			Mutedf("No search history")
			return 0
		}
		for _, q := range entries {
			fmt.Println(q)
		}
		return 0
	case "clear":
		if err := hist.Clear(context.Background()); err != nil {
			Errorf("%v", err)
			return 1
		}
		Successf("Search history cleared")
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown history subcommand: %s\n", args.Subcommand)
		return 2
	}
}
