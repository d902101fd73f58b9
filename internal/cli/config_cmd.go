// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - config inspection and editing from the shell.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jeranaias/chatpaat-tui/internal/config"
)

// HandleConfig implements `chatpaat config [show|set|path]`.
func HandleConfig(args *Args) int {
	switch args.Subcommand {
	case "", "show":
		return configShow()
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			Errorf("%v", err)
			return 1
		}
		fmt.Println(path)
		return 0
	case "set":
		if args.ConfigKey == "" {
			fmt.Fprintln(os.Stderr, "usage: chatpaat config set <key> <value>")
			return 2
		}
		return configSet(args.ConfigKey, args.ConfigVal)
	default:
		fmt.Fprintf(os.Stderr, "unknown config subcommand: %s\n", args.Subcommand)
		return 2
	}
}

func configShow() int {
	cfg, err := config.Load()
	if err != nil {
		Errorf("%v", err)
		return 1
	}
	fmt.Printf("server.base_url       = %s\n", cfg.Server.BaseURL)
	fmt.Printf("server.timeout_secs   = %d\n", cfg.Server.TimeoutSecs)
	fmt.Printf("ui.default_theme      = %s\n", cfg.UI.DefaultTheme)
	fmt.Printf("ui.mouse_enabled      = %t\n", cfg.UI.MouseEnabled)
	fmt.Printf("ui.alt_screen         = %t\n", cfg.UI.AltScreen)
	fmt.Printf("search.history_enabled = %t\n", cfg.Search.HistoryEnabled)
	return 0
}

func configSet(key, value string) int {
	cfg, err := config.Load()
	if err != nil {
		Errorf("%v", err)
		return 1
	}

	switch key {
	case "server.base_url":
		cfg.Server.BaseURL = value
	case "server.timeout_secs":
		secs, err := strconv.Atoi(value)
		if err != nil {
			Errorf("timeout_secs must be a number")
			return 2
		}
		cfg.Server.TimeoutSecs = secs
	case "ui.default_theme":
		cfg.UI.DefaultTheme = value
	case "ui.mouse_enabled":
		cfg.UI.MouseEnabled = value == "true"
	case "ui.alt_screen":
		cfg.UI.AltScreen = value == "true"
	case "search.history_enabled":
		cfg.Search.HistoryEnabled = value == "true"
	default:
		Errorf("unknown config key: %s", key)
		return 2
	}

	if err := cfg.Validate(); err != nil {
		Errorf("%v", err)
		return 2
	}
	if err := config.Save(cfg); err != nil {
		Errorf("%v", err)
		return 1
	}
	Successf("%s = %s", key, value)
	return 0
}
