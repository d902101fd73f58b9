// chatpaat - terminal client for the ChatPaat chat service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/auth"
	"github.com/jeranaias/chatpaat-tui/internal/chatlist"
	"github.com/jeranaias/chatpaat-tui/internal/cli"
	"github.com/jeranaias/chatpaat-tui/internal/config"
	"github.com/jeranaias/chatpaat-tui/internal/conversation"
	"github.com/jeranaias/chatpaat-tui/internal/history"
	"github.com/jeranaias/chatpaat-tui/internal/notify"
	"github.com/jeranaias/chatpaat-tui/internal/prefs"
	"github.com/jeranaias/chatpaat-tui/internal/profile"
	"github.com/jeranaias/chatpaat-tui/internal/store"
	"github.com/jeranaias/chatpaat-tui/internal/ui/chat"
	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
	"golang.org/x/time/rate"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()
	os.Exit(run(cmd, args))
}

func run(cmd cli.Command, args *cli.Args) int {
	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion()
		return 0
	case cli.CmdHelp:
		cli.PrintUsage()
		return 0
	case cli.CmdConfig:
		return cli.HandleConfig(args)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	if args.BaseURL != "" {
		cfg.Server.BaseURL = args.BaseURL
	}
	if args.Theme != "" {
		cfg.UI.DefaultTheme = args.Theme
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	config.SetGlobal(cfg)

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL:        cfg.Server.BaseURL,
		Timeout:        time.Duration(cfg.Server.TimeoutSecs) * time.Second,
		SearchLogRate:  rate.Limit(cfg.Search.LogRate),
		SearchLogBurst: cfg.Search.LogBurst,
	})

	local, err := store.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "state store: %v\n", err)
		return 1
	}

	session := auth.NewStore(client, local)

	var hist *history.Store
	if cfg.Search.HistoryEnabled {
		if path, err := history.DefaultPath(); err == nil {
			if h, err := history.Open(path); err == nil {
				hist = h
				defer hist.Close()
			}
		}
	}

	switch cmd {
	case cli.CmdLogin:
		if args.OAuth {
			return cli.HandleLoginOAuth(client, session, cfg.Server.OAuthRedirectURI)
		}
		return cli.HandleLogin(session)
	case cli.CmdLogout:
		return cli.HandleLogout(session)
	case cli.CmdRegister:
		return cli.HandleRegister(session)
	case cli.CmdAsk:
		return cli.HandleAsk(client, session, args.Query, args.Quiet)
	case cli.CmdChat:
		return cli.HandleChat(client, session, hist, args.Quiet)
	case cli.CmdHistory:
		return cli.HandleHistory(hist, args)
	}

	return runTUI(cfg, client, session, local, hist)
}

// runTUI wires the stores together and runs the full-screen client.
func runTUI(cfg *config.Config, client *api.Client, session *auth.Store, local *store.Store, hist *history.Store) int {
	prefStore := prefs.NewStore(local)
	if cfg.UI.DefaultTheme != "" {
		// The config default applies only until the user picks a theme;
		// a persisted preference wins.
		if v, err := local.GetString(store.KeyTheme); err != nil || v == "" {
			prefStore.SetTheme(styles.ThemeName(cfg.UI.DefaultTheme))
		}
	}

	toasts := notify.NewQueue()
	deps := chat.Deps{
		Client:  client,
		Session: session,
		Prefs:   prefStore,
		List:    chatlist.NewStore(client),
		Conv:    conversation.NewView(client),
		Toasts:  toasts,
		Profile: profile.NewService(client, session, toasts),
		History: hist,
	}

	opts := []tea.ProgramOption{tea.WithReportFocus()}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	program := tea.NewProgram(chat.New(deps), opts...)

	// Live config reload: apply validated changes and poke the UI.
	if path, err := config.ConfigPath(); err == nil {
		watcher, werr := config.NewWatcher(path, 500*time.Millisecond, func(*config.Config) {
			program.Send(chat.ConfigReloadedMsg{})
		})
		if werr == nil && watcher.Watch() == nil {
			defer watcher.Close()
		}
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
