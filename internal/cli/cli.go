// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - command line parsing for chatpaat.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdLogout
	CmdRegister
	CmdAsk
	CmdChat
	CmdConfig
	CmdHistory
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	BaseURL string
	Theme   string
	Quiet   bool
	OAuth   bool

	// Command-specific
	Query      string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `chatpaat - terminal client for the ChatPaat chat service

Usage:
  chatpaat                   Start the TUI (default)
  chatpaat login             Sign in and store the session
  chatpaat login --oauth     Sign in by pasting a Google authorization code
  chatpaat logout            Sign out and clear stored tokens
  chatpaat register          Create an account
  chatpaat ask "question"    Ask a single question and exit
  chatpaat chat              Line-mode chat REPL
  chatpaat config [show|set key value|path]
                             Configuration management
  chatpaat history [show|clear]
                             Search history management
  chatpaat version, -v       Show version
  chatpaat help, -h          Show this help

Flags:
  --base-url URL   Override the server address for this run
  --theme NAME     Override the theme for this run
  --quiet          Suppress informational output

Examples:
  chatpaat ask "summarize the attached notes"
  chatpaat --base-url http://127.0.0.1:7004 chat
  chatpaat config set server.base_url https://chat.example.com`

// Parse reads os.Args and returns the command plus its arguments.
func Parse() (Command, *Args) {
	return parseArgs(os.Args[1:])
}

func parseArgs(raw []string) (Command, *Args) {
	args := &Args{}

	rest := make([]string, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		switch arg := raw[i]; {
		case arg == "--base-url" && i+1 < len(raw):
			i++
			args.BaseURL = raw[i]
		case strings.HasPrefix(arg, "--base-url="):
			args.BaseURL = strings.TrimPrefix(arg, "--base-url=")
		case arg == "--theme" && i+1 < len(raw):
			i++
			args.Theme = raw[i]
		case strings.HasPrefix(arg, "--theme="):
			args.Theme = strings.TrimPrefix(arg, "--theme=")
		case arg == "--quiet" || arg == "-q":
			args.Quiet = true
		case arg == "--oauth":
			args.OAuth = true
		default:
			rest = append(rest, arg)
		}
	}
	args.Raw = rest

	if len(rest) == 0 {
		return CmdTUI, args
	}

	cmd := rest[0]
	rest = rest[1:]
	args.Raw = rest

	switch cmd {
	case "login":
		return CmdLogin, args
	case "logout":
		return CmdLogout, args
	case "register":
		return CmdRegister, args
	case "ask":
		args.Query = strings.Join(rest, " ")
		return CmdAsk, args
	case "chat":
		return CmdChat, args
	case "config", "cfg":
		if len(rest) > 0 {
			args.Subcommand = rest[0]
		}
		if args.Subcommand == "set" && len(rest) >= 3 {
			args.ConfigKey = rest[1]
			args.ConfigVal = rest[2]
		}
		return CmdConfig, args
	case "history", "hist":
		if len(rest) > 0 {
			args.Subcommand = rest[0]
		}
		return CmdHistory, args
	case "version", "-v", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Println(usageText)
}

// PrintVersion writes version information to stdout.
func PrintVersion() {
	fmt.Printf("chatpaat %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
