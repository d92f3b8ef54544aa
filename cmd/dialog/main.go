// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dialog shows a single dialog box from the command line. It is a
// small demonstration of the dialog package.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shayne/yargs"
)

// Exit statuses follow the dialog program: 1 for No or Cancel on boxes
// without a No button, 2 for Cancel on questions.
const (
	exitNo        = 1
	exitCancelled = 1
	exitQuestion  = 2
	exitFailure   = 3
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	if err := runCLI(os.Args[1:]); err != nil {
		os.Exit(reportCLIError(err))
	}
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

func newUsageError(message string) error {
	return usageError{message: message}
}

// exitError ends the process with code and prints nothing.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func reportCLIError(err error) int {
	var exitErr exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stderr, usageErr.message)
		return exitFailure
	}
	fmt.Fprintln(stderr, err.Error())
	return exitFailure
}

func runCLI(args []string) error {
	args = normalizeArgs(args)
	handlers := map[string]yargs.SubcommandHandler{
		"message":  handleMessageCommand,
		"input":    handleInputCommand,
		"password": handlePasswordCommand,
		"question": handleQuestionCommand,
		"backends": handleBackendsCommand,
		"config":   handleConfigCommand,
	}
	if err := yargs.RunSubcommands(context.Background(), args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"--help"}
	}
	if args[0] == "help" {
		if len(args) > 1 && isKnownCommand(args[1]) {
			return []string{args[1], "--help"}
		}
		return []string{"--help"}
	}
	return args
}

func isKnownCommand(value string) bool {
	switch value {
	case "message", "input", "password", "question", "backends", "config":
		return true
	default:
		return false
	}
}

var helpConfig = yargs.HelpConfig{
	Command: yargs.CommandInfo{
		Name:        "dialog",
		Description: "Show dialog boxes with dialog, zenity, kdialog or plain prompts",
		Examples: []string{
			"dialog message \"Backup finished\" --title Backup",
			"dialog input \"Your name\" --default anonymous",
			"dialog password \"Passphrase\" --hash",
			"dialog question \"Continue?\" --backend stdio",
			"dialog backends",
			"dialog config --backend zenity",
		},
	},
	SubCommands: map[string]yargs.SubCommandInfo{
		"message": {
			Name:        "message",
			Description: "Show a message box",
			Usage:       "<text>",
		},
		"input": {
			Name:        "input",
			Description: "Ask for a line of text and print it",
			Usage:       "<text>",
		},
		"password": {
			Name:        "password",
			Description: "Ask for a password and print it or its bcrypt hash",
			Usage:       "<text>",
		},
		"question": {
			Name:        "question",
			Description: "Ask a yes/no question; exits 0 for yes, 1 for no, 2 when cancelled",
			Usage:       "<text>",
		},
		"backends": {
			Name:        "backends",
			Description: "List backends and the one chosen by default",
		},
		"config": {
			Name:        "config",
			Description: "Show or update the configuration file",
		},
	},
}

type textArgs struct {
	Text string `pos:"0" help:"text shown in the dialog box"`
}

func requireText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", newUsageError("missing dialog text")
	}
	return text, nil
}
