// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shayne/yargs"
	"golang.org/x/crypto/bcrypt"

	"github.com/shayne/dialog"
	"github.com/shayne/dialog/internal/clipboard"
)

type boxFlags struct {
	Title     string `flag:"title" short:"t" help:"dialog title"`
	Backend   string `flag:"backend" short:"b" help:"backend to use (dialog, kdialog, stdio, zenity)"`
	Backtitle string `flag:"backtitle" help:"backdrop title (dialog only)"`
	Icon      string `flag:"icon" help:"window icon (zenity and kdialog only)"`
	Width     string `flag:"width" help:"width in characters or pixels (dialog and zenity only)"`
	Height    string `flag:"height" help:"height in characters or pixels (dialog and zenity only)"`
	Timeout   string `flag:"timeout" help:"seconds before the dialog is closed (zenity only)"`
}

type inputFlags struct {
	Title     string `flag:"title" short:"t" help:"dialog title"`
	Backend   string `flag:"backend" short:"b" help:"backend to use (dialog, kdialog, stdio, zenity)"`
	Backtitle string `flag:"backtitle" help:"backdrop title (dialog only)"`
	Icon      string `flag:"icon" help:"window icon (zenity and kdialog only)"`
	Width     string `flag:"width" help:"width in characters or pixels (dialog and zenity only)"`
	Height    string `flag:"height" help:"height in characters or pixels (dialog and zenity only)"`
	Timeout   string `flag:"timeout" help:"seconds before the dialog is closed (zenity only)"`
	Default   string `flag:"default" short:"d" help:"value used when the field is left empty"`
	Copy      bool   `flag:"copy" help:"copy the value to the clipboard instead of printing it"`
}

type passwordFlags struct {
	Title     string `flag:"title" short:"t" help:"dialog title"`
	Backend   string `flag:"backend" short:"b" help:"backend to use (dialog, kdialog, stdio, zenity)"`
	Backtitle string `flag:"backtitle" help:"backdrop title (dialog only)"`
	Icon      string `flag:"icon" help:"window icon (zenity and kdialog only)"`
	Width     string `flag:"width" help:"width in characters or pixels (dialog and zenity only)"`
	Height    string `flag:"height" help:"height in characters or pixels (dialog and zenity only)"`
	Timeout   string `flag:"timeout" help:"seconds before the dialog is closed (zenity only)"`
	Hash      bool   `flag:"hash" help:"print a bcrypt hash of the password instead of the password"`
	Copy      bool   `flag:"copy" help:"copy the result to the clipboard instead of printing it"`
}

type backendsFlags struct {
	Pick bool `flag:"pick" help:"choose the preferred backend and save it to the config file"`
}

type configFlags struct {
	Backend string `flag:"backend" help:"set the preferred backend (use \"auto\" to clear it)"`
}

func (f inputFlags) box() boxFlags {
	return boxFlags{Title: f.Title, Backend: f.Backend, Backtitle: f.Backtitle, Icon: f.Icon, Width: f.Width, Height: f.Height, Timeout: f.Timeout}
}

func (f passwordFlags) box() boxFlags {
	return boxFlags{Title: f.Title, Backend: f.Backend, Backtitle: f.Backtitle, Icon: f.Icon, Width: f.Width, Height: f.Height, Timeout: f.Timeout}
}

func handleMessageCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, boxFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	return runMessage(result.SubCommandFlags, result.Args.Text)
}

func handleInputCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, inputFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	return runInput(result.SubCommandFlags, result.Args.Text)
}

func handlePasswordCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, passwordFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	return runPassword(result.SubCommandFlags, result.Args.Text)
}

func handleQuestionCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, boxFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	return runQuestion(result.SubCommandFlags, result.Args.Text)
}

func handleBackendsCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, backendsFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	if result.SubCommandFlags.Pick {
		return runPickBackend()
	}
	return runListBackends(dialog.EnvFromOS())
}

func handleConfigCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, configFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	return runConfig(result.SubCommandFlags)
}

func runMessage(flags boxFlags, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	backend, err := openBackend(flags)
	if err != nil {
		return err
	}
	msg := dialog.NewMessage(text)
	if flags.Title != "" {
		msg.WithTitle(flags.Title)
	}
	return msg.ShowWith(backend)
}

func runInput(flags inputFlags, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	backend, err := openBackend(flags.box())
	if err != nil {
		return err
	}
	input := dialog.NewInput(text)
	if flags.Title != "" {
		input.WithTitle(flags.Title)
	}
	if flags.Default != "" {
		input.WithDefault(flags.Default)
	}
	value, ok, err := input.ShowWith(backend)
	if err != nil {
		return err
	}
	if !ok {
		return exitError{code: exitCancelled}
	}
	return emit(value, flags.Copy)
}

func runPassword(flags passwordFlags, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	backend, err := openBackend(flags.box())
	if err != nil {
		return err
	}
	password := dialog.NewPassword(text)
	if flags.Title != "" {
		password.WithTitle(flags.Title)
	}
	value, ok, err := password.ShowWith(backend)
	if err != nil {
		return err
	}
	if !ok {
		return exitError{code: exitCancelled}
	}
	if flags.Hash {
		hash, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		value = string(hash)
	}
	return emit(value, flags.Copy)
}

func runQuestion(flags boxFlags, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	backend, err := openBackend(flags)
	if err != nil {
		return err
	}
	question := dialog.NewQuestion(text)
	if flags.Title != "" {
		question.WithTitle(flags.Title)
	}
	choice, err := question.ShowWith(backend)
	if err != nil {
		return err
	}
	switch choice {
	case dialog.Yes:
		return nil
	case dialog.No:
		return exitError{code: exitNo}
	default:
		return exitError{code: exitQuestion}
	}
}

func emit(value string, copyValue bool) error {
	if copyValue {
		return clipboard.WriteText(value)
	}
	_, err := fmt.Fprintln(stdout, value)
	return err
}

// openBackend creates the backend named by flags, or the default one, and
// applies the command line settings on top of the config file.
func openBackend(flags boxFlags) (dialog.Backend, error) {
	var backend dialog.Backend
	switch {
	case strings.EqualFold(strings.TrimSpace(flags.Backend), dialog.NameStdio):
		// Prompts go to stderr so the answer alone reaches stdout.
		backend = dialog.NewStdioWith(stdin, stderr)
	case flags.Backend != "":
		var err error
		backend, err = dialog.NewConfiguredBackend(flags.Backend)
		if err != nil {
			return nil, newUsageError(err.Error())
		}
	default:
		backend = dialog.DefaultBackend()
		if _, ok := backend.(*dialog.Stdio); ok {
			backend = dialog.NewStdioWith(stdin, stderr)
		}
	}
	if err := applyFlags(backend, flags); err != nil {
		return nil, err
	}
	return backend, nil
}

func applyFlags(backend dialog.Backend, flags boxFlags) error {
	width, err := parseSize("width", flags.Width)
	if err != nil {
		return err
	}
	height, err := parseSize("height", flags.Height)
	if err != nil {
		return err
	}
	timeout, err := parseSize("timeout", flags.Timeout)
	if err != nil {
		return err
	}
	switch b := backend.(type) {
	case *dialog.Dialog:
		if flags.Backtitle != "" {
			b.SetBacktitle(flags.Backtitle)
		}
		if width != nil {
			b.SetWidth(*width)
		}
		if height != nil {
			b.SetHeight(*height)
		}
	case *dialog.Zenity:
		if flags.Icon != "" {
			b.SetIcon(flags.Icon)
		}
		if width != nil {
			b.SetWidth(*width)
		}
		if height != nil {
			b.SetHeight(*height)
		}
		if timeout != nil {
			b.SetTimeout(*timeout)
		}
	case *dialog.KDialog:
		if flags.Icon != "" {
			b.SetIcon(flags.Icon)
		}
	}
	return nil
}

func parseSize(name, value string) (*uint32, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, newUsageError(fmt.Sprintf("invalid --%s %q: want a non-negative integer", name, value))
	}
	size := uint32(n)
	return &size, nil
}
