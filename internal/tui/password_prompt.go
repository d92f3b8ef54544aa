// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptSecret reads a value through a masked input field. ok is false when
// the user aborts the prompt.
func PromptSecret(in io.Reader, out io.Writer, title string) (value string, ok bool, err error) {
	if strings.TrimSpace(title) == "" {
		title = "Password"
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Prompt("> ").
				EchoMode(huh.EchoModePassword).
				Value(&value),
		),
	)
	form.WithInput(in).WithOutput(out).WithTheme(PromptTheme(out))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// SelectOption is one entry offered by PromptSelect.
type SelectOption struct {
	Label string
	Value string
}

// PromptSelect lets the user pick one option. ok is false when aborted.
func PromptSelect(in io.Reader, out io.Writer, title string, options []SelectOption, current string) (string, bool, error) {
	if len(options) == 0 {
		return "", false, errors.New("no options available")
	}
	choice := current
	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, opt := range options {
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		huhOptions = append(huhOptions, huh.NewOption(label, opt.Value))
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huhOptions...).
				Value(&choice),
		),
	)
	form.WithInput(in).WithOutput(out).WithTheme(PromptTheme(out))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, err
	}
	return choice, true, nil
}
