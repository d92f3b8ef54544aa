// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	HeadingStyle = lipgloss.NewStyle().Bold(true)
	MutedStyle   = lipgloss.NewStyle().Faint(true)
	OKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	MissingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// StyleEnabled reports whether styled output should be written to out.
func StyleEnabled(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termValue := os.Getenv("TERM")
	if termValue == "" || termValue == "dumb" {
		return false
	}
	if ttyAware, ok := out.(interface{ IsTTY() bool }); ok {
		return ttyAware.IsTTY()
	}
	return IsTerminal(out)
}

// Styled renders text with style when enabled is true.
func Styled(style lipgloss.Style, text string, enabled bool) string {
	if !enabled {
		return text
	}
	return style.Render(text)
}

type promptTokens struct {
	accent string
	muted  string
	label  string
	value  string
	header string
	err    string
}

var (
	darkPromptTokens  = promptTokens{accent: "213", muted: "243", label: "244", value: "252", header: "81", err: "203"}
	lightPromptTokens = promptTokens{accent: "213", muted: "240", label: "238", value: "234", header: "23", err: "160"}
)

// PromptTheme is the huh theme used for interactive prompts on out. Colors
// follow the terminal background when styling is enabled.
func PromptTheme(out io.Writer) *huh.Theme {
	if !StyleEnabled(out) {
		return huh.ThemeBase()
	}
	tokens := darkPromptTokens
	if !lipgloss.HasDarkBackground() {
		tokens = lightPromptTokens
	}
	return buildPromptTheme(tokens)
}

func buildPromptTheme(pal promptTokens) *huh.Theme {
	theme := huh.ThemeBase()
	accent := lipgloss.Color(pal.accent)
	muted := lipgloss.Color(pal.muted)
	label := lipgloss.Color(pal.label)
	value := lipgloss.Color(pal.value)
	header := lipgloss.Color(pal.header)
	errColor := lipgloss.Color(pal.err)

	theme.Group.Title = theme.Group.Title.Foreground(header).Bold(true)
	theme.Group.Description = theme.Group.Description.Foreground(muted)

	theme.Focused.Title = theme.Focused.Title.Foreground(label).Bold(true)
	theme.Focused.Description = theme.Focused.Description.Foreground(muted)
	theme.Focused.ErrorIndicator = theme.Focused.ErrorIndicator.Foreground(errColor)
	theme.Focused.ErrorMessage = theme.Focused.ErrorMessage.Foreground(errColor)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(accent)
	theme.Focused.TextInput.Prompt = theme.Focused.TextInput.Prompt.Foreground(label)
	theme.Focused.TextInput.Text = theme.Focused.TextInput.Text.Foreground(value)
	theme.Focused.TextInput.Placeholder = theme.Focused.TextInput.Placeholder.Foreground(muted)

	theme.Blurred = theme.Focused
	theme.Blurred.Base = theme.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	theme.Blurred.Card = theme.Blurred.Base
	return theme
}
