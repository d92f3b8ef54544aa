// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/shayne/dialog"
	"github.com/shayne/dialog/internal/config"
	"github.com/shayne/dialog/internal/tui"
)

// autoBackend clears the preferred backend in the config file.
const autoBackend = "auto"

func runListBackends(env dialog.Env) error {
	selected := dialog.Resolve(env)
	styled := tui.StyleEnabled(stdout)
	w := bufio.NewWriter(stdout)
	for _, name := range dialog.Names() {
		marker := " "
		if name == selected {
			marker = "*"
		}
		status := tui.Styled(tui.OKStyle, "available", styled)
		if !dialog.Available(name) {
			status = tui.Styled(tui.MissingStyle, "not installed", styled)
		}
		fmt.Fprintf(w, "%s %-8s %s\n", marker, name, status)
	}
	return w.Flush()
}

func runPickBackend() error {
	cfg, path, err := config.Load()
	if err != nil {
		return err
	}
	options := []tui.SelectOption{{Label: "auto (detect on every run)", Value: autoBackend}}
	for _, name := range dialog.Names() {
		label := name
		if !dialog.Available(name) {
			label = name + " (not installed)"
		}
		options = append(options, tui.SelectOption{Label: label, Value: name})
	}
	current := cfg.Backend
	if current == "" {
		current = autoBackend
	}
	choice, ok, err := tui.PromptSelect(stdin, stderr, "Preferred dialog backend", options, current)
	if err != nil {
		return err
	}
	if !ok {
		return exitError{code: exitCancelled}
	}
	return saveBackend(cfg, path, choice)
}

func runConfig(flags configFlags) error {
	cfg, path, err := config.Load()
	if err != nil {
		return err
	}
	if flags.Backend != "" {
		return saveBackend(cfg, path, flags.Backend)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	styled := tui.StyleEnabled(stdout)
	fmt.Fprintln(stdout, tui.Styled(tui.MutedStyle, "# "+path, styled))
	_, err = stdout.Write(data)
	return err
}

func saveBackend(cfg config.Config, path, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == autoBackend:
		cfg.Backend = ""
	case isBackendName(name):
		cfg.Backend = name
	default:
		return newUsageError(fmt.Sprintf("unknown backend %q (want %s or one of %s)", name, autoBackend, strings.Join(dialog.Names(), ", ")))
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "saved %s\n", path)
	return nil
}

func isBackendName(name string) bool {
	for _, known := range dialog.Names() {
		if name == known {
			return true
		}
	}
	return false
}
