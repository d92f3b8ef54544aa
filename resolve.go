// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"os"
	"strings"

	"github.com/shayne/dialog/internal/config"
	"github.com/shayne/dialog/internal/hostcmd"
)

// Env is the environment snapshot Resolve chooses a backend from.
type Env struct {
	// Override is the value of DIALOG.
	Override string
	// Preferred is the backend named in the user config file.
	Preferred string
	// Desktop is the value of XDG_CURRENT_DESKTOP.
	Desktop string
	// Display is the value of DISPLAY, or WAYLAND_DISPLAY if DISPLAY is empty.
	Display string
	// Installed reports whether a program is installed. Nil means nothing is.
	Installed func(program string) bool
}

// EnvFromOS captures the current process environment, the user config file
// and the programs installed on PATH.
func EnvFromOS() Env {
	return envFromOS(loadConfig())
}

func envFromOS(cfg config.Config) Env {
	display := os.Getenv("DISPLAY")
	if display == "" {
		display = os.Getenv("WAYLAND_DISPLAY")
	}
	return Env{
		Override:  os.Getenv("DIALOG"),
		Preferred: cfg.Backend,
		Desktop:   os.Getenv("XDG_CURRENT_DESKTOP"),
		Display:   display,
		Installed: hostcmd.InstalledOnPath,
	}
}

// Resolve returns the name of the backend to use in env:
//
//  1. the backend named by Override, if it is a known name;
//  2. the backend named by Preferred, if it is a known name;
//  3. kdialog in a KDE session, if installed;
//  4. zenity, then kdialog, if a display is available and they are installed;
//  5. dialog, if installed;
//  6. stdio.
//
// Names are matched without regard to case. Unknown names are skipped.
func Resolve(env Env) string {
	name, _ := resolve(env)
	return name
}

func resolve(env Env) (name, reason string) {
	if name, ok := canonicalName(env.Override); ok {
		return name, "DIALOG override"
	}
	if name, ok := canonicalName(env.Preferred); ok {
		return name, "config file"
	}
	installed := env.Installed
	if installed == nil {
		installed = func(string) bool { return false }
	}
	if isKDE(env.Desktop) && installed(kdialogCommand) {
		return NameKDialog, "KDE session"
	}
	if env.Display != "" {
		if installed(zenityCommand) {
			return NameZenity, "display available"
		}
		if installed(kdialogCommand) {
			return NameKDialog, "display available"
		}
	}
	if installed(dialogCommand) {
		return NameDialog, "dialog installed"
	}
	return NameStdio, "fallback"
}

// isKDE reports whether desktop, a colon-separated XDG_CURRENT_DESKTOP
// value, names KDE.
func isKDE(desktop string) bool {
	for _, entry := range strings.Split(desktop, ":") {
		if strings.EqualFold(strings.TrimSpace(entry), "KDE") {
			return true
		}
	}
	return false
}
