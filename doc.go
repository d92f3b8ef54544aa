// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dialog displays simple dialog boxes using one of several backends.
//
// Four kinds of dialog boxes are supported: Message, Input, Password and
// Question. Each of them can be shown with the default backend by calling
// Show, or with a specific backend by calling ShowWith.
//
// The backends are:
//   - Dialog: the external dialog program (ncurses dialogs in the terminal)
//   - Zenity: the external zenity program (GTK dialogs)
//   - KDialog: the external kdialog program (KDE dialogs)
//   - Stdio: plain prompts on standard input and output
//
// DefaultBackend picks a backend from the environment. The DIALOG variable
// names a backend explicitly. Otherwise kdialog is used in KDE sessions,
// zenity or kdialog when a display is available, dialog when it is
// installed, and Stdio as the last resort. A preferred backend and settings
// for each backend may also be stored in $XDG_CONFIG_HOME/dialog/config.toml.
// DIALOG_DEBUG enables debug logging on stderr.
//
// Show a message box with the default backend:
//
//	err := dialog.NewMessage("Did you know that I am using dialog?").
//		WithTitle("Public Service Announcement").
//		Show()
//
// Ask for a name with a configured dialog backend:
//
//	backend := dialog.NewDialog()
//	backend.SetBacktitle("dialog demo")
//	name, ok, err := dialog.NewInput("Please enter your name").
//		WithTitle("Name").
//		ShowWith(backend)
//
// Backends hold plain configuration and no locks. A backend may be reused
// for any number of dialogs, but it must not be reconfigured while a dialog
// is being shown with it.
package dialog
