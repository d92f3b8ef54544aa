// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"fmt"
	"strings"

	"github.com/shayne/dialog/internal/config"
	"github.com/shayne/dialog/internal/hostcmd"
)

// Backend displays dialog boxes.
//
// ShowInput and ShowPassword return ok == false when the user cancelled.
// Cancelling is never reported as an error.
type Backend interface {
	ShowMessage(m *Message) error
	ShowInput(in *Input) (value string, ok bool, err error)
	ShowPassword(p *Password) (value string, ok bool, err error)
	ShowQuestion(q *Question) (Choice, error)
}

// Backend names accepted by NewBackend and the DIALOG variable.
const (
	NameDialog  = "dialog"
	NameKDialog = "kdialog"
	NameStdio   = "stdio"
	NameZenity  = "zenity"
)

var backendNames = []string{NameDialog, NameKDialog, NameStdio, NameZenity}

// Names returns the names of all backends.
func Names() []string {
	return append([]string(nil), backendNames...)
}

// canonicalName matches name against the backend names, ignoring case and
// surrounding space.
func canonicalName(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range backendNames {
		if name == known {
			return known, true
		}
	}
	return "", false
}

// NewBackend creates the backend called name.
func NewBackend(name string) (Backend, error) {
	canonical, ok := canonicalName(name)
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (want one of %s)", name, strings.Join(backendNames, ", "))
	}
	switch canonical {
	case NameDialog:
		return NewDialog(), nil
	case NameKDialog:
		return NewKDialog(), nil
	case NameZenity:
		return NewZenity(), nil
	default:
		return NewStdio(), nil
	}
}

// Available reports whether the program behind the named backend is
// installed. The stdio backend is always available.
func Available(name string) bool {
	canonical, ok := canonicalName(name)
	if !ok {
		return false
	}
	if canonical == NameStdio {
		return true
	}
	return hostcmd.InstalledOnPath(canonical)
}

// DefaultBackend creates the backend chosen by Resolve for the current
// environment and applies the settings of the user config file to it. The
// choice is made afresh on every call.
func DefaultBackend() Backend {
	cfg := loadConfig()
	env := envFromOS(cfg)
	name, reason := resolve(env)
	logger.Debug("selected backend", "backend", name, "reason", reason)
	backend, err := NewBackend(name)
	if err != nil {
		// resolve only returns known names.
		backend = NewStdio()
	}
	applyConfig(backend, cfg)
	return backend
}

// NewConfiguredBackend is NewBackend with the settings of the user config
// file applied.
func NewConfiguredBackend(name string) (Backend, error) {
	backend, err := NewBackend(name)
	if err != nil {
		return nil, err
	}
	applyConfig(backend, loadConfig())
	return backend, nil
}

func loadConfig() config.Config {
	cfg, path, err := config.Load()
	if err != nil {
		logger.Warn("ignoring config file", "path", path, "err", err)
		return config.Config{}
	}
	return cfg
}

// applyConfig copies the settings for backend's type from cfg. Zero values
// leave the backend unchanged.
func applyConfig(backend Backend, cfg config.Config) {
	switch b := backend.(type) {
	case *Dialog:
		if cfg.Dialog.Backtitle != "" {
			b.SetBacktitle(cfg.Dialog.Backtitle)
		}
		if cfg.Dialog.Width != 0 {
			b.SetWidth(cfg.Dialog.Width)
		}
		if cfg.Dialog.Height != 0 {
			b.SetHeight(cfg.Dialog.Height)
		}
	case *Zenity:
		if cfg.Zenity.Icon != "" {
			b.SetIcon(cfg.Zenity.Icon)
		}
		if cfg.Zenity.Width != 0 {
			b.SetWidth(cfg.Zenity.Width)
		}
		if cfg.Zenity.Height != 0 {
			b.SetHeight(cfg.Zenity.Height)
		}
		if cfg.Zenity.Timeout != 0 {
			b.SetTimeout(cfg.Zenity.Timeout)
		}
	case *KDialog:
		if cfg.KDialog.Icon != "" {
			b.SetIcon(cfg.KDialog.Icon)
		}
	}
}
