// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shayne/dialog/internal/config"
)

func TestNewBackendByName(t *testing.T) {
	cases := map[string]string{
		"dialog":    "*dialog.Dialog",
		" KDialog ": "*dialog.KDialog",
		"STDIO":     "*dialog.Stdio",
		"Zenity":    "*dialog.Zenity",
	}
	for name, want := range cases {
		backend, err := NewBackend(name)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", name, err)
		}
		if got := fmt.Sprintf("%T", backend); got != want {
			t.Fatalf("%q: got %s, want %s", name, got, want)
		}
	}
	if _, err := NewBackend("gtk"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	names := Names()
	names[0] = "changed"
	if Names()[0] != NameDialog {
		t.Fatalf("expected Names to return a copy")
	}
}

func TestAvailable(t *testing.T) {
	bin := t.TempDir()
	if err := os.WriteFile(filepath.Join(bin, "zenity"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PATH", bin)
	if !Available("Zenity") {
		t.Fatalf("expected zenity to be available")
	}
	if Available("kdialog") {
		t.Fatalf("expected kdialog to be unavailable")
	}
	if !Available("stdio") {
		t.Fatalf("expected stdio to always be available")
	}
	if Available("gtk") {
		t.Fatalf("expected unknown backend to be unavailable")
	}
}

func TestDefaultBackendHonorsOverrideAndConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	path, err := config.Path()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	cfg := config.Config{
		Backend: "dialog",
		Zenity:  config.ZenityConfig{Icon: "warning", Timeout: 9},
		Dialog:  config.DialogConfig{Backtitle: "Setup", Width: 70},
	}
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	t.Setenv("DIALOG", "ZENITY")
	z, ok := DefaultBackend().(*Zenity)
	if !ok {
		t.Fatalf("expected zenity from override")
	}
	if z.icon == nil || *z.icon != "warning" || z.timeout == nil || *z.timeout != 9 {
		t.Fatalf("expected config settings on zenity, got %#v", z)
	}
	if z.width != nil || z.height != nil {
		t.Fatalf("expected unset sizes to stay unset, got %#v", z)
	}

	t.Setenv("DIALOG", "")
	d, ok := DefaultBackend().(*Dialog)
	if !ok {
		t.Fatalf("expected dialog from config preference")
	}
	if d.backtitle == nil || *d.backtitle != "Setup" || d.width != 70 || d.height != 0 {
		t.Fatalf("expected config settings on dialog, got %#v", d)
	}
}

func TestDefaultBackendFallsBackToStdio(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PATH", t.TempDir())
	t.Setenv("DIALOG", "")
	t.Setenv("XDG_CURRENT_DESKTOP", "")
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	if _, ok := DefaultBackend().(*Stdio); !ok {
		t.Fatalf("expected stdio fallback")
	}
}

func TestDefaultBackendIgnoresBrokenConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	SetLogger(nil)
	t.Cleanup(func() { SetLogger(newLogger()) })
	path := filepath.Join(tmp, "dialog", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("backend = = \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("DIALOG", "kdialog")
	if _, ok := DefaultBackend().(*KDialog); !ok {
		t.Fatalf("expected override to apply despite broken config")
	}
}

func TestNewConfiguredBackend(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	path, err := config.Path()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if err := config.Save(path, config.Config{KDialog: config.KDialogConfig{Icon: "help"}}); err != nil {
		t.Fatalf("save config: %v", err)
	}
	backend, err := NewConfiguredBackend("kdialog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k := backend.(*KDialog)
	if k.icon == nil || *k.icon != "help" {
		t.Fatalf("expected icon from config, got %#v", k)
	}
	if _, err := NewConfiguredBackend("unknown"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
