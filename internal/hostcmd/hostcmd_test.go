// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hostcmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestInstalledFindsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	empty := t.TempDir()
	bin := t.TempDir()
	writeFile(t, filepath.Join(bin, "zenity"), 0o755)
	writeFile(t, filepath.Join(bin, "kdialog"), 0o644)
	if err := os.Mkdir(filepath.Join(bin, "dialog"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	pathList := strings.Join([]string{empty, "", bin}, string(os.PathListSeparator))

	if !Installed("zenity", pathList) {
		t.Fatalf("expected zenity to be found")
	}
	if Installed("kdialog", pathList) {
		t.Fatalf("expected non-executable kdialog to be ignored")
	}
	if Installed("dialog", pathList) {
		t.Fatalf("expected directory named dialog to be ignored")
	}
	if Installed("missing", pathList) {
		t.Fatalf("expected missing tool not to be found")
	}
	if Installed("", pathList) {
		t.Fatalf("expected empty name not to be found")
	}
}

func TestInstalledOnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	bin := t.TempDir()
	writeFile(t, filepath.Join(bin, "dialog"), 0o755)
	t.Setenv("PATH", bin)
	if !InstalledOnPath("dialog") {
		t.Fatalf("expected dialog on PATH")
	}
	if InstalledOnPath("zenity") {
		t.Fatalf("expected zenity absent from PATH")
	}
}

func TestExecRunnerCapturesOutputAndStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	res, err := ExecRunner{}.Run(Command{
		Name:   "sh",
		Args:   []string{"-c", "printf out; printf err >&2; exit 3"},
		Stdout: Capture,
		Stderr: Capture,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Code != 3 || res.Signaled || res.Success() {
		t.Fatalf("unexpected status: %#v", res)
	}
	if string(res.Stdout) != "out" || string(res.Stderr) != "err" {
		t.Fatalf("unexpected output: stdout=%q stderr=%q", res.Stdout, res.Stderr)
	}
}

func TestExecRunnerReportsSignal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	res, err := ExecRunner{}.Run(Command{Name: "sh", Args: []string{"-c", "kill -9 $$"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Signaled || res.Success() {
		t.Fatalf("expected signaled result, got %#v", res)
	}
}

func TestExecRunnerMissingProgram(t *testing.T) {
	_, err := ExecRunner{}.Run(Command{Name: "definitely-not-a-dialog-tool"})
	if err == nil {
		t.Fatalf("expected start error")
	}
	if !strings.Contains(err.Error(), "failed to run definitely-not-a-dialog-tool") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func writeFile(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), mode); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}
