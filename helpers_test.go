// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"reflect"
	"testing"

	"github.com/shayne/dialog/internal/hostcmd"
)

type fakeRunner struct {
	result hostcmd.Result
	err    error
	calls  []hostcmd.Command
}

func (f *fakeRunner) Run(cmd hostcmd.Command) (hostcmd.Result, error) {
	f.calls = append(f.calls, cmd)
	return f.result, f.err
}

func (f *fakeRunner) lastCall(t *testing.T) hostcmd.Command {
	t.Helper()
	if len(f.calls) == 0 {
		t.Fatalf("expected a command to be run")
	}
	return f.calls[len(f.calls)-1]
}

func exitWith(code int) *fakeRunner {
	return &fakeRunner{result: hostcmd.Result{Code: code}}
}

func stdoutWith(code int, stdout string) *fakeRunner {
	return &fakeRunner{result: hostcmd.Result{Code: code, Stdout: []byte(stdout)}}
}

func stderrWith(code int, stderr string) *fakeRunner {
	return &fakeRunner{result: hostcmd.Result{Code: code, Stderr: []byte(stderr)}}
}

func signaled() *fakeRunner {
	return &fakeRunner{result: hostcmd.Result{Code: -1, Signaled: true}}
}

func assertArgs(t *testing.T, cmd hostcmd.Command, name string, want ...string) {
	t.Helper()
	if cmd.Name != name {
		t.Fatalf("expected command %s, got %s", name, cmd.Name)
	}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Fatalf("unexpected args:\n got: %q\nwant: %q", cmd.Args, want)
	}
}
