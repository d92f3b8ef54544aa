// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hostcmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Stream selects how a standard stream of a child process is wired.
type Stream int

const (
	// Null connects the stream to the null device.
	Null Stream = iota
	// Inherit shares the stream with the current process.
	Inherit
	// Capture collects the stream into the Result. Not valid for stdin.
	Capture
)

// Command describes one external program invocation.
type Command struct {
	Name   string
	Args   []string
	Stdin  Stream
	Stdout Stream
	Stderr Stream
}

// Result is the observed outcome of a finished command.
type Result struct {
	Code     int
	Signaled bool
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the command exited normally with status zero.
func (r Result) Success() bool {
	return !r.Signaled && r.Code == 0
}

// Runner runs a command to completion.
type Runner interface {
	Run(cmd Command) (Result, error)
}

// ExecRunner runs commands as child processes of the current process.
type ExecRunner struct{}

// Run starts the command and waits for it. A non-zero exit status is not an
// error; it is reported through Result. Errors are returned only when the
// process could not be started or waited for.
func (ExecRunner) Run(c Command) (Result, error) {
	cmd := exec.Command(c.Name, c.Args...)
	var stdout, stderr bytes.Buffer
	if c.Stdin == Inherit {
		cmd.Stdin = os.Stdin
	}
	switch c.Stdout {
	case Inherit:
		cmd.Stdout = os.Stdout
	case Capture:
		cmd.Stdout = &stdout
	}
	switch c.Stderr {
	case Inherit:
		cmd.Stderr = os.Stderr
	case Capture:
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf("failed to run %s: %w", c.Name, err)
		}
	}
	if cmd.ProcessState == nil {
		return Result{}, fmt.Errorf("failed to run %s: no process state", c.Name)
	}
	res := Result{
		Code:   cmd.ProcessState.ExitCode(),
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	// ExitCode is -1 when the process was killed by a signal.
	if res.Code == -1 {
		res.Signaled = true
	}
	return res, nil
}
