// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"errors"
	"fmt"

	"github.com/shayne/dialog/internal/hostcmd"
)

var (
	// ErrInvalidUTF8 matches every *DecodeError.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 output")
	// ErrToolFailed matches every *ToolError.
	ErrToolFailed = errors.New("dialog command failed")
)

// IOError reports that a command could not be run or that reading from or
// writing to the terminal failed.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// DecodeError reports that a command printed text that is not UTF-8.
type DecodeError struct {
	Command string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("command %s produced invalid UTF-8 output", e.Command)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// ToolError reports an exit status the backend does not recognize.
type ToolError struct {
	Command  string
	Code     int
	Signaled bool
}

func (e *ToolError) Error() string {
	if e.Signaled {
		return fmt.Sprintf("command %s was terminated by a signal", e.Command)
	}
	return fmt.Sprintf("command %s failed with exit status %d", e.Command, e.Code)
}

func (e *ToolError) Is(target error) bool {
	return target == ErrToolFailed
}

func newToolError(command string, res hostcmd.Result) *ToolError {
	return &ToolError{Command: command, Code: res.Code, Signaled: res.Signaled}
}
