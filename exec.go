// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"strings"
	"unicode/utf8"

	"github.com/shayne/dialog/internal/hostcmd"
)

// outcome is the button a process exit status stands for.
type outcome int

const (
	accepted  outcome = iota + 1 // OK or Yes
	rejected                     // No
	cancelled                    // Cancel, Esc, closed window or timeout
)

// exitTable maps the exit statuses a tool documents for one dialog kind.
type exitTable map[int]outcome

func (t exitTable) classify(command string, res hostcmd.Result) (outcome, error) {
	if res.Signaled {
		return 0, newToolError(command, res)
	}
	o, ok := t[res.Code]
	if !ok {
		return 0, newToolError(command, res)
	}
	return o, nil
}

func runTool(runner hostcmd.Runner, mode string, cmd hostcmd.Command) (hostcmd.Result, error) {
	if runner == nil {
		runner = hostcmd.ExecRunner{}
	}
	logger.Debug("showing dialog", "command", cmd.Name, "mode", mode)
	res, err := runner.Run(cmd)
	if err != nil {
		return hostcmd.Result{}, &IOError{Op: "run " + cmd.Name, Err: err}
	}
	logger.Debug("dialog closed", "command", cmd.Name, "mode", mode, "status", res.Code, "signaled", res.Signaled)
	return res, nil
}

// decodeText converts tool output to a string, dropping the single line
// terminator the tool prints after the value.
func decodeText(command string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &DecodeError{Command: command}
	}
	text := string(data)
	if strings.HasSuffix(text, "\n") {
		text = strings.TrimSuffix(text[:len(text)-1], "\r")
	}
	return text, nil
}

func choiceFor(o outcome) Choice {
	switch o {
	case accepted:
		return Yes
	case rejected:
		return No
	default:
		return Cancel
	}
}

// textResult turns an exit outcome and the captured value into the result
// of an input or password dialog.
func textResult(command string, o outcome, data []byte) (string, bool, error) {
	if o != accepted {
		return "", false, nil
	}
	value, err := decodeText(command, data)
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
