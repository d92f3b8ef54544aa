// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"strconv"

	"github.com/shayne/dialog/internal/hostcmd"
)

const zenityCommand = "zenity"

// zenity exits with 1 for Cancel/No or a closed window and 5 on timeout.
var (
	zenityBoxExits = exitTable{0: accepted, 1: cancelled, 5: cancelled}
	zenityQuestion = exitTable{0: accepted, 1: rejected, 5: cancelled}
)

// Zenity shows GTK dialog boxes with the external zenity program.
type Zenity struct {
	icon    *string
	width   *uint32
	height  *uint32
	timeout *uint32
	runner  hostcmd.Runner
}

// NewZenity creates a Zenity backend without any settings.
func NewZenity() *Zenity {
	return &Zenity{runner: hostcmd.ExecRunner{}}
}

// SetIcon sets the window icon: one of error, info, question or warning,
// or the path of an image.
func (z *Zenity) SetIcon(icon string) {
	z.icon = &icon
}

// SetWidth sets the width in pixels.
func (z *Zenity) SetWidth(width uint32) {
	z.width = &width
}

// SetHeight sets the height in pixels.
func (z *Zenity) SetHeight(height uint32) {
	z.height = &height
}

// SetTimeout closes dialogs after the given number of seconds. A timeout
// counts as a cancelled dialog.
func (z *Zenity) SetTimeout(seconds uint32) {
	z.timeout = &seconds
}

func (z *Zenity) ShowMessage(m *Message) error {
	res, err := z.show(m.title, "--info", "--text", m.text)
	if err != nil {
		return err
	}
	_, err = zenityBoxExits.classify(zenityCommand, res)
	return err
}

func (z *Zenity) ShowInput(in *Input) (string, bool, error) {
	args := []string{"--text", in.text}
	if in.defValue != nil {
		args = append(args, "--entry-text", *in.defValue)
	}
	res, err := z.show(in.title, "--entry", args...)
	if err != nil {
		return "", false, err
	}
	o, err := zenityBoxExits.classify(zenityCommand, res)
	if err != nil {
		return "", false, err
	}
	return textResult(zenityCommand, o, res.Stdout)
}

// ShowPassword shows the prompt text in the window title, as "title: text"
// when a title is set, since zenity's password dialog has no text of its
// own.
func (z *Zenity) ShowPassword(p *Password) (string, bool, error) {
	title := p.text
	if p.title != nil {
		title = *p.title + ": " + p.text
	}
	res, err := z.show(&title, "--password")
	if err != nil {
		return "", false, err
	}
	o, err := zenityBoxExits.classify(zenityCommand, res)
	if err != nil {
		return "", false, err
	}
	return textResult(zenityCommand, o, res.Stdout)
}

func (z *Zenity) ShowQuestion(q *Question) (Choice, error) {
	res, err := z.show(q.title, "--question", "--text", q.text)
	if err != nil {
		return Cancel, err
	}
	o, err := zenityQuestion.classify(zenityCommand, res)
	if err != nil {
		return Cancel, err
	}
	return choiceFor(o), nil
}

func (z *Zenity) show(title *string, mode string, modeArgs ...string) (hostcmd.Result, error) {
	return runTool(z.runner, mode, hostcmd.Command{
		Name:   zenityCommand,
		Args:   z.args(title, mode, modeArgs...),
		Stdout: hostcmd.Capture,
		Stderr: hostcmd.Capture,
	})
}

func (z *Zenity) args(title *string, mode string, modeArgs ...string) []string {
	var args []string
	if z.icon != nil {
		args = append(args, "--window-icon", *z.icon)
	}
	if z.width != nil {
		args = append(args, "--width", strconv.FormatUint(uint64(*z.width), 10))
	}
	if z.height != nil {
		args = append(args, "--height", strconv.FormatUint(uint64(*z.height), 10))
	}
	if z.timeout != nil {
		args = append(args, "--timeout", strconv.FormatUint(uint64(*z.timeout), 10))
	}
	if title != nil {
		args = append(args, "--title", *title)
	}
	args = append(args, mode)
	return append(args, modeArgs...)
}
