// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"strconv"

	"github.com/shayne/dialog/internal/hostcmd"
)

const dialogCommand = "dialog"

// dialog exits with 1 for Cancel/No and 255 for Esc.
var (
	dialogBoxExits = exitTable{0: accepted, 1: cancelled, 255: cancelled}
	dialogYesNo    = exitTable{0: accepted, 1: rejected, 255: cancelled}
)

// Dialog shows text-based dialog boxes in the terminal with the external
// dialog program.
type Dialog struct {
	backtitle *string
	width     uint32
	height    uint32
	runner    hostcmd.Runner
}

// NewDialog creates a Dialog backend with automatic sizing.
func NewDialog() *Dialog {
	return &Dialog{runner: hostcmd.ExecRunner{}}
}

// SetBacktitle sets the text shown on the backdrop at the top of the screen.
func (d *Dialog) SetBacktitle(backtitle string) {
	d.backtitle = &backtitle
}

// SetWidth sets the width in characters. Zero lets dialog pick a width.
func (d *Dialog) SetWidth(width uint32) {
	d.width = width
}

// SetHeight sets the height in characters. Zero lets dialog pick a height.
func (d *Dialog) SetHeight(height uint32) {
	d.height = height
}

func (d *Dialog) ShowMessage(m *Message) error {
	res, err := d.show(m.title, "--msgbox", m.text)
	if err != nil {
		return err
	}
	_, err = dialogBoxExits.classify(dialogCommand, res)
	return err
}

func (d *Dialog) ShowInput(in *Input) (string, bool, error) {
	var extra []string
	if in.defValue != nil {
		extra = append(extra, *in.defValue)
	}
	res, err := d.show(in.title, "--inputbox", in.text, extra...)
	if err != nil {
		return "", false, err
	}
	o, err := dialogBoxExits.classify(dialogCommand, res)
	if err != nil {
		return "", false, err
	}
	value, ok, err := textResult(dialogCommand, o, res.Stderr)
	if ok && value == "" && in.defValue != nil {
		value = *in.defValue
	}
	return value, ok, err
}

func (d *Dialog) ShowPassword(p *Password) (string, bool, error) {
	res, err := d.show(p.title, "--passwordbox", p.text)
	if err != nil {
		return "", false, err
	}
	o, err := dialogBoxExits.classify(dialogCommand, res)
	if err != nil {
		return "", false, err
	}
	return textResult(dialogCommand, o, res.Stderr)
}

func (d *Dialog) ShowQuestion(q *Question) (Choice, error) {
	res, err := d.show(q.title, "--yesno", q.text)
	if err != nil {
		return Cancel, err
	}
	o, err := dialogYesNo.classify(dialogCommand, res)
	if err != nil {
		return Cancel, err
	}
	return choiceFor(o), nil
}

// show runs dialog on the terminal. The entered value, if any, is written
// by dialog to stderr, so only stderr is captured.
func (d *Dialog) show(title *string, mode, text string, extra ...string) (hostcmd.Result, error) {
	return runTool(d.runner, mode, hostcmd.Command{
		Name:   dialogCommand,
		Args:   d.args(title, mode, text, extra...),
		Stdin:  hostcmd.Inherit,
		Stdout: hostcmd.Inherit,
		Stderr: hostcmd.Capture,
	})
}

func (d *Dialog) args(title *string, mode, text string, extra ...string) []string {
	var args []string
	if d.backtitle != nil {
		args = append(args, "--backtitle", *d.backtitle)
	}
	if title != nil {
		args = append(args, "--title", *title)
	}
	args = append(args, mode, text,
		strconv.FormatUint(uint64(d.height), 10),
		strconv.FormatUint(uint64(d.width), 10))
	return append(args, extra...)
}
