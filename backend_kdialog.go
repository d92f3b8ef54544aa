// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import "github.com/shayne/dialog/internal/hostcmd"

const kdialogCommand = "kdialog"

// kdialog has no fixed mapping from buttons to exit statuses: 0 and 1 mean
// Yes and No for --yesno but OK and Cancel for --inputbox and --password.
// Each mode therefore gets its own table.
var kdialogExits = map[string]exitTable{
	"--msgbox":   {0: accepted, 1: cancelled},
	"--inputbox": {0: accepted, 1: cancelled},
	"--password": {0: accepted, 1: cancelled},
	"--yesno":    {0: accepted, 1: rejected},
}

// KDialog shows KDE dialog boxes with the external kdialog program.
type KDialog struct {
	icon   *string
	runner hostcmd.Runner
}

// NewKDialog creates a KDialog backend without any settings.
func NewKDialog() *KDialog {
	return &KDialog{runner: hostcmd.ExecRunner{}}
}

// SetIcon sets the titlebar and taskbar icon: a name from the icon theme,
// such as error or info, or the path of an image.
func (k *KDialog) SetIcon(icon string) {
	k.icon = &icon
}

func (k *KDialog) ShowMessage(m *Message) error {
	_, err := k.show(m.title, "--msgbox", m.text)
	return err
}

func (k *KDialog) ShowInput(in *Input) (string, bool, error) {
	var extra []string
	if in.defValue != nil {
		extra = append(extra, *in.defValue)
	}
	o, res, err := k.showResult(in.title, "--inputbox", in.text, extra...)
	if err != nil {
		return "", false, err
	}
	return textResult(kdialogCommand, o, res.Stdout)
}

func (k *KDialog) ShowPassword(p *Password) (string, bool, error) {
	o, res, err := k.showResult(p.title, "--password", p.text)
	if err != nil {
		return "", false, err
	}
	return textResult(kdialogCommand, o, res.Stdout)
}

func (k *KDialog) ShowQuestion(q *Question) (Choice, error) {
	o, err := k.show(q.title, "--yesno", q.text)
	if err != nil {
		return Cancel, err
	}
	return choiceFor(o), nil
}

func (k *KDialog) show(title *string, mode, text string, extra ...string) (outcome, error) {
	o, _, err := k.showResult(title, mode, text, extra...)
	return o, err
}

func (k *KDialog) showResult(title *string, mode, text string, extra ...string) (outcome, hostcmd.Result, error) {
	res, err := runTool(k.runner, mode, hostcmd.Command{
		Name:   kdialogCommand,
		Args:   k.args(title, mode, text, extra...),
		Stdout: hostcmd.Capture,
		Stderr: hostcmd.Capture,
	})
	if err != nil {
		return 0, res, err
	}
	o, err := kdialogExits[mode].classify(kdialogCommand, res)
	return o, res, err
}

func (k *KDialog) args(title *string, mode, text string, extra ...string) []string {
	var args []string
	if k.icon != nil {
		args = append(args, "--icon", *k.icon)
	}
	if title != nil {
		args = append(args, "--title", *title)
	}
	args = append(args, mode, text)
	return append(args, extra...)
}
