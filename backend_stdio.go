// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/shayne/dialog/internal/tui"
)

// Stdio prints dialogs to an output stream and reads answers from an input
// stream. It is the fallback used when no dialog program is available.
type Stdio struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

// NewStdio creates a Stdio backend on the process's standard input and
// output. All Stdio backends reading os.Stdin share one buffered reader.
func NewStdio() *Stdio {
	return &Stdio{in: os.Stdin, reader: tui.StdinReader(), out: os.Stdout}
}

// NewStdioWith creates a Stdio backend that reads answers from in and
// writes prompts to out.
func NewStdioWith(in io.Reader, out io.Writer) *Stdio {
	if in == os.Stdin {
		return &Stdio{in: in, reader: tui.StdinReader(), out: out}
	}
	return &Stdio{in: in, reader: bufio.NewReader(in), out: out}
}

func (s *Stdio) ShowMessage(m *Message) error {
	w := bufio.NewWriter(s.out)
	if err := s.printTitle(w, m.title); err != nil {
		return err
	}
	fmt.Fprintln(w, m.text)
	return flush(w)
}

func (s *Stdio) ShowInput(in *Input) (string, bool, error) {
	w := bufio.NewWriter(s.out)
	if err := s.printTitle(w, in.title); err != nil {
		return "", false, err
	}
	if in.defValue != nil {
		fmt.Fprintf(w, "%s [default: %s]: ", in.text, *in.defValue)
	} else {
		fmt.Fprintf(w, "%s: ", in.text)
	}
	if err := flush(w); err != nil {
		return "", false, err
	}
	line, err := s.readLine()
	if err != nil {
		return "", false, err
	}
	if line == "" && in.defValue != nil {
		return *in.defValue, true, nil
	}
	return line, true, nil
}

// ShowPassword reads the password through a masked prompt when both streams
// are terminals and with echo turned off when only the input is one. Other
// input is read as a plain line. Input an earlier dialog already buffered
// is consumed first, so typed-ahead answers are not lost.
func (s *Stdio) ShowPassword(p *Password) (string, bool, error) {
	w := bufio.NewWriter(s.out)
	if err := s.printTitle(w, p.title); err != nil {
		return "", false, err
	}
	tty, isTTY := s.in.(*os.File)
	isTTY = isTTY && tui.IsTerminal(tty) && s.reader.Buffered() == 0
	if isTTY && tui.Interactive(s.in, s.out) {
		if err := flush(w); err != nil {
			return "", false, err
		}
		value, ok, err := tui.PromptSecret(s.in, s.out, p.text)
		if err != nil {
			return "", false, &IOError{Op: "read password", Err: err}
		}
		return value, ok, nil
	}
	fmt.Fprintf(w, "%s: ", p.text)
	if err := flush(w); err != nil {
		return "", false, err
	}
	if isTTY {
		value, err := tui.ReadSecret(tty)
		if err != nil {
			return "", false, &IOError{Op: "read password", Err: err}
		}
		// The newline typed by the user was not echoed.
		fmt.Fprintln(w)
		if err := flush(w); err != nil {
			return "", false, err
		}
		return value, true, nil
	}
	line, err := s.readLine()
	if err != nil {
		return "", false, err
	}
	return line, true, nil
}

func (s *Stdio) ShowQuestion(q *Question) (Choice, error) {
	w := bufio.NewWriter(s.out)
	if err := s.printTitle(w, q.title); err != nil {
		return Cancel, err
	}
	fmt.Fprintf(w, "%s [y/n]: ", q.text)
	if err := flush(w); err != nil {
		return Cancel, err
	}
	line, err := s.readLine()
	if err != nil {
		return Cancel, err
	}
	yes, ok := tui.ParseYesNo(line)
	switch {
	case !ok:
		return Cancel, nil
	case yes:
		return Yes, nil
	default:
		return No, nil
	}
}

func (s *Stdio) printTitle(w io.Writer, title *string) error {
	if title == nil {
		return nil
	}
	if err := tui.PrintHeading(w, *title, tui.StyleEnabled(s.out)); err != nil {
		return &IOError{Op: "write prompt", Err: err}
	}
	return nil
}

func (s *Stdio) readLine() (string, error) {
	line, err := tui.ReadLine(s.reader)
	if err != nil {
		return "", &IOError{Op: "read answer", Err: err}
	}
	return line, nil
}

func flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return &IOError{Op: "write prompt", Err: err}
	}
	return nil
}
