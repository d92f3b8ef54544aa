// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var stdin struct {
	once   sync.Once
	reader *bufio.Reader
}

// StdinReader returns the buffered reader shared by every prompt that reads
// from os.Stdin, so lines buffered by one prompt remain visible to the next.
func StdinReader() *bufio.Reader {
	stdin.once.Do(func() {
		stdin.reader = bufio.NewReader(os.Stdin)
	})
	return stdin.reader
}

// ReadLine reads one line without its terminator. Input ending without a
// newline is returned as the final line.
func ReadLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PrintHeading writes title followed by an underline of the same width.
func PrintHeading(out io.Writer, title string, styled bool) error {
	underline := strings.Repeat("=", lipgloss.Width(title))
	if styled {
		title = HeadingStyle.Render(title)
	}
	_, err := fmt.Fprintf(out, "%s\n%s\n", title, underline)
	return err
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// ReadSecret reads one line from the terminal file with echo turned off.
// End of input yields an empty line.
func ReadSecret(file *os.File) (string, error) {
	data, err := term.ReadPassword(int(file.Fd()))
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r"), nil
}

// Interactive reports whether both ends of a prompt are terminals.
func Interactive(in io.Reader, out io.Writer) bool {
	return IsTerminal(in) && IsTerminal(out)
}
