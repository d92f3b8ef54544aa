// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStdioQuestionScripted(t *testing.T) {
	cases := []struct {
		input string
		want  Choice
	}{
		{input: "y\n", want: Yes},
		{input: "YES\n", want: Yes},
		{input: "\n", want: Cancel},
		{input: "n", want: No},
		{input: "no\r\n", want: No},
		{input: "maybe\n", want: Cancel},
		{input: "", want: Cancel},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		got, err := NewQuestion("Continue?").ShowWith(NewStdioWith(strings.NewReader(tc.input), &out))
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("input %q: got %v, want %v", tc.input, got, tc.want)
		}
		if out.String() != "Continue? [y/n]: " {
			t.Fatalf("unexpected prompt %q", out.String())
		}
	}
}

func TestStdioInputDefault(t *testing.T) {
	var out bytes.Buffer
	value, ok, err := NewInput("Your name").WithDefault("input").ShowWith(NewStdioWith(strings.NewReader("\n"), &out))
	if err != nil || !ok || value != "input" {
		t.Fatalf("expected default, got %q %v %v", value, ok, err)
	}
	if out.String() != "Your name [default: input]: " {
		t.Fatalf("unexpected prompt %q", out.String())
	}

	value, ok, err = NewInput("Your name").WithDefault("input").ShowWith(NewStdioWith(strings.NewReader("hello"), &out))
	if err != nil || !ok || value != "hello" {
		t.Fatalf("expected typed value, got %q %v %v", value, ok, err)
	}
}

func TestStdioInputWithoutDefault(t *testing.T) {
	var out bytes.Buffer
	value, ok, err := NewInput("Your name").ShowWith(NewStdioWith(strings.NewReader("\n"), &out))
	if err != nil || !ok || value != "" {
		t.Fatalf("expected empty value, got %q %v %v", value, ok, err)
	}
	if out.String() != "Your name: " {
		t.Fatalf("unexpected prompt %q", out.String())
	}
}

func TestStdioTitleHeading(t *testing.T) {
	var out bytes.Buffer
	err := NewMessage("This is a message.").WithTitle("Notice").ShowWith(NewStdioWith(strings.NewReader(""), &out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), "Notice\n======\nThis is a message.\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStdioPasswordFromPipe(t *testing.T) {
	var out bytes.Buffer
	value, ok, err := NewPassword("Password").WithTitle("Login").ShowWith(NewStdioWith(strings.NewReader("s3cret\n"), &out))
	if err != nil || !ok || value != "s3cret" {
		t.Fatalf("unexpected result %q %v %v", value, ok, err)
	}
	if strings.Contains(out.String(), "s3cret") {
		t.Fatalf("password echoed to output: %q", out.String())
	}
	if got, want := out.String(), "Login\n=====\nPassword: "; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStdioSharesBufferedInputAcrossDialogs(t *testing.T) {
	var out bytes.Buffer
	backend := NewStdioWith(strings.NewReader("alice\ny\n"), &out)
	name, ok, err := NewInput("Name").ShowWith(backend)
	if err != nil || !ok || name != "alice" {
		t.Fatalf("unexpected name %q %v %v", name, ok, err)
	}
	choice, err := NewQuestion("Sure?").ShowWith(backend)
	if err != nil || choice != Yes {
		t.Fatalf("unexpected choice %v %v", choice, err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestStdioIOErrors(t *testing.T) {
	var out bytes.Buffer
	_, err := NewQuestion("q").ShowWith(NewStdioWith(failingReader{}, &out))
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "read answer" {
		t.Fatalf("expected read error, got %v", err)
	}
	err = NewMessage("m").ShowWith(NewStdioWith(strings.NewReader(""), failingWriter{}))
	if !errors.As(err, &ioErr) || ioErr.Op != "write prompt" {
		t.Fatalf("expected write error, got %v", err)
	}
}
