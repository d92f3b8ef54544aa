// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// Message is a message box with a single OK button.
type Message struct {
	text  string
	title *string
}

// NewMessage creates a message box with the given text.
func NewMessage(text string) *Message {
	return &Message{text: text}
}

// WithTitle sets the title, replacing any previous one.
func (m *Message) WithTitle(title string) *Message {
	m.title = &title
	return m
}

func (m *Message) Text() string { return m.text }

func (m *Message) Title() (string, bool) { return optional(m.title) }

// Show displays the message box with the default backend.
func (m *Message) Show() error {
	return m.ShowWith(DefaultBackend())
}

// ShowWith displays the message box with backend.
func (m *Message) ShowWith(backend Backend) error {
	return backend.ShowMessage(m)
}

// Input is a dialog box with a single-line text field.
type Input struct {
	text     string
	title    *string
	defValue *string
}

// NewInput creates an input box with the given text.
func NewInput(text string) *Input {
	return &Input{text: text}
}

// WithTitle sets the title, replacing any previous one.
func (in *Input) WithTitle(title string) *Input {
	in.title = &title
	return in
}

// WithDefault sets the value used when the user submits an empty field.
// Graphical backends pre-fill the field with it instead.
func (in *Input) WithDefault(value string) *Input {
	in.defValue = &value
	return in
}

func (in *Input) Text() string { return in.text }

func (in *Input) Title() (string, bool) { return optional(in.title) }

func (in *Input) Default() (string, bool) { return optional(in.defValue) }

// Show displays the input box with the default backend. ok is false when
// the user cancelled the dialog.
func (in *Input) Show() (value string, ok bool, err error) {
	return in.ShowWith(DefaultBackend())
}

// ShowWith displays the input box with backend.
func (in *Input) ShowWith(backend Backend) (value string, ok bool, err error) {
	return backend.ShowInput(in)
}

// Password is a dialog box with a masked text field.
type Password struct {
	text  string
	title *string
}

// NewPassword creates a password box with the given text.
func NewPassword(text string) *Password {
	return &Password{text: text}
}

// WithTitle sets the title, replacing any previous one.
func (p *Password) WithTitle(title string) *Password {
	p.title = &title
	return p
}

func (p *Password) Text() string { return p.text }

func (p *Password) Title() (string, bool) { return optional(p.title) }

// Show displays the password box with the default backend. ok is false
// when the user cancelled the dialog.
func (p *Password) Show() (value string, ok bool, err error) {
	return p.ShowWith(DefaultBackend())
}

// ShowWith displays the password box with backend.
func (p *Password) ShowWith(backend Backend) (value string, ok bool, err error) {
	return backend.ShowPassword(p)
}

// Question is a dialog box with yes and no buttons.
type Question struct {
	text  string
	title *string
}

// NewQuestion creates a question box with the given text.
func NewQuestion(text string) *Question {
	return &Question{text: text}
}

// WithTitle sets the title, replacing any previous one.
func (q *Question) WithTitle(title string) *Question {
	q.title = &title
	return q
}

func (q *Question) Text() string { return q.text }

func (q *Question) Title() (string, bool) { return optional(q.title) }

// Show displays the question with the default backend.
func (q *Question) Show() (Choice, error) {
	return q.ShowWith(DefaultBackend())
}

// ShowWith displays the question with backend.
func (q *Question) ShowWith(backend Backend) (Choice, error) {
	return backend.ShowQuestion(q)
}

func optional(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	return *value, true
}
