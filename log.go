// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = newLogger()

func newLogger() *log.Logger {
	level := log.WarnLevel
	if os.Getenv("DIALOG_DEBUG") != "" {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "dialog",
		Level:  level,
	})
}

// SetLogger replaces the diagnostics logger. Passing nil discards all
// diagnostics. It must not be called while dialogs are being shown.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
