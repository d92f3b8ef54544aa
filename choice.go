// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// Choice is the answer to a Question.
type Choice int

const (
	Yes Choice = iota
	No
	// Cancel means the dialog was dismissed without an answer.
	Cancel
)

func (c Choice) String() string {
	switch c {
	case Yes:
		return "yes"
	case No:
		return "no"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}
