// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import "strings"

// ParseYesNo interprets a typed answer. ok is false for anything that is
// neither a yes nor a no, including an empty answer.
func ParseYesNo(input string) (yes bool, ok bool) {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	switch trimmed {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
