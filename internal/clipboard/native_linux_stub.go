// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !clipboard_x11

package clipboard

// writeNative needs the clipboard_x11 build tag on Linux, which links
// against X11.
func writeNative(string) error {
	return ErrUnavailable
}
