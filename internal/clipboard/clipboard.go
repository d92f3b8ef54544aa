// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clipboard

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

var ErrUnavailable = errors.New("clipboard unavailable")

// WriteText puts text on the system clipboard. Under WSL it falls back to
// the Windows clipboard when the native one cannot be reached.
func WriteText(text string) error {
	err := writeNative(text)
	if err == nil {
		return nil
	}
	if isWSL() {
		if wslErr := writeWSLText(text); wslErr == nil {
			return nil
		}
	}
	return err
}

func isWSL() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	if os.Getenv("WSL_DISTRO_NAME") != "" || os.Getenv("WSL_INTEROP") != "" {
		return true
	}
	if data, err := os.ReadFile("/proc/version"); err == nil {
		version := strings.ToLower(string(data))
		if strings.Contains(version, "microsoft") || strings.Contains(version, "wsl") {
			return true
		}
	}
	return false
}

func writeWSLText(text string) error {
	var lastErr error = ErrUnavailable
	for _, name := range []string{"clip.exe", "clip"} {
		cmd := exec.Command(name)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
