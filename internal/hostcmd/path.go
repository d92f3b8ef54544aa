// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hostcmd

import (
	"os"
	"path/filepath"
	"runtime"
)

// Installed reports whether an executable called name exists in any
// directory of pathList, a list in the format of the PATH variable.
func Installed(name, pathList string) bool {
	if name == "" {
		return false
	}
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}
		for _, candidate := range candidates(name) {
			if isExecutable(filepath.Join(dir, candidate)) {
				return true
			}
		}
	}
	return false
}

// InstalledOnPath is Installed over the PATH of the current process.
func InstalledOnPath(name string) bool {
	return Installed(name, os.Getenv("PATH"))
}

func candidates(name string) []string {
	if runtime.GOOS == "windows" {
		return []string{name, name + ".exe"}
	}
	return []string{name}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
