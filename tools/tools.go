// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tools

// Package tools pins the versions of the development tools used to keep
// license headers and the dependency report current:
//
//	go run github.com/google/addlicense -c AUTHORS -l bsd .
//	go run github.com/tailscale/depaware --update github.com/shayne/dialog/cmd/dialog
package tools

import (
	_ "github.com/google/addlicense"
	_ "github.com/tailscale/depaware/depaware"
)
