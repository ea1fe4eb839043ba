// Copyright 2025 The zb Authors
// Copyright 2009 The Go Authors. All rights reserved.
// SPDX-License-Identifier: BSD 3-Clause
//
// ignoringEINTR is adapted from ignoringEINTR2
// in https://cs.opensource.google/go/go/+/refs/tags/go1.24.1:src/os/file_posix.go

package osutil

import "syscall"

// ignoringEINTR makes a function call and repeats it if it returns an
// EINTR error.
func ignoringEINTR[T any](fn func() (T, error)) (T, error) {
	for {
		v, err := fn()
		if err != syscall.EINTR {
			return v, err
		}
	}
}
