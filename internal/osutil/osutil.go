// Copyright 2024 The zb Authors
// SPDX-License-Identifier: MIT

// Package osutil wraps the Linux system calls used to resolve and execute binaries.
// Errors are returned as [*os.PathError] values wrapping a [syscall.Errno].
package osutil
