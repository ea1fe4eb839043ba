// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package loader

// WorkingDirectory is the directory file descriptor
// that makes [OS.OpenNoFollow] resolve relative paths
// against the process's working directory.
// It has the same value as Linux's AT_FDCWD.
const WorkingDirectory = -100

// OS is the set of operating system primitives the loader is built on.
// Errors should wrap a [syscall.Errno] where one is available.
type OS interface {
	// ExecutablePath returns the canonical path of the running executable.
	ExecutablePath() (string, error)
	// OpenDir opens the directory at the absolute path
	// for use as the dirfd argument of OpenNoFollow.
	OpenDir(path string) (int, error)
	// OpenNoFollow opens path relative to dirfd without reading it
	// and without following a symbolic link in the final path component.
	OpenNoFollow(dirfd int, path string) (int, error)
	// CanonicalPath returns the absolute path of an open file descriptor.
	CanonicalPath(fd int) (string, error)
	// Close releases a descriptor returned by OpenDir or OpenNoFollow.
	Close(fd int) error
	// Exec replaces the current process image with the program at path.
	// It does not return if the replacement succeeds.
	Exec(path string, argv, envv []string) error
}
