// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package osutil

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// PathMax is Linux's PATH_MAX: the size of the longest path the kernel accepts,
// including the terminating NUL byte.
const PathMax = 4096

// Flags for [OpenPath].
const (
	O_NOFOLLOW  = unix.O_NOFOLLOW
	O_DIRECTORY = unix.O_DIRECTORY
)

// AT_FDCWD is the directory file descriptor that makes [OpenPath]
// resolve relative paths against the working directory.
const AT_FDCWD = unix.AT_FDCWD

// Readlink returns the destination of the symbolic link at path.
// Unlike [os.Readlink], it never allocates past [PathMax]:
// a destination that does not fit fails with ENAMETOOLONG
// instead of being truncated.
func Readlink(path string) (string, error) {
	var buf [PathMax]byte
	n, err := ignoringEINTR(func() (int, error) {
		return unix.Readlink(path, buf[:])
	})
	if err != nil {
		return "", &os.PathError{Op: "readlink", Path: path, Err: err}
	}
	if n >= len(buf) {
		return "", &os.PathError{Op: "readlink", Path: path, Err: unix.ENAMETOOLONG}
	}
	return string(buf[:n]), nil
}

// OpenPath opens path relative to the directory dirfd
// as an O_PATH descriptor: one that can name the file but not read it.
// flags is OR'd with O_PATH|O_CLOEXEC.
// The returned descriptor must be released with [Close].
func OpenPath(dirfd int, path string, flags int) (int, error) {
	fd, err := ignoringEINTR(func() (int, error) {
		return unix.Openat(dirfd, path, unix.O_PATH|unix.O_CLOEXEC|flags, 0)
	})
	if err != nil {
		return -1, &os.PathError{Op: "openat", Path: path, Err: err}
	}
	return fd, nil
}

// FDPath returns the absolute path the kernel associates with an open file descriptor.
// Every symbolic link traversed when the descriptor was opened has been resolved.
func FDPath(fd int) (string, error) {
	return Readlink("/proc/self/fd/" + strconv.Itoa(fd))
}

// ExecutablePath returns the absolute path of the running executable
// as reported by the kernel.
func ExecutablePath() (string, error) {
	return Readlink("/proc/self/exe")
}

// Close closes a file descriptor returned by [OpenPath].
func Close(fd int) error {
	if err := unix.Close(fd); err != nil {
		return &os.PathError{Op: "close", Path: "/proc/self/fd/" + strconv.Itoa(fd), Err: err}
	}
	return nil
}

// Exec replaces the current process image with the program at path.
// It only returns if the replacement failed.
func Exec(path string, argv, envv []string) error {
	err := unix.Exec(path, argv, envv)
	return &os.PathError{Op: "execve", Path: path, Err: err}
}
