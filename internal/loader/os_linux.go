// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package loader

import "zb.256lights.llc/hwcaps/internal/osutil"

// Linux returns the [OS] implementation for Linux.
// Descriptor paths are read back through /proc/self/fd.
func Linux() OS {
	return linuxOS{}
}

type linuxOS struct{}

func (linuxOS) ExecutablePath() (string, error) {
	return osutil.ExecutablePath()
}

func (linuxOS) OpenDir(path string) (int, error) {
	return osutil.OpenPath(osutil.AT_FDCWD, path, osutil.O_DIRECTORY)
}

func (linuxOS) OpenNoFollow(dirfd int, path string) (int, error) {
	if dirfd == WorkingDirectory {
		dirfd = osutil.AT_FDCWD
	}
	return osutil.OpenPath(dirfd, path, osutil.O_NOFOLLOW)
}

func (linuxOS) CanonicalPath(fd int) (string, error) {
	return osutil.FDPath(fd)
}

func (linuxOS) Close(fd int) error {
	return osutil.Close(fd)
}

func (linuxOS) Exec(path string, argv, envv []string) error {
	return osutil.Exec(path, argv, envv)
}
