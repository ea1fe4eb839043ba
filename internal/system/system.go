// Copyright 2024 The zb Authors
// SPDX-License-Identifier: MIT

// Package system names the platform the process is running on.
package system

import (
	"runtime"
	"strings"
)

const Unknown = "unknown"

// System represents a platform.
type System struct {
	Arch Architecture
	OS   OS
}

// Current returns a [System] value for the current process's execution environment.
func Current() System {
	sys := System{Arch: ForGOARCH(runtime.GOARCH)}
	switch runtime.GOOS {
	case "linux", "android":
		sys.OS = "linux"
	case "darwin":
		sys.OS = "macos"
	case "":
		sys.OS = Unknown
	default:
		sys.OS = OS(runtime.GOOS)
	}
	return sys
}

// String returns sys as an "<arch>-<os>" pair.
func (sys System) String() string {
	return sys.Arch.String() + "-" + sys.OS.String()
}

// OS is the name of an operating system of a [System].
// The empty string is treated the same as [Unknown].
type OS string

// IsUnknown reports whether os is the empty string or [Unknown].
func (os OS) IsUnknown() bool {
	return os == "" || os == Unknown
}

// String returns string(os) or [Unknown] if os is the empty string.
func (os OS) String() string {
	if os == "" {
		return Unknown
	}
	return string(os)
}

// IsLinux reports whether os indicates Linux.
func (os OS) IsLinux() bool {
	return strings.HasPrefix(string(os), "linux")
}
