// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package system

// Architecture is the name of an instruction set architecture of a [System].
// The empty string is treated the same as [Unknown].
type Architecture string

// IsUnknown reports whether arch is the empty string or [Unknown].
func (arch Architecture) IsUnknown() bool {
	return arch == "" || arch == Unknown
}

// String returns string(arch) or [Unknown] if arch is the empty string.
func (arch Architecture) String() string {
	if arch == "" {
		return Unknown
	}
	return string(arch)
}

// Is32Bit reports whether arch is a 32-bit x86 instruction set.
func (arch Architecture) Is32Bit() bool {
	return arch.isX8632()
}

// Is64Bit reports whether arch is a 64-bit x86 instruction set.
func (arch Architecture) Is64Bit() bool {
	return arch.isX8664()
}

// IsX86 reports whether arch is in the x86 family of instruction set architectures,
// including both 32-bit and 64-bit x86.
func (arch Architecture) IsX86() bool {
	return arch.isX8632() || arch.isX8664()
}

// isX8632 reports whether arch is a 32-bit Intel-based instruction set.
func (arch Architecture) isX8632() bool {
	return arch == "i386" ||
		arch == "i486" ||
		arch == "i586" ||
		arch == "i686" ||
		arch == "i786" ||
		arch == "i886" ||
		arch == "i986"
}

// isX8664 reports whether arch is a 64-bit Intel-based instruction set.
func (arch Architecture) isX8664() bool {
	return arch == "x86_64" ||
		arch == "amd64" ||
		arch == "x86_64h"
}

// ForGOARCH returns the architecture name for a Go GOARCH value.
// Unrecognized values map to [Unknown].
func ForGOARCH(goarch string) Architecture {
	switch goarch {
	case "386":
		return "i686"
	case "amd64":
		return "x86_64"
	case "arm":
		return "arm"
	case "arm64":
		return "aarch64"
	case "riscv64":
		return "riscv64"
	default:
		return Unknown
	}
}
