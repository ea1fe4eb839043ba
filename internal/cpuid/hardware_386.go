// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package cpuid

// hasCPUID reports whether the ID flag (bit 21) of EFLAGS can be toggled,
// which is how processors that predate CPUID are told apart.
// It is implemented in cpuid_386.s.
func hasCPUID() bool
