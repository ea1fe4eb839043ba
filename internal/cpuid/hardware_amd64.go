// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package cpuid

// Every x86-64 processor implements CPUID.
func hasCPUID() bool {
	return true
}
