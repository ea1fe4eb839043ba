// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build 386 || amd64

package hwcaps

import (
	"runtime"

	"zb.256lights.llc/hwcaps/internal/cpuid"
	"zb.256lights.llc/hwcaps/internal/system"
)

// Host returns the [Detector] for the architecture this program was built for,
// backed by the processor's CPUID instruction.
func Host() (Detector, error) {
	return NewDetector(system.ForGOARCH(runtime.GOARCH), cpuid.Hardware{})
}
