// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build !(386 || amd64)

package hwcaps

import (
	"fmt"
	"runtime"

	"zb.256lights.llc/hwcaps/internal/system"
)

// Host always returns an error wrapping [ErrUnsupported]
// on architectures other than x86.
func Host() (Detector, error) {
	return nil, fmt.Errorf("detect capabilities for %v: %w", system.ForGOARCH(runtime.GOARCH), ErrUnsupported)
}
