// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build hwcaps_quiet

package main

import (
	"io"

	"zombiezen.com/go/log"
)

// initLogging discards all diagnostics.
// Failures are reported only through the exit status.
func initLogging() {
	log.SetDefault(log.New(io.Discard, "", 0, nil))
}
