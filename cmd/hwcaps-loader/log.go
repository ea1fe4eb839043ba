// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build !hwcaps_quiet

package main

import (
	"os"

	"zombiezen.com/go/log"
)

func initLogging() {
	minLogLevel := log.Info
	if debugLogging {
		minLogLevel = log.Debug
	}
	log.SetDefault(&log.LevelFilter{
		Min:    minLogLevel,
		Output: log.New(os.Stderr, "hwcaps-loader: ", 0, nil),
	})
}
