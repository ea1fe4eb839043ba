// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build !linux

package main

import (
	"context"
	"os"
	"runtime"

	"zb.256lights.llc/hwcaps/internal/loader"
	"zombiezen.com/go/log"
)

func main() {
	initLogging()
	log.Errorf(context.Background(), "%s is not supported", runtime.GOOS)
	os.Exit(int(loader.InternalFault))
}
