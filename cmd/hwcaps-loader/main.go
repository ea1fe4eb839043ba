// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build linux

// hwcaps-loader replaces itself with the variant of the command it was invoked as
// that best matches the processor's capabilities.
//
// Install it in place of a program, for example as /usr/bin/foo,
// and install the variants as /usr/hwcaps/<arch-name>/bin/foo,
// where <arch-name> is one of i386, i486, i586, i686,
// x86-64-v1, x86-64-v2, x86-64-v3, or x86-64-v4.
// The loader tries each variant from the best supported tier downward
// and executes the first one that exists,
// passing its arguments and environment through unchanged.
//
// If no variant can be executed, the loader exits with a status from 200 to 243
// that identifies the failure.
package main

import (
	"context"
	"fmt"
	"os"

	"zb.256lights.llc/hwcaps/internal/hwcaps"
	"zb.256lights.llc/hwcaps/internal/loader"
	"zombiezen.com/go/log"
)

func main() {
	initLogging()
	ctx := context.Background()
	os.Exit(int(run(ctx)))
}

func run(ctx context.Context) (code loader.ExitCode) {
	defer func() {
		if v := recover(); v != nil {
			log.Errorf(ctx, "%v", &loader.Error{
				Code: loader.InternalFault,
				Msg:  "internal fault",
				Err:  fmt.Errorf("panic: %v", v),
			})
			code = loader.InternalFault
		}
	}()

	det, err := hwcaps.Host()
	if err != nil {
		log.Errorf(ctx, "%v", err)
		return loader.InternalFault
	}
	err = loader.Run(ctx, loader.Linux(), det, os.Args, os.Environ(), &loader.Options{
		SelfExecGuard: selfExecGuard,
	})
	if err == nil {
		// Exec only returns on failure.
		log.Errorf(ctx, "exec returned without error")
		return loader.InternalFault
	}
	code = loader.ExitCodeOf(err)
	log.Errorf(ctx, "%v (%v)", err, code)
	return code
}
