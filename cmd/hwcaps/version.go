// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
	"zb.256lights.llc/hwcaps/internal/hwcaps"
	"zb.256lights.llc/hwcaps/internal/system"
	"zombiezen.com/go/log"
)

// version is the version string filled in by the linker (e.g. "1.2.3").
var version string

func newVersionCommand() *cobra.Command {
	c := &cobra.Command{
		Use:                   "version",
		Short:                 "show version information",
		DisableFlagsInUseLine: true,
		Args:                  cobra.NoArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runVersion(cmd.Context(), os.Stdout)
	}
	return c
}

func runVersion(ctx context.Context, w io.Writer) error {
	firstLine := "hwcaps"
	if version == "" {
		firstLine += " (version unknown)"
	} else {
		firstLine += " version " + version
	}

	currSystem := system.Current()
	fmt.Fprintf(w, "%s\nSystem:       %v\nGo:           %s\n", firstLine, currSystem, runtime.Version())

	if det, err := hwcaps.Host(); err != nil {
		log.Debugf(ctx, "%v", err)
	} else {
		fmt.Fprintf(w, "Max tier:     %v\n", det.MaxTier())
	}

	if currSystem.OS.IsLinux() {
		output, err := exec.CommandContext(ctx, "uname", "-srv").Output()
		if err != nil {
			log.Errorf(ctx, "uname: %v", err)
		} else {
			output = bytes.TrimSuffix(output, []byte("\n"))
			fmt.Fprintf(w, "OS:           %s\n", output)
		}
	}
	return nil
}
