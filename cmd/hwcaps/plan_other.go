// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build !linux

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newPlanCommand() *cobra.Command {
	return &cobra.Command{
		Use:                   "plan [options] COMMAND",
		Short:                 "show the variants hwcaps-loader would try for a command",
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("plan: %s is not supported", runtime.GOOS)
		},
	}
}
