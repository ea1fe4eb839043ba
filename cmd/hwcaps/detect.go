// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
	"zb.256lights.llc/hwcaps/internal/hwcaps"
	"zb.256lights.llc/hwcaps/internal/system"
	"zombiezen.com/go/log"
)

type detectOptions struct {
	json bool
}

func newDetectCommand() *cobra.Command {
	c := &cobra.Command{
		Use:                   "detect [options]",
		Short:                 "show the capability tier of this processor",
		DisableFlagsInUseLine: true,
		Args:                  cobra.NoArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(detectOptions)
	c.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		det, err := hwcaps.Host()
		if err != nil {
			return err
		}
		return runDetect(cmd.Context(), os.Stdout, stdoutHighlighter(), det, hostRuntimeFeatures(), opts)
	}
	return c
}

type detectResult struct {
	System          string          `json:"system"`
	MaxTier         hwcaps.Tier     `json:"maxTier"`
	Tiers           []tierSupport   `json:"tiers"`
	Features        []string        `json:"features"`
	MaxBasicLeaf    uint32          `json:"maxBasicLeaf"`
	MaxExtendedLeaf uint32          `json:"maxExtendedLeaf"`
	Runtime         runtimeFeatures `json:"runtime"`
	Warnings        []string        `json:"warnings,omitempty"`
}

type tierSupport struct {
	Tier      hwcaps.Tier `json:"name"`
	Supported bool        `json:"supported"`
}

// runtimeFeatures is the Go runtime's view of the processor.
// Unlike CPUID feature bits alone,
// it accounts for whether the operating system saves the extended register state.
type runtimeFeatures struct {
	SSE42   bool `json:"sse4_2"`
	POPCNT  bool `json:"popcnt"`
	AVX2    bool `json:"avx2"`
	BMI2    bool `json:"bmi2"`
	AVX512F bool `json:"avx512f"`
}

func hostRuntimeFeatures() runtimeFeatures {
	return runtimeFeatures{
		SSE42:   cpu.X86.HasSSE42,
		POPCNT:  cpu.X86.HasPOPCNT,
		AVX2:    cpu.X86.HasAVX2,
		BMI2:    cpu.X86.HasBMI2,
		AVX512F: cpu.X86.HasAVX512F,
	}
}

func runDetect(ctx context.Context, w io.Writer, h highlighter, det hwcaps.Detector, rt runtimeFeatures, opts *detectOptions) error {
	features := det.Features()
	result := &detectResult{
		System:          system.Current().String(),
		MaxTier:         det.MaxTier(),
		Features:        features.Names(),
		MaxBasicLeaf:    uint32(features.MaxBasic),
		MaxExtendedLeaf: uint32(features.MaxExtended),
		Runtime:         rt,
		Warnings:        crossCheck(det.MaxTier(), rt),
	}
	for t := hwcaps.I386; t <= hwcaps.MaxKnownTier; t++ {
		result.Tiers = append(result.Tiers, tierSupport{
			Tier:      t,
			Supported: t <= result.MaxTier,
		})
	}
	for _, warning := range result.Warnings {
		log.Warnf(ctx, "%s", warning)
	}

	if opts.json {
		return writeJSON(w, result)
	}
	sb := new(strings.Builder)
	fmt.Fprintf(sb, "System:    %s\n", result.System)
	fmt.Fprintf(sb, "Max tier:  %s\n", h.good(result.MaxTier.String()))
	sb.WriteString("Tiers:\n")
	for i := len(result.Tiers) - 1; i >= 0; i-- {
		ts := result.Tiers[i]
		if ts.Supported {
			fmt.Fprintf(sb, "  %-*s  supported\n", hwcaps.MaxArchNameLen, ts.Tier)
		} else {
			fmt.Fprintf(sb, "  %s\n", h.faint(fmt.Sprintf("%-*s  unsupported", hwcaps.MaxArchNameLen, ts.Tier)))
		}
	}
	fmt.Fprintf(sb, "Features:  %s\n", strings.Join(result.Features, " "))
	fmt.Fprintf(sb, "CPUID:     max basic leaf %#x, max extended leaf %#x\n", result.MaxBasicLeaf, result.MaxExtendedLeaf)
	_, err := io.WriteString(w, sb.String())
	return err
}

// crossCheck compares the detected tier with the Go runtime's feature detection
// and describes each disagreement.
// A disagreement usually means the kernel has disabled AVX state saving,
// in which case the variant selected by hwcaps-loader may fault.
func crossCheck(max hwcaps.Tier, rt runtimeFeatures) []string {
	var warnings []string
	check := func(tier hwcaps.Tier, name string, has bool) {
		if max >= tier && !has {
			warnings = append(warnings, fmt.Sprintf("detected %v, but Go runtime reports no %s", max, name))
		}
	}
	check(hwcaps.X86_64V2, "SSE4.2", rt.SSE42)
	check(hwcaps.X86_64V3, "AVX2", rt.AVX2)
	check(hwcaps.X86_64V3, "BMI2", rt.BMI2)
	check(hwcaps.X86_64V4, "AVX-512F", rt.AVX512F)
	return warnings
}
