// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build linux

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
	"zb.256lights.llc/hwcaps/internal/elfhdr"
	"zb.256lights.llc/hwcaps/internal/hwcaps"
	"zb.256lights.llc/hwcaps/internal/loader"
	"zombiezen.com/go/log"
)

type planOptions struct {
	command    string
	loaderPath string
	maxTier    tierFlag
	json       bool
}

func newPlanCommand() *cobra.Command {
	c := &cobra.Command{
		Use:                   "plan [options] COMMAND",
		Short:                 "show the variants hwcaps-loader would try for a command",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(1),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(planOptions)
	c.Flags().StringVar(&opts.loaderPath, "loader", "", "`path` of the installed hwcaps-loader (default is where COMMAND links to)")
	c.Flags().Var(&opts.maxTier, "max-tier", "assume the processor supports at most `tier` (default is this processor's tier)")
	c.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		opts.command = args[0]
		var hostTier hwcaps.Tier
		if !opts.maxTier.valid {
			det, err := hwcaps.Host()
			if err != nil {
				return fmt.Errorf("%w (use --max-tier)", err)
			}
			hostTier = det.MaxTier()
		}
		return runPlan(cmd.Context(), os.Stdout, stdoutHighlighter(), loader.Linux(), opts.maxTier.get(hostTier), opts)
	}
	return c
}

// planOS is a [loader.OS] that reports a given path as the running executable.
type planOS struct {
	loader.OS
	self string
}

func (sys planOS) ExecutablePath() (string, error) {
	return sys.self, nil
}

func (sys planOS) Exec(path string, argv, envv []string) error {
	return errors.New("plan does not execute commands")
}

type planResult struct {
	Loader     string          `json:"loader"`
	Command    string          `json:"command"`
	MaxTier    hwcaps.Tier     `json:"maxTier"`
	Candidates []planCandidate `json:"candidates"`
}

type planCandidate struct {
	Tier       hwcaps.Tier `json:"tier"`
	Path       string      `json:"path"`
	Exists     bool        `json:"exists"`
	Executable bool        `json:"executable"`
	Selected   bool        `json:"selected"`
	// Machine is the ELF machine the variant was built for.
	// It is empty for files that are not ELF, such as scripts.
	Machine string `json:"machine,omitempty"`
}

func runPlan(ctx context.Context, w io.Writer, h highlighter, sys loader.OS, max hwcaps.Tier, opts *planOptions) error {
	self, err := findLoader(opts)
	if err != nil {
		return err
	}
	log.Debugf(ctx, "Using loader at %s", self)
	tgt, err := loader.Resolve(ctx, planOS{sys, self}, opts.command, nil)
	if err != nil {
		return err
	}
	candidates, err := tgt.Plan(max)
	if err != nil {
		return err
	}

	result := &planResult{
		Loader:  self,
		Command: tgt.Command,
		MaxTier: max,
	}
	selected := false
	for _, c := range candidates {
		pc := planCandidate{
			Tier: c.Tier,
			Path: c.Path,
		}
		if _, err := os.Stat(c.Path); err == nil {
			pc.Exists = true
			pc.Executable = unix.Access(c.Path, unix.X_OK) == nil
			pc.Machine, err = checkMachine(c)
			if err != nil {
				log.Warnf(ctx, "%v", err)
			}
			pc.Selected = !selected
			selected = true
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Warnf(ctx, "%v", err)
		}
		result.Candidates = append(result.Candidates, pc)
	}
	switch {
	case !selected:
		log.Warnf(ctx, "no variant of %s is installed; hwcaps-loader would exit with status %d (%v)",
			tgt.Command, loader.TargetNoViableBinaries, loader.TargetNoViableBinaries)
	case !result.selected().Executable:
		log.Warnf(ctx, "%s is not executable; hwcaps-loader would exit with status %d (%v)",
			result.selected().Path, loader.TargetExecutionError, loader.TargetExecutionError)
	}

	if opts.json {
		return writeJSON(w, result)
	}
	sb := new(strings.Builder)
	for _, pc := range result.Candidates {
		var status string
		switch {
		case pc.Selected:
			status = h.good("selected")
		case pc.Exists:
			status = "present"
		default:
			status = h.faint("missing")
		}
		fmt.Fprintf(sb, "%-*s  %s  %s\n", hwcaps.MaxArchNameLen, pc.Tier, pc.Path, status)
	}
	_, err = io.WriteString(w, sb.String())
	return err
}

// checkMachine reads the ELF header of a candidate
// and reports an error if it was built for a different family than its tier.
func checkMachine(c loader.Candidate) (string, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	var head [elfhdr.IdentSize]byte
	if n, _ := io.ReadFull(f, head[:]); !elfhdr.IsELF(head[:n]) {
		return "", nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	hdr, err := elfhdr.ReadFileHeader(f)
	if err != nil {
		return "", fmt.Errorf("%s: %v", c.Path, err)
	}
	want := elfhdr.Machine386
	if c.Tier.Is64Bit() {
		want = elfhdr.MachineX86_64
	}
	if hdr.Machine != want {
		return hdr.Machine.String(), fmt.Errorf("%s is built for %v, but %v variants must be %v", c.Path, hdr.Machine, c.Tier, want)
	}
	return hdr.Machine.String(), nil
}

func (r *planResult) selected() *planCandidate {
	for i := range r.Candidates {
		if r.Candidates[i].Selected {
			return &r.Candidates[i]
		}
	}
	return nil
}

// findLoader returns the absolute path of the hwcaps-loader
// that the command is installed with.
func findLoader(opts *planOptions) (string, error) {
	if opts.loaderPath != "" {
		return filepath.Abs(opts.loaderPath)
	}
	path := opts.command
	if loader.ClassifyInvocation(path) == loader.Alias {
		var err error
		path, err = exec.LookPath(path)
		if err != nil {
			return "", err
		}
	}
	path, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("find loader: %w", err)
	}
	return filepath.Abs(path)
}
