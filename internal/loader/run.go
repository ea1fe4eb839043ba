// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"context"
	"errors"
	"strings"
	"syscall"

	"zb.256lights.llc/hwcaps/internal/hwcaps"
	"zombiezen.com/go/log"
)

// Options is the set of optional parameters to [Resolve] and [Run].
// A nil *Options is treated the same as the zero value.
type Options struct {
	// SelfExecGuard rejects invocations whose final path component
	// is the loader's own name,
	// which would otherwise execute the loader in a loop.
	SelfExecGuard bool
}

func (opts *Options) selfExecGuard() bool {
	return opts != nil && opts.SelfExecGuard
}

// Target is a command resolved to a location under the loader's installation root.
type Target struct {
	// Self is the location of the loader.
	Self SelfPath
	// Command is the canonical path of the invoked command.
	Command string
	// Prefix is the installation root, including its trailing slash.
	Prefix string
	// Suffix is the command's path relative to Prefix.
	Suffix string
}

// Resolve validates the invocation name argv0
// and resolves it to a [Target].
func Resolve(ctx context.Context, sys OS, argv0 string, opts *Options) (*Target, error) {
	if err := validateCommandPath(argv0); err != nil {
		return nil, err
	}

	exe, err := sys.ExecutablePath()
	if err != nil {
		return nil, &Error{
			Code: ProcPathIOError,
			Msg:  "failed to read executable path",
			Err:  err,
		}
	}
	self, err := ParseSelfPath(exe)
	if err != nil {
		return nil, err
	}
	if opts.selfExecGuard() && lastComponent(argv0) == self.Name() {
		return nil, &Error{
			Code: SelfExecution,
			Msg:  "refusing to execute self",
			Path: argv0,
		}
	}

	resolved, err := ResolveCommand(sys, self, argv0)
	if err != nil {
		return nil, err
	}
	log.Debugf(ctx, "Resolved %s (%v) to %s", argv0, ClassifyInvocation(argv0), resolved)
	prefix, suffix, err := SplitTarget(self, resolved)
	if err != nil {
		return nil, err
	}
	return &Target{
		Self:    self,
		Command: resolved,
		Prefix:  prefix,
		Suffix:  suffix,
	}, nil
}

func validateCommandPath(argv0 string) error {
	var msg string
	switch {
	case argv0 == "":
		msg = "command path is empty"
	case strings.IndexByte(argv0, 0) >= 0:
		msg = "command path contains NUL"
	case len(argv0) >= MaxPathLen:
		msg = "command path too long"
	default:
		return nil
	}
	return &Error{
		Code: CommandPathInvalid,
		Msg:  msg,
		Path: argv0,
	}
}

func lastComponent(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}

// Plan returns the paths that [Target.Exec] would try for max, in order.
func (tgt *Target) Plan(max hwcaps.Tier) ([]Candidate, error) {
	b, err := NewPathBuilder(tgt.Prefix, tgt.Suffix)
	if err != nil {
		return nil, err
	}
	return b.Candidates(max)
}

// Exec tries to execute the target's variant for each tier
// from max down to zero.
// A missing variant moves on to the next lower tier.
// Any other failure to execute stops with [TargetExecutionError].
// If every tier is missing, Exec returns an error with [TargetNoViableBinaries].
//
// Exec returns nil only if sys.Exec reports success,
// which for a real operating system means the process image was replaced.
func (tgt *Target) Exec(ctx context.Context, sys OS, max hwcaps.Tier, argv, envv []string) error {
	b, err := NewPathBuilder(tgt.Prefix, tgt.Suffix)
	if err != nil {
		return err
	}
	for t := range descending(max) {
		path, err := b.Build(t)
		if err != nil {
			return err
		}
		log.Debugf(ctx, "Trying %s", path)
		err = sys.Exec(path, argv, envv)
		if err == nil {
			return nil
		}
		if !errors.Is(err, syscall.ENOENT) {
			return &Error{
				Code: TargetExecutionError,
				Msg:  "failed to execute target",
				Path: path,
				Err:  err,
			}
		}
	}
	return &Error{
		Code: TargetNoViableBinaries,
		Msg:  "no viable binaries found (is " + tgt.Suffix + " installed properly?)",
		Path: tgt.Command,
	}
}

// Run resolves the command named by argv[0]
// and executes the best variant the detector allows.
// argv and envv are passed to the variant unchanged.
func Run(ctx context.Context, sys OS, det hwcaps.Detector, argv, envv []string, opts *Options) error {
	if det == nil {
		return &Error{
			Code: InternalFault,
			Msg:  "no capability detector for this architecture",
		}
	}
	if len(argv) == 0 {
		return &Error{
			Code: CommandPathInvalid,
			Msg:  "missing command path",
		}
	}
	tgt, err := Resolve(ctx, sys, argv[0], opts)
	if err != nil {
		return err
	}
	max := det.MaxTier()
	log.Debugf(ctx, "Maximum tier is %v", max)
	return tgt.Exec(ctx, sys, max, argv, envv)
}
