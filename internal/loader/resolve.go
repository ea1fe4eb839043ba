// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:generate go tool stringer -type=InvocationKind -linecomment -output=invocationkind_string.go

package loader

import (
	"strings"
)

// InvocationKind classifies the name a command was invoked with (argv[0]).
type InvocationKind int8

// Invocation kinds.
const (
	// Alias is a bare command name found by a shell's PATH search,
	// such as "foo".
	Alias InvocationKind = iota // alias
	// Absolute is a path beginning with "/".
	Absolute // absolute
	// Relative is a path relative to the working directory,
	// such as "./foo" or "bin/foo".
	Relative // relative
	// ParentRelative is a path beginning with "../".
	ParentRelative // parent-relative
)

// ClassifyInvocation returns the kind of the invocation name.
func ClassifyInvocation(name string) InvocationKind {
	switch {
	case strings.HasPrefix(name, "/"):
		return Absolute
	case strings.HasPrefix(name, "../"):
		return ParentRelative
	case strings.Contains(name, "/"):
		return Relative
	default:
		return Alias
	}
}

// SelfPath is the installed location of the loader executable,
// which must be at least two directories deep (e.g. "/usr/bin/hwcaps-loader").
type SelfPath struct {
	path      string
	nameStart int
	rootEnd   int
}

// ParseSelfPath validates the loader's canonical executable path.
// Errors have the code [ProcPathInvalid].
func ParseSelfPath(path string) (SelfPath, error) {
	invalid := func(msg string) (SelfPath, error) {
		return SelfPath{}, &Error{Code: ProcPathInvalid, Msg: msg, Path: path}
	}
	if path == "" {
		return invalid("executable path is empty")
	}
	if path[0] != '/' {
		return invalid("executable path is not absolute")
	}
	last := strings.LastIndexByte(path, '/')
	if last == len(path)-1 {
		return invalid("executable path names a directory")
	}
	if last == 0 {
		return invalid("executable has no parent directory")
	}
	parent := strings.LastIndexByte(path[:last], '/')
	if parent < 0 {
		return invalid("executable has no grandparent directory")
	}
	return SelfPath{
		path:      path,
		nameStart: last + 1,
		rootEnd:   parent + 1,
	}, nil
}

// String returns the full path.
func (s SelfPath) String() string {
	return s.path
}

// Name returns the final path component (e.g. "hwcaps-loader").
func (s SelfPath) Name() string {
	return s.path[s.nameStart:]
}

// Dir returns the directory containing the executable,
// including its trailing slash (e.g. "/usr/bin/").
func (s SelfPath) Dir() string {
	return s.path[:s.nameStart]
}

// Root returns the installation root,
// the parent of [SelfPath.Dir] including its trailing slash (e.g. "/usr/").
func (s SelfPath) Root() string {
	return s.path[:s.rootEnd]
}

// ResolveCommand returns the canonical path of the command invoked as argv0.
// An [Alias] is looked up in the loader's own directory,
// since a bare name can only have reached the loader
// through a link installed beside it.
// Other kinds are looked up relative to the working directory.
// Symbolic links in directory components are resolved,
// but a link in the final component is not.
// Errors have the code [PathResolutionIOError].
func ResolveCommand(sys OS, self SelfPath, argv0 string) (string, error) {
	dirfd := WorkingDirectory
	if ClassifyInvocation(argv0) == Alias {
		fd, err := sys.OpenDir(self.Dir())
		if err != nil {
			return "", &Error{
				Code: PathResolutionIOError,
				Msg:  "failed to open executable directory",
				Path: self.Dir(),
				Err:  err,
			}
		}
		defer sys.Close(fd)
		dirfd = fd
	}

	fd, err := sys.OpenNoFollow(dirfd, argv0)
	if err != nil {
		return "", &Error{
			Code: PathResolutionIOError,
			Msg:  "failed to open command",
			Path: argv0,
			Err:  err,
		}
	}
	defer sys.Close(fd)
	resolved, err := sys.CanonicalPath(fd)
	if err != nil {
		return "", &Error{
			Code: PathResolutionIOError,
			Msg:  "failed to read command path",
			Path: argv0,
			Err:  err,
		}
	}
	return resolved, nil
}

// SplitTarget splits a resolved command path at the loader's installation root.
// prefix is [SelfPath.Root] and suffix is the remainder (e.g. "bin/foo").
// Commands outside the root are rejected with [TargetPathInvalid]
// so that a link from an unrelated tree cannot redirect into it.
func SplitTarget(self SelfPath, resolved string) (prefix, suffix string, err error) {
	root := self.Root()
	suffix, ok := strings.CutPrefix(resolved, root)
	if !ok || suffix == "" {
		return "", "", &Error{
			Code: TargetPathInvalid,
			Msg:  "command is not installed under " + root,
			Path: resolved,
		}
	}
	return root, suffix, nil
}
