// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"strconv"
	"strings"
	"syscall"
)

// Error is a failure that terminates the loader.
type Error struct {
	// Code is the exit status for the failure.
	Code ExitCode
	// Msg describes the stage that failed.
	Msg string
	// Path is the offending path, if any.
	Path string
	// Err is the underlying error, if any.
	// It usually wraps a [syscall.Errno].
	Err error
}

// Error formats the error as a single line of the form
// "<msg> | Errno: <n> | Path: <path>",
// omitting the parts that are not present.
func (e *Error) Error() string {
	sb := new(strings.Builder)
	sb.WriteString(e.Msg)
	if e.Err != nil {
		if errno := (syscall.Errno(0)); errors.As(e.Err, &errno) {
			sb.WriteString(" | Errno: ")
			sb.WriteString(strconv.FormatUint(uint64(errno), 10))
			sb.WriteString(" (")
			sb.WriteString(errno.Error())
			sb.WriteString(")")
		} else {
			sb.WriteString(": ")
			sb.WriteString(e.Err.Error())
		}
	}
	if e.Path != "" {
		sb.WriteString(" | Path: ")
		sb.WriteString(e.Path)
	}
	return sb.String()
}

// Unwrap returns e.Err.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCodeOf returns the exit status for err.
// Errors that did not originate from the loader map to [InternalFault].
func ExitCodeOf(err error) ExitCode {
	if e := (*Error)(nil); errors.As(err, &e) {
		return e.Code
	}
	return InternalFault
}
