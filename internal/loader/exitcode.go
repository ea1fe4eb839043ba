// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:generate go tool stringer -type=ExitCode -linecomment -output=exitcode_string.go

package loader

// ExitCode is the process exit status the loader terminates with
// when it cannot replace itself with a target binary.
// Values are stable so that scripts can tell failures apart.
type ExitCode uint8

// Exit statuses.
const (
	InternalFault          ExitCode = 100 // internal fault
	SelfExecution          ExitCode = 200 // self execution
	CommandPathInvalid     ExitCode = 210 // command path invalid
	ProcPathIOError        ExitCode = 220 // executable path unreadable
	ProcPathInvalid        ExitCode = 221 // executable path invalid
	PathResolutionIOError  ExitCode = 230 // command path unresolvable
	TargetPathInvalid      ExitCode = 240 // target path invalid
	TargetPathTooLarge     ExitCode = 241 // target path too large
	TargetExecutionError   ExitCode = 242 // target execution failed
	TargetNoViableBinaries ExitCode = 243 // no viable binaries
)
