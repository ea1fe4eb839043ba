// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build 386 || amd64

package cpuid

// Hardware is a [Querier] that executes CPUID on the current processor.
type Hardware struct{}

// Supported reports whether the processor implements CPUID.
// It is always true on amd64.
func (Hardware) Supported() bool {
	return hasCPUID()
}

// CPUID executes the CPUID instruction.
func (Hardware) CPUID(leaf Leaf, subleaf uint32) Registers {
	a, b, c, d := cpuid(uint32(leaf), subleaf)
	return Registers{EAX: a, EBX: b, ECX: c, EDX: d}
}

// cpuid is implemented in cpuid_amd64.s and cpuid_386.s.
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)
