// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:generate go tool stringer -type=Machine -linecomment -output=machine_string.go

package elfhdr

// Machine is an enumeration of instruction set architectures.
type Machine uint16

// [Machine] values defined by the ELF format.
const (
	Machine386     Machine = 3   // EM_386
	MachinePPC     Machine = 20  // EM_PPC
	MachinePPC64   Machine = 21  // EM_PPC64
	MachineS390    Machine = 22  // EM_S390
	MachineARM     Machine = 40  // EM_ARM
	MachineX86_64  Machine = 62  // EM_X86_64
	MachineAArch64 Machine = 183 // EM_AARCH64
	MachineRISCV   Machine = 243 // EM_RISCV
)

// IsX86 reports whether the machine is 32-bit or 64-bit x86.
func (m Machine) IsX86() bool {
	return m == Machine386 || m == MachineX86_64
}
