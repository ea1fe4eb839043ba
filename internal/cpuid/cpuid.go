// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:generate go tool stringer -type=Register -output=register_string.go

// Package cpuid issues x86 processor identification queries.
package cpuid

// Leaf is the value loaded into EAX before executing CPUID.
type Leaf uint32

// Leaves consulted by the feature detector.
const (
	// LeafMaxBasic reports the highest supported basic leaf in EAX.
	LeafMaxBasic Leaf = 0x00000000
	// LeafFeatures reports the original feature flags in ECX and EDX.
	LeafFeatures Leaf = 0x00000001
	// LeafStructuredFeatures reports the structured extended feature flags
	// (sub-leaf 0 in EBX, ECX, and EDX).
	LeafStructuredFeatures Leaf = 0x00000007
	// LeafMaxExtended reports the highest supported extended leaf in EAX.
	LeafMaxExtended Leaf = 0x80000000
	// LeafExtendedFeatures reports the extended processor feature flags.
	LeafExtendedFeatures Leaf = 0x80000001
)

// Register names one of the four general-purpose registers CPUID writes to.
type Register uint8

const (
	EAX Register = iota
	EBX
	ECX
	EDX
)

// Registers is the output of a single CPUID instruction.
type Registers struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// Get returns the value of the named register.
func (r Registers) Get(reg Register) uint32 {
	switch reg {
	case EAX:
		return r.EAX
	case EBX:
		return r.EBX
	case ECX:
		return r.ECX
	case EDX:
		return r.EDX
	default:
		panic("invalid register " + reg.String())
	}
}

// Query identifies a single CPUID invocation.
type Query struct {
	Leaf    Leaf
	Subleaf uint32
}

// A Querier executes CPUID.
type Querier interface {
	// Supported reports whether the processor implements CPUID at all.
	// CPUID must not be called if Supported returns false.
	Supported() bool
	// CPUID returns the registers produced by CPUID
	// with EAX set to leaf and ECX set to subleaf.
	CPUID(leaf Leaf, subleaf uint32) Registers
}

// Table is a [Querier] that answers from recorded results.
// Queries not present in the table return zero registers.
// An empty (or nil) table reports that CPUID is unsupported.
type Table map[Query]Registers

// Supported reports whether the table has any entries.
func (t Table) Supported() bool {
	return len(t) > 0
}

// CPUID returns the recorded registers for the query.
func (t Table) CPUID(leaf Leaf, subleaf uint32) Registers {
	return t[Query{Leaf: leaf, Subleaf: subleaf}]
}
