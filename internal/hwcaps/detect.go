// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

// Package hwcaps determines the x86 capability tier of the host processor
// and names the per-tier directories that optimized binaries are installed in.
package hwcaps

import (
	"errors"
	"fmt"

	"zb.256lights.llc/hwcaps/internal/cpuid"
	"zb.256lights.llc/hwcaps/internal/system"
)

// ErrUnsupported is returned for architectures that have no tiers.
var ErrUnsupported = errors.New("unsupported architecture")

// A Detector determines a processor's capability tier.
type Detector interface {
	// Features returns the feature registers the tier is computed from.
	Features() FeatureMask
	// MaxTier returns the most capable tier the processor fully satisfies.
	MaxTier() Tier
}

// NewDetector returns the [Detector] for binaries built for arch.
func NewDetector(arch system.Architecture, q cpuid.Querier) (Detector, error) {
	switch {
	case arch.Is64Bit():
		return X86_64{CPU: q}, nil
	case arch.Is32Bit():
		return X86{CPU: q}, nil
	default:
		return nil, fmt.Errorf("detect capabilities for %v: %w", arch, ErrUnsupported)
	}
}

// X86 is the [Detector] for 32-bit x86 processors.
// It only reports tiers below [FamilyBoundary].
type X86 struct {
	CPU cpuid.Querier
}

// Features reads the processor's feature registers.
func (d X86) Features() FeatureMask {
	return ReadFeatures(d.CPU)
}

// MaxTier returns the most capable 32-bit tier the processor satisfies.
func (d X86) MaxTier() Tier {
	return Tier32(d.Features())
}

// X86_64 is the [Detector] for 64-bit x86 processors.
// It only reports tiers at or above [FamilyBoundary].
type X86_64 struct {
	CPU cpuid.Querier
}

// Features reads the processor's feature registers.
func (d X86_64) Features() FeatureMask {
	return ReadFeatures(d.CPU)
}

// MaxTier returns the most capable 64-bit tier the processor satisfies.
func (d X86_64) MaxTier() Tier {
	return Tier64(d.Features())
}

// Per-tier feature requirements.
// Each tier's set includes the previous tier's.
const (
	i486EDX   = FPU
	i586EDX   = i486EDX | CX8 | MMX
	i686EDX   = i586EDX | SEP | CMOV | FXSR
	x86_64EDX = i686EDX | SSE | SSE2

	v2ECX    = SSE3 | SSSE3 | CMPXCHG16B | SSE41 | SSE42
	v2ExtECX = LAHFSAHF

	v3ECX    = v2ECX | FMA | MOVBE | OSXSAVE | AVX | F16C
	v3ExtECX = v2ExtECX | LZCNT
	v3EBX    = BMI1 | AVX2 | BMI2

	v4EBX = v3EBX | AVX512F | AVX512DQ | AVX512CD | AVX512BW | AVX512VL
)

var requirements = [...]FeatureMask{
	I386: {},
	I486: {
		CPUID:    true,
		MaxBasic: cpuid.LeafFeatures,
		Leaf1EDX: i486EDX,
	},
	I586: {
		CPUID:    true,
		MaxBasic: cpuid.LeafFeatures,
		Leaf1EDX: i586EDX,
	},
	I686: {
		CPUID:    true,
		MaxBasic: cpuid.LeafFeatures,
		Leaf1EDX: i686EDX,
	},
	X86_64V1: {
		CPUID:    true,
		MaxBasic: cpuid.LeafFeatures,
		Leaf1EDX: x86_64EDX,
	},
	X86_64V2: {
		CPUID:           true,
		MaxBasic:        cpuid.LeafFeatures,
		MaxExtended:     cpuid.LeafExtendedFeatures,
		Leaf1EDX:        x86_64EDX,
		Leaf1ECX:        v2ECX,
		Leaf80000001ECX: v2ExtECX,
	},
	X86_64V3: {
		CPUID:           true,
		MaxBasic:        cpuid.LeafStructuredFeatures,
		MaxExtended:     cpuid.LeafExtendedFeatures,
		Leaf1EDX:        x86_64EDX,
		Leaf1ECX:        v3ECX,
		Leaf80000001ECX: v3ExtECX,
		Leaf7EBX:        v3EBX,
	},
	X86_64V4: {
		CPUID:           true,
		MaxBasic:        cpuid.LeafStructuredFeatures,
		MaxExtended:     cpuid.LeafExtendedFeatures,
		Leaf1EDX:        x86_64EDX,
		Leaf1ECX:        v3ECX,
		Leaf80000001ECX: v3ExtECX,
		Leaf7EBX:        v4EBX,
	},
}

// Requirements returns the features a processor must have to run binaries built for t.
// The x86-64-v1 requirements are informational:
// every 64-bit processor meets them, so [Tier64] never checks them.
func Requirements(t Tier) FeatureMask {
	if !t.IsValid() {
		panic(fmt.Errorf("requirements for %v: %w", t, ErrTierRange))
	}
	return requirements[t]
}

// Tier32 returns the most capable 32-bit tier that m satisfies.
// A processor without CPUID is [I386].
func Tier32(m FeatureMask) Tier {
	if !m.CPUID {
		return I386
	}
	level := I386
	for next := I486; next < FamilyBoundary; next++ {
		if !m.Leaf1EDX.Has(requirements[next].Leaf1EDX) {
			break
		}
		level = next
	}
	return level
}

// Tier64 returns the most capable 64-bit tier that m satisfies.
// The result is at least [X86_64V1].
func Tier64(m FeatureMask) Tier {
	if m.MaxExtended < cpuid.LeafExtendedFeatures {
		return X86_64V1
	}
	v2 := &requirements[X86_64V2]
	if !m.Leaf1ECX.Has(v2.Leaf1ECX) || !m.Leaf80000001ECX.Has(v2.Leaf80000001ECX) {
		return X86_64V1
	}

	if m.MaxBasic < cpuid.LeafStructuredFeatures {
		return X86_64V2
	}
	v3 := &requirements[X86_64V3]
	if !m.Leaf1ECX.Has(v3.Leaf1ECX) ||
		!m.Leaf80000001ECX.Has(v3.Leaf80000001ECX) ||
		!m.Leaf7EBX.Has(v3.Leaf7EBX) {
		return X86_64V2
	}

	if !m.Leaf7EBX.Has(requirements[X86_64V4].Leaf7EBX) {
		return X86_64V3
	}
	return X86_64V4
}
