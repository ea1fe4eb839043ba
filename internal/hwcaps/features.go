// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package hwcaps

import (
	"zb.256lights.llc/hwcaps/internal/cpuid"
)

// Leaf1EDX is the set of feature flags reported in EDX by CPUID leaf 1.
type Leaf1EDX uint32

// [Leaf1EDX] flags.
const (
	FPU  Leaf1EDX = 1 << 0
	CX8  Leaf1EDX = 1 << 8
	SEP  Leaf1EDX = 1 << 11
	CMOV Leaf1EDX = 1 << 15
	MMX  Leaf1EDX = 1 << 23
	FXSR Leaf1EDX = 1 << 24
	SSE  Leaf1EDX = 1 << 25
	SSE2 Leaf1EDX = 1 << 26
)

// Has reports whether every flag in want is set in f.
func (f Leaf1EDX) Has(want Leaf1EDX) bool { return f&want == want }

// Leaf1ECX is the set of feature flags reported in ECX by CPUID leaf 1.
type Leaf1ECX uint32

// [Leaf1ECX] flags.
const (
	SSE3       Leaf1ECX = 1 << 0
	SSSE3      Leaf1ECX = 1 << 9
	FMA        Leaf1ECX = 1 << 12
	CMPXCHG16B Leaf1ECX = 1 << 13
	SSE41      Leaf1ECX = 1 << 19
	SSE42      Leaf1ECX = 1 << 20
	MOVBE      Leaf1ECX = 1 << 22
	POPCNT     Leaf1ECX = 1 << 23
	OSXSAVE    Leaf1ECX = 1 << 27
	AVX        Leaf1ECX = 1 << 28
	F16C       Leaf1ECX = 1 << 29
)

// Has reports whether every flag in want is set in f.
func (f Leaf1ECX) Has(want Leaf1ECX) bool { return f&want == want }

// Leaf80000001ECX is the set of feature flags reported in ECX
// by CPUID extended leaf 0x80000001.
type Leaf80000001ECX uint32

// [Leaf80000001ECX] flags.
const (
	LAHFSAHF Leaf80000001ECX = 1 << 0
	LZCNT    Leaf80000001ECX = 1 << 5
)

// Has reports whether every flag in want is set in f.
func (f Leaf80000001ECX) Has(want Leaf80000001ECX) bool { return f&want == want }

// Leaf7EBX is the set of feature flags reported in EBX by CPUID leaf 7, sub-leaf 0.
type Leaf7EBX uint32

// [Leaf7EBX] flags.
const (
	BMI1     Leaf7EBX = 1 << 3
	AVX2     Leaf7EBX = 1 << 5
	BMI2     Leaf7EBX = 1 << 8
	AVX512F  Leaf7EBX = 1 << 16
	AVX512DQ Leaf7EBX = 1 << 17
	AVX512CD Leaf7EBX = 1 << 28
	AVX512BW Leaf7EBX = 1 << 30
	AVX512VL Leaf7EBX = 1 << 31
)

// Has reports whether every flag in want is set in f.
func (f Leaf7EBX) Has(want Leaf7EBX) bool { return f&want == want }

// FeatureMask is the subset of a processor's CPUID output
// that determines its [Tier].
// The zero value describes a processor without CPUID.
type FeatureMask struct {
	// CPUID is true if the processor implements the CPUID instruction.
	CPUID bool
	// MaxBasic is the highest basic leaf the processor answers.
	MaxBasic cpuid.Leaf
	// MaxExtended is the highest extended leaf the processor answers
	// or zero if extended leaves are not implemented.
	MaxExtended cpuid.Leaf

	Leaf1EDX        Leaf1EDX
	Leaf1ECX        Leaf1ECX
	Leaf80000001ECX Leaf80000001ECX
	Leaf7EBX        Leaf7EBX
}

// ReadFeatures queries q for the registers that make up a [FeatureMask].
// Leaves beyond the processor's reported maximum are not queried
// and their words are left zero.
func ReadFeatures(q cpuid.Querier) FeatureMask {
	var m FeatureMask
	if !q.Supported() {
		return m
	}
	m.CPUID = true
	m.MaxBasic = cpuid.Leaf(q.CPUID(cpuid.LeafMaxBasic, 0).EAX)
	if m.MaxBasic >= cpuid.LeafFeatures {
		r := q.CPUID(cpuid.LeafFeatures, 0)
		m.Leaf1EDX = Leaf1EDX(r.EDX)
		m.Leaf1ECX = Leaf1ECX(r.ECX)
	}
	if m.MaxBasic >= cpuid.LeafStructuredFeatures {
		m.Leaf7EBX = Leaf7EBX(q.CPUID(cpuid.LeafStructuredFeatures, 0).EBX)
	}

	// Processors without extended leaves echo back a basic leaf,
	// which never has the high bit set.
	if ext := cpuid.Leaf(q.CPUID(cpuid.LeafMaxExtended, 0).EAX); ext >= cpuid.LeafMaxExtended {
		m.MaxExtended = ext
	}
	if m.MaxExtended >= cpuid.LeafExtendedFeatures {
		m.Leaf80000001ECX = Leaf80000001ECX(q.CPUID(cpuid.LeafExtendedFeatures, 0).ECX)
	}
	return m
}

// Satisfies reports whether m has every feature present in req
// and answers at least the leaves req answers.
func (m FeatureMask) Satisfies(req FeatureMask) bool {
	if req.CPUID && !m.CPUID {
		return false
	}
	return m.MaxBasic >= req.MaxBasic &&
		m.MaxExtended >= req.MaxExtended &&
		m.Leaf1EDX.Has(req.Leaf1EDX) &&
		m.Leaf1ECX.Has(req.Leaf1ECX) &&
		m.Leaf80000001ECX.Has(req.Leaf80000001ECX) &&
		m.Leaf7EBX.Has(req.Leaf7EBX)
}

// Word is a single feature register in a [FeatureMask],
// identified by the CPUID query and register it was read from.
type Word struct {
	Query    cpuid.Query
	Register cpuid.Register
	Value    uint32
}

// Words returns the feature registers of m in a fixed order.
func (m FeatureMask) Words() []Word {
	return []Word{
		{cpuid.Query{Leaf: cpuid.LeafFeatures}, cpuid.EDX, uint32(m.Leaf1EDX)},
		{cpuid.Query{Leaf: cpuid.LeafFeatures}, cpuid.ECX, uint32(m.Leaf1ECX)},
		{cpuid.Query{Leaf: cpuid.LeafExtendedFeatures}, cpuid.ECX, uint32(m.Leaf80000001ECX)},
		{cpuid.Query{Leaf: cpuid.LeafStructuredFeatures}, cpuid.EBX, uint32(m.Leaf7EBX)},
	}
}

type flagName[T ~uint32] struct {
	flag T
	name string
}

// Flag names follow /proc/cpuinfo.
var (
	leaf1EDXNames = []flagName[Leaf1EDX]{
		{FPU, "fpu"},
		{CX8, "cx8"},
		{SEP, "sep"},
		{CMOV, "cmov"},
		{MMX, "mmx"},
		{FXSR, "fxsr"},
		{SSE, "sse"},
		{SSE2, "sse2"},
	}
	leaf1ECXNames = []flagName[Leaf1ECX]{
		{SSE3, "pni"},
		{SSSE3, "ssse3"},
		{FMA, "fma"},
		{CMPXCHG16B, "cx16"},
		{SSE41, "sse4_1"},
		{SSE42, "sse4_2"},
		{MOVBE, "movbe"},
		{POPCNT, "popcnt"},
		{OSXSAVE, "osxsave"},
		{AVX, "avx"},
		{F16C, "f16c"},
	}
	leaf80000001ECXNames = []flagName[Leaf80000001ECX]{
		{LAHFSAHF, "lahf_lm"},
		{LZCNT, "abm"},
	}
	leaf7EBXNames = []flagName[Leaf7EBX]{
		{BMI1, "bmi1"},
		{AVX2, "avx2"},
		{BMI2, "bmi2"},
		{AVX512F, "avx512f"},
		{AVX512DQ, "avx512dq"},
		{AVX512CD, "avx512cd"},
		{AVX512BW, "avx512bw"},
		{AVX512VL, "avx512vl"},
	}
)

// Names returns the names of the flags set in m, in register order.
func (m FeatureMask) Names() []string {
	var names []string
	names = appendFlagNames(names, m.Leaf1EDX, leaf1EDXNames)
	names = appendFlagNames(names, m.Leaf1ECX, leaf1ECXNames)
	names = appendFlagNames(names, m.Leaf80000001ECX, leaf80000001ECXNames)
	names = appendFlagNames(names, m.Leaf7EBX, leaf7EBXNames)
	return names
}

func appendFlagNames[T ~uint32](dst []string, word T, table []flagName[T]) []string {
	for _, fn := range table {
		if word&fn.flag == fn.flag {
			dst = append(dst, fn.name)
		}
	}
	return dst
}
