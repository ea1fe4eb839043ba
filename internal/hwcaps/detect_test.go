// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package hwcaps

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"zb.256lights.llc/hwcaps/internal/cpuid"
	"zb.256lights.llc/hwcaps/internal/system"
)

// cpuProfile is a compact description of a processor's CPUID answers.
type cpuProfile struct {
	maxBasic    cpuid.Leaf
	maxExtended cpuid.Leaf
	edx1        Leaf1EDX
	ecx1        Leaf1ECX
	ebx7        Leaf7EBX
	extECX      Leaf80000001ECX
}

func (p cpuProfile) table() cpuid.Table {
	t := cpuid.Table{
		{Leaf: cpuid.LeafMaxBasic}:    {EAX: uint32(p.maxBasic), EBX: 0x756e6547, EDX: 0x49656e69, ECX: 0x6c65746e},
		{Leaf: cpuid.LeafFeatures}:    {EDX: uint32(p.edx1), ECX: uint32(p.ecx1)},
		{Leaf: cpuid.LeafMaxExtended}: {EAX: uint32(p.maxExtended)},
	}
	if p.maxBasic >= cpuid.LeafStructuredFeatures {
		t[cpuid.Query{Leaf: cpuid.LeafStructuredFeatures}] = cpuid.Registers{EBX: uint32(p.ebx7)}
	}
	if p.maxExtended >= cpuid.LeafExtendedFeatures {
		t[cpuid.Query{Leaf: cpuid.LeafExtendedFeatures}] = cpuid.Registers{ECX: uint32(p.extECX)}
	}
	return t
}

var (
	i486DX = cpuProfile{
		maxBasic: 1,
		edx1:     FPU,
	}
	pentiumMMX = cpuProfile{
		maxBasic: 1,
		edx1:     FPU | CX8 | MMX | 1<<4, // TSC
	}
	// The Pentium Pro has CMOV and SEP but lacks MMX,
	// so it cannot satisfy i586 (and therefore not i686).
	pentiumPro = cpuProfile{
		maxBasic: 2,
		edx1:     FPU | CX8 | SEP | CMOV,
	}
	pentiumII = cpuProfile{
		maxBasic: 2,
		edx1:     FPU | CX8 | MMX | SEP | CMOV | FXSR,
	}
	athlon64 = cpuProfile{
		maxBasic:    1,
		maxExtended: 0x80000018,
		edx1:        x86_64EDX,
		extECX:      LAHFSAHF,
	}
	// Early 64-bit Pentium 4 processors lack extended leaf 0x80000001.
	prescott = cpuProfile{
		maxBasic:    5,
		maxExtended: 0x80000000,
		edx1:        x86_64EDX,
		ecx1:        SSE3,
	}
	nehalem = cpuProfile{
		maxBasic:    0xb,
		maxExtended: 0x80000008,
		edx1:        x86_64EDX,
		ecx1:        v2ECX | POPCNT,
		extECX:      LAHFSAHF,
	}
	// Some hypervisors hide leaf 7 while exposing v3 leaf-1 flags.
	hiddenLeaf7 = cpuProfile{
		maxBasic:    6,
		maxExtended: 0x80000008,
		edx1:        x86_64EDX,
		ecx1:        v3ECX | POPCNT,
		extECX:      v3ExtECX,
	}
	haswell = cpuProfile{
		maxBasic:    0xd,
		maxExtended: 0x80000008,
		edx1:        x86_64EDX,
		ecx1:        v3ECX | POPCNT,
		ebx7:        v3EBX,
		extECX:      v3ExtECX,
	}
	avx2WithoutBMI2 = cpuProfile{
		maxBasic:    0xd,
		maxExtended: 0x80000008,
		edx1:        x86_64EDX,
		ecx1:        v3ECX | POPCNT,
		ebx7:        BMI1 | AVX2,
		extECX:      v3ExtECX,
	}
	// Xeon Phi (Knights Landing) has AVX512F and AVX512CD but not DQ, BW, or VL.
	knightsLanding = cpuProfile{
		maxBasic:    0xd,
		maxExtended: 0x80000008,
		edx1:        x86_64EDX,
		ecx1:        v3ECX | POPCNT,
		ebx7:        v3EBX | AVX512F | AVX512CD,
		extECX:      v3ExtECX,
	}
	skylakeX = cpuProfile{
		maxBasic:    0x16,
		maxExtended: 0x80000008,
		edx1:        x86_64EDX,
		ecx1:        v3ECX | POPCNT,
		ebx7:        v4EBX,
		extECX:      v3ExtECX,
	}
)

func TestX86(t *testing.T) {
	tests := []struct {
		name string
		cpu  cpuid.Querier
		want Tier
	}{
		{"NoCPUID", cpuid.Table(nil), I386},
		{"CPUIDWithoutFPU", cpuProfile{maxBasic: 1}.table(), I386},
		{"i486DX", i486DX.table(), I486},
		{"PentiumMMX", pentiumMMX.table(), I586},
		{"PentiumPro", pentiumPro.table(), I486},
		{"PentiumII", pentiumII.table(), I686},
		{"Haswell", haswell.table(), I686},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := (X86{CPU: test.cpu}).MaxTier(); got != test.want {
				t.Errorf("MaxTier() = %v; want %v", got, test.want)
			}
		})
	}
}

func TestX86_64(t *testing.T) {
	tests := []struct {
		name string
		cpu  cpuProfile
		want Tier
	}{
		{"Athlon64", athlon64, X86_64V1},
		{"Prescott", prescott, X86_64V1},
		{"Nehalem", nehalem, X86_64V2},
		{"HiddenLeaf7", hiddenLeaf7, X86_64V2},
		{"Haswell", haswell, X86_64V3},
		{"AVX2WithoutBMI2", avx2WithoutBMI2, X86_64V2},
		{"KnightsLanding", knightsLanding, X86_64V3},
		{"SkylakeX", skylakeX, X86_64V4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := (X86_64{CPU: test.cpu.table()}).MaxTier(); got != test.want {
				t.Errorf("MaxTier() = %v; want %v", got, test.want)
			}
		})
	}
}

func TestTier64LacksLAHF(t *testing.T) {
	p := nehalem
	p.extECX = 0
	if got := Tier64(ReadFeatures(p.table())); got != X86_64V1 {
		t.Errorf("Tier64(Nehalem without LAHF/SAHF) = %v; want %v", got, X86_64V1)
	}
}

func TestReadFeaturesSkipsUnreportedLeaves(t *testing.T) {
	tab := cpuProfile{
		maxBasic:    1,
		maxExtended: 0x80000000,
		edx1:        x86_64EDX,
	}.table()
	// Answers for leaves beyond the reported maximums must be ignored.
	tab[cpuid.Query{Leaf: cpuid.LeafStructuredFeatures}] = cpuid.Registers{EBX: uint32(v4EBX)}
	tab[cpuid.Query{Leaf: cpuid.LeafExtendedFeatures}] = cpuid.Registers{ECX: uint32(v3ExtECX)}

	got := ReadFeatures(tab)
	want := FeatureMask{
		CPUID:       true,
		MaxBasic:    1,
		MaxExtended: 0x80000000,
		Leaf1EDX:    x86_64EDX,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadFeatures(...) (-want +got):\n%s", diff)
	}
}

func TestReadFeaturesBogusExtendedMax(t *testing.T) {
	// Processors without extended leaves repeat a basic leaf's output.
	tab := i486DX.table()
	tab[cpuid.Query{Leaf: cpuid.LeafMaxExtended}] = cpuid.Registers{EAX: 0x0000_0483}
	if got := ReadFeatures(tab).MaxExtended; got != 0 {
		t.Errorf("MaxExtended = %#x; want 0", got)
	}
}

func TestRequirementsMonotonic(t *testing.T) {
	for tier := I486; tier <= MaxKnownTier; tier++ {
		prev, curr := Requirements(tier-1), Requirements(tier)
		if !curr.Satisfies(prev) {
			t.Errorf("requirements for %v do not include requirements for %v", tier, tier-1)
		}
		if prev.Satisfies(curr) {
			t.Errorf("requirements for %v are the same as requirements for %v", tier, tier-1)
		}
	}
}

func TestTierOfRequirements(t *testing.T) {
	for tier := I386; tier < FamilyBoundary; tier++ {
		if got := Tier32(Requirements(tier)); got != tier {
			t.Errorf("Tier32(Requirements(%v)) = %v", tier, got)
		}
	}
	for tier := FamilyBoundary; tier <= MaxKnownTier; tier++ {
		if got := Tier64(Requirements(tier)); got != tier {
			t.Errorf("Tier64(Requirements(%v)) = %v", tier, got)
		}
	}
}

func TestNewDetector(t *testing.T) {
	tab := haswell.table()
	tests := []struct {
		arch    system.Architecture
		want    Tier
		wantErr error
	}{
		{arch: "x86_64", want: X86_64V3},
		{arch: "i686", want: I686},
		{arch: "aarch64", wantErr: ErrUnsupported},
	}
	for _, test := range tests {
		d, err := NewDetector(test.arch, tab)
		if test.wantErr != nil {
			if !errors.Is(err, test.wantErr) {
				t.Errorf("NewDetector(%q, ...) error = %v; want %v", test.arch, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewDetector(%q, ...): %v", test.arch, err)
			continue
		}
		if got := d.MaxTier(); got != test.want {
			t.Errorf("NewDetector(%q, ...).MaxTier() = %v; want %v", test.arch, got, test.want)
		}
	}
}

func TestFeatureMaskNames(t *testing.T) {
	got := ReadFeatures(nehalem.table()).Names()
	want := []string{
		"fpu", "cx8", "sep", "cmov", "mmx", "fxsr", "sse", "sse2",
		"pni", "ssse3", "cx16", "sse4_1", "sse4_2", "popcnt",
		"lahf_lm",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}
}

func TestFeatureMaskWords(t *testing.T) {
	m := ReadFeatures(skylakeX.table())
	got := m.Words()
	want := []Word{
		{cpuid.Query{Leaf: cpuid.LeafFeatures}, cpuid.EDX, uint32(x86_64EDX)},
		{cpuid.Query{Leaf: cpuid.LeafFeatures}, cpuid.ECX, uint32(v3ECX | POPCNT)},
		{cpuid.Query{Leaf: cpuid.LeafExtendedFeatures}, cpuid.ECX, uint32(v3ExtECX)},
		{cpuid.Query{Leaf: cpuid.LeafStructuredFeatures}, cpuid.EBX, uint32(v4EBX)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Words() (-want +got):\n%s", diff)
	}
}
