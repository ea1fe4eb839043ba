// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package hwcaps

import (
	"errors"
	"fmt"
	"strconv"
)

// Tier is an ordered x86 capability level.
// Larger tiers require strictly more instruction set extensions
// than smaller tiers of the same family.
//
// Tiers below [FamilyBoundary] belong to the 32-bit family
// and are named after the processor generation ("i386" through "i686").
// Tiers at or above it belong to the 64-bit family
// and are named after the x86-64 psABI microarchitecture levels
// ("x86-64-v1" through "x86-64-v4").
type Tier uint8

// Known tiers.
const (
	I386 Tier = iota
	I486
	I586
	I686
	X86_64V1
	X86_64V2
	X86_64V3
	X86_64V4
)

// FamilyBoundary is the lowest tier of the 64-bit family.
const FamilyBoundary = X86_64V1

// MaxKnownTier is the most capable tier this package can name.
const MaxKnownTier = X86_64V4

// Architecture name templates.
// The '?' is replaced with the tier's digit.
const (
	x86NameTemplate    = "i?86"
	x86_64NameTemplate = "x86-64-v?"

	x86DigitOffset    = 1
	x86_64DigitOffset = 8
)

// MaxArchNameLen is the length of the longest architecture name.
const MaxArchNameLen = len(x86_64NameTemplate)

// tierDigits maps a tier to the single character
// that distinguishes it from its neighbors in the same family.
const tierDigits = "3456" + "1234"

// Errors returned by [FormatArchName] and [ParseTier].
var (
	ErrShortBuffer = errors.New("buffer too small for architecture name")
	ErrTierRange   = errors.New("tier out of range")
)

// IsValid reports whether t is a known tier.
func (t Tier) IsValid() bool {
	return t <= MaxKnownTier
}

// Is64Bit reports whether t belongs to the 64-bit family.
func (t Tier) Is64Bit() bool {
	return t >= FamilyBoundary
}

// Digit returns the character of t's architecture name
// that differs between tiers of the same family.
// It panics if t is not valid.
func (t Tier) Digit() byte {
	if !t.IsValid() {
		panic(fmt.Errorf("digit of %v: %w", t, ErrTierRange))
	}
	return tierDigits[t]
}

// String returns the tier's architecture name (e.g. "x86-64-v3").
func (t Tier) String() string {
	var buf [MaxArchNameLen]byte
	_, n, err := FormatArchName(buf[:], t)
	if err != nil {
		return "Tier(" + strconv.Itoa(int(t)) + ")"
	}
	return string(buf[:n])
}

// MarshalText returns the tier's architecture name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("marshal %v: %w", t, ErrTierRange)
	}
	return []byte(t.String()), nil
}

// UnmarshalText parses an architecture name with [ParseTier].
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTier returns the tier with the given architecture name.
func ParseTier(name string) (Tier, error) {
	for t := I386; t <= MaxKnownTier; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("parse tier %q: %w", name, ErrTierRange)
}

// ArchNameChanged reports whether stepping down from t+1 to t
// crosses from the 64-bit family into the 32-bit family.
// When it returns false for a descending step,
// the two tiers' names differ only in their digit.
func ArchNameChanged(t Tier) bool {
	return t+1 == FamilyBoundary
}

// FormatArchName writes the architecture name of t to the start of buf.
// It returns the offset of t's digit within buf
// and the number of bytes written.
// Overwriting buf[digit] with another tier's [Tier.Digit]
// yields that tier's name, provided both tiers are in the same family.
func FormatArchName(buf []byte, t Tier) (digit, n int, err error) {
	if !t.IsValid() {
		return 0, 0, fmt.Errorf("format architecture name for %d: %w", uint8(t), ErrTierRange)
	}
	template, digit := x86NameTemplate, x86DigitOffset
	if t.Is64Bit() {
		template, digit = x86_64NameTemplate, x86_64DigitOffset
	}
	if len(buf) < len(template) {
		return 0, 0, fmt.Errorf("format architecture name for %d: %w", uint8(t), ErrShortBuffer)
	}
	n = copy(buf, template)
	buf[digit] = t.Digit()
	return digit, n, nil
}
