// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"zb.256lights.llc/hwcaps/internal/hwcaps"
)

// MaxPathLen is the capacity of a candidate path, including its terminating NUL.
// It matches Linux's PATH_MAX, so the longest candidate is MaxPathLen-1 bytes.
const MaxPathLen = 4096

// hwcapsDir is the directory under the installation root
// that holds one subdirectory per tier.
const hwcapsDir = "hwcaps/"

// A PathBuilder formats candidate paths of the form
// "<prefix>hwcaps/<arch-name>/<suffix>" in a fixed-size buffer.
//
// Stepping down to the next lower tier of the same family
// only rewrites the tier digit; the rest of the path is reused.
type PathBuilder struct {
	buf    [MaxPathLen]byte
	suffix string
	base   int // end of "<prefix>hwcaps/"
	digit  int // position of the tier digit
	n      int // length of the current path, excluding NUL

	hasTier bool
	tier    hwcaps.Tier
}

// NewPathBuilder returns a builder for the command whose resolved path
// was split into prefix and suffix by [SplitTarget].
func NewPathBuilder(prefix, suffix string) (*PathBuilder, error) {
	if len(prefix)+len(hwcapsDir) >= MaxPathLen {
		return nil, &Error{
			Code: TargetPathTooLarge,
			Msg:  "target path too large",
			Path: prefix + hwcapsDir,
		}
	}
	b := &PathBuilder{suffix: suffix}
	b.base = copy(b.buf[:], prefix)
	b.base += copy(b.buf[b.base:], hwcapsDir)
	return b, nil
}

// Build returns the candidate path for tier t.
// Errors have the code [TargetPathTooLarge].
func (b *PathBuilder) Build(t hwcaps.Tier) (string, error) {
	if b.hasTier && t+1 == b.tier && !hwcaps.ArchNameChanged(t) {
		b.buf[b.digit] = t.Digit()
	} else if err := b.format(t); err != nil {
		return "", err
	}
	b.hasTier = true
	b.tier = t
	return string(b.buf[:b.n]), nil
}

// format writes the architecture name for t and the suffix after it.
func (b *PathBuilder) format(t hwcaps.Tier) error {
	digit, nameLen, err := hwcaps.FormatArchName(b.buf[b.base:], t)
	if err != nil {
		return &Error{
			Code: TargetPathTooLarge,
			Msg:  "target path too large",
			Path: string(b.buf[:b.base]) + t.String(),
			Err:  err,
		}
	}
	end := b.base + nameLen + 1 + len(b.suffix)
	if end >= MaxPathLen {
		// Leave the builder untouched for the next call to reformat.
		b.hasTier = false
		return &Error{
			Code: TargetPathTooLarge,
			Msg:  "target path too large",
			Path: string(b.buf[:b.base+nameLen]) + "/" + b.suffix,
		}
	}
	b.buf[b.base+nameLen] = '/'
	copy(b.buf[b.base+nameLen+1:], b.suffix)
	b.buf[end] = 0
	b.digit = b.base + digit
	b.n = end
	return nil
}

// Candidate is a path the loader attempts to execute.
type Candidate struct {
	Tier hwcaps.Tier
	Path string
}

// Candidates returns the candidate paths for every tier from max down to zero,
// in the order they are tried.
func (b *PathBuilder) Candidates(max hwcaps.Tier) ([]Candidate, error) {
	list := make([]Candidate, 0, int(max)+1)
	for t := range descending(max) {
		p, err := b.Build(t)
		if err != nil {
			return nil, err
		}
		list = append(list, Candidate{Tier: t, Path: p})
	}
	return list, nil
}

// descending yields max, max-1, ..., 0.
func descending(max hwcaps.Tier) func(yield func(hwcaps.Tier) bool) {
	return func(yield func(hwcaps.Tier) bool) {
		for t := max; ; t-- {
			if !yield(t) || t == 0 {
				return
			}
		}
	}
}
