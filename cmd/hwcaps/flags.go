// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"zb.256lights.llc/hwcaps/internal/hwcaps"
)

// tierFlag is a [pflag.Value] that accepts an architecture name such as "x86-64-v2".
type tierFlag struct {
	tier  hwcaps.Tier
	valid bool
}

func (f *tierFlag) Type() string { return "tier" }

func (f *tierFlag) String() string {
	if !f.valid {
		return ""
	}
	return f.tier.String()
}

func (f *tierFlag) Set(s string) error {
	t, err := hwcaps.ParseTier(s)
	if err != nil {
		return err
	}
	f.tier = t
	f.valid = true
	return nil
}

// get returns the flag's tier or def if the flag was not set.
func (f *tierFlag) get(def hwcaps.Tier) hwcaps.Tier {
	if !f.valid {
		return def
	}
	return f.tier
}
