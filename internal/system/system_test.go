// Copyright 2024 Roxy Light
// SPDX-License-Identifier: MIT

package system

import (
	"runtime"
	"testing"
)

func TestArchitecture(t *testing.T) {
	tests := []struct {
		arch   Architecture
		is32   bool
		is64   bool
		isX86  bool
		string string
	}{
		{arch: "i386", is32: true, isX86: true, string: "i386"},
		{arch: "i686", is32: true, isX86: true, string: "i686"},
		{arch: "x86_64", is64: true, isX86: true, string: "x86_64"},
		{arch: "amd64", is64: true, isX86: true, string: "amd64"},
		{arch: "aarch64", string: "aarch64"},
		{arch: "", string: "unknown"},
	}
	for _, test := range tests {
		if got := test.arch.Is32Bit(); got != test.is32 {
			t.Errorf("Architecture(%q).Is32Bit() = %t; want %t", test.arch, got, test.is32)
		}
		if got := test.arch.Is64Bit(); got != test.is64 {
			t.Errorf("Architecture(%q).Is64Bit() = %t; want %t", test.arch, got, test.is64)
		}
		if got := test.arch.IsX86(); got != test.isX86 {
			t.Errorf("Architecture(%q).IsX86() = %t; want %t", test.arch, got, test.isX86)
		}
		if got := test.arch.String(); got != test.string {
			t.Errorf("Architecture(%q).String() = %q; want %q", test.arch, got, test.string)
		}
	}
}

func TestForGOARCH(t *testing.T) {
	tests := []struct {
		goarch string
		want   Architecture
	}{
		{"386", "i686"},
		{"amd64", "x86_64"},
		{"arm64", "aarch64"},
		{"mips", Unknown},
	}
	for _, test := range tests {
		if got := ForGOARCH(test.goarch); got != test.want {
			t.Errorf("ForGOARCH(%q) = %q; want %q", test.goarch, got, test.want)
		}
	}
}

func TestCurrent(t *testing.T) {
	got := Current()
	if got.OS.IsUnknown() {
		t.Errorf("Current() = %+v (should not have unknown OS)", got)
	}
	if runtime.GOOS == "linux" && !got.OS.IsLinux() {
		t.Errorf("Current().OS = %q; want linux", got.OS)
	}
	if got, want := (System{Arch: "x86_64", OS: "linux"}).String(), "x86_64-linux"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
