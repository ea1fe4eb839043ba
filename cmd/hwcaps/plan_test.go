// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build linux

package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
	"zb.256lights.llc/hwcaps/internal/elfhdr"
	"zb.256lights.llc/hwcaps/internal/hwcaps"
	"zb.256lights.llc/hwcaps/internal/loader"
	"zb.256lights.llc/hwcaps/internal/testcontext"
)

// newInstallTree creates root/bin/hwcaps-loader, root/bin/foo linked to it,
// and root/hwcaps/<tier>/bin/foo for each of the given tiers.
func newInstallTree(t *testing.T, tiers ...hwcaps.Tier) (root string) {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	binDir := filepath.Join(root, "bin")
	if err := os.MkdirAll(binDir, 0o777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "hwcaps-loader"), nil, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink("hwcaps-loader", filepath.Join(binDir, "foo")); err != nil {
		t.Fatal(err)
	}
	for _, tier := range tiers {
		dir := filepath.Join(root, "hwcaps", tier.String(), "bin")
		if err := os.MkdirAll(dir, 0o777); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "foo"), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestRunPlan(t *testing.T) {
	ctx, cancel := testcontext.New(t)
	defer cancel()
	root := newInstallTree(t, hwcaps.X86_64V1, hwcaps.I686)

	sb := new(strings.Builder)
	opts := &planOptions{
		command: filepath.Join(root, "bin", "foo"),
		json:    true,
	}
	if err := runPlan(ctx, sb, false, loader.Linux(), hwcaps.X86_64V2, opts); err != nil {
		t.Fatal(err)
	}
	var got planResult
	if err := jsonv2.Unmarshal([]byte(sb.String()), &got); err != nil {
		t.Fatalf("%v\n%s", err, sb)
	}
	candidate := func(tier hwcaps.Tier, exists, selected bool) planCandidate {
		return planCandidate{
			Tier:       tier,
			Path:       filepath.Join(root, "hwcaps", tier.String(), "bin", "foo"),
			Exists:     exists,
			Executable: exists,
			Selected:   selected,
		}
	}
	want := planResult{
		Loader:  filepath.Join(root, "bin", "hwcaps-loader"),
		Command: filepath.Join(root, "bin", "foo"),
		MaxTier: hwcaps.X86_64V2,
		Candidates: []planCandidate{
			candidate(hwcaps.X86_64V2, false, false),
			candidate(hwcaps.X86_64V1, true, true),
			candidate(hwcaps.I686, true, false),
			candidate(hwcaps.I586, false, false),
			candidate(hwcaps.I486, false, false),
			candidate(hwcaps.I386, false, false),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("plan (-want +got):\n%s", diff)
	}
}

func TestRunPlanText(t *testing.T) {
	ctx, cancel := testcontext.New(t)
	defer cancel()
	root := newInstallTree(t, hwcaps.I586)

	sb := new(strings.Builder)
	opts := &planOptions{
		command:    filepath.Join(root, "bin", "foo"),
		loaderPath: filepath.Join(root, "bin", "hwcaps-loader"),
	}
	if err := runPlan(ctx, sb, false, loader.Linux(), hwcaps.I686, opts); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines; want 4:\n%s", len(lines), sb)
	}
	if want := filepath.Join(root, "hwcaps", "i686", "bin", "foo") + "  missing"; !strings.HasSuffix(lines[0], want) {
		t.Errorf("line 1 = %q; want suffix %q", lines[0], want)
	}
	if want := filepath.Join(root, "hwcaps", "i586", "bin", "foo") + "  selected"; !strings.HasSuffix(lines[1], want) {
		t.Errorf("line 2 = %q; want suffix %q", lines[1], want)
	}
}

func TestRunPlanOutsideRoot(t *testing.T) {
	ctx, cancel := testcontext.New(t)
	defer cancel()
	root := newInstallTree(t)
	other, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	outside := filepath.Join(other, "foo")
	if err := os.WriteFile(outside, nil, 0o755); err != nil {
		t.Fatal(err)
	}

	opts := &planOptions{
		command:    outside,
		loaderPath: filepath.Join(root, "bin", "hwcaps-loader"),
	}
	err = runPlan(ctx, new(strings.Builder), false, loader.Linux(), hwcaps.I686, opts)
	if code := loader.ExitCodeOf(err); code != loader.TargetPathInvalid {
		t.Errorf("runPlan(...) = %v (code %v); want code %v", err, code, loader.TargetPathInvalid)
	}
}

func TestCheckMachine(t *testing.T) {
	dir := t.TempDir()
	writeELF := func(name string, class byte, machine elfhdr.Machine) string {
		buf := make([]byte, 64)
		copy(buf, "\x7fELF")
		buf[4] = class
		buf[5] = 1 // little-endian
		buf[6] = 1
		binary.LittleEndian.PutUint16(buf[16:], uint16(elfhdr.TypeDyn))
		binary.LittleEndian.PutUint16(buf[18:], uint16(machine))
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, buf, 0o755); err != nil {
			t.Fatal(err)
		}
		return path
	}
	amd64 := writeELF("amd64", 2, elfhdr.MachineX86_64)
	i386 := writeELF("i386", 1, elfhdr.Machine386)
	script := filepath.Join(dir, "script")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		c           loader.Candidate
		wantMachine string
		wantErr     bool
	}{
		{loader.Candidate{Tier: hwcaps.X86_64V3, Path: amd64}, "EM_X86_64", false},
		{loader.Candidate{Tier: hwcaps.I686, Path: i386}, "EM_386", false},
		{loader.Candidate{Tier: hwcaps.X86_64V1, Path: i386}, "EM_386", true},
		{loader.Candidate{Tier: hwcaps.I586, Path: amd64}, "EM_X86_64", true},
		{loader.Candidate{Tier: hwcaps.X86_64V2, Path: script}, "", false},
	}
	for _, test := range tests {
		got, err := checkMachine(test.c)
		if got != test.wantMachine || (err != nil) != test.wantErr {
			t.Errorf("checkMachine(%+v) = %q, %v; want %q, error = %t", test.c, got, err, test.wantMachine, test.wantErr)
		}
	}
}
