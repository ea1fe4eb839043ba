// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build !hwcaps_noselfguard

package main

const selfExecGuard = true
