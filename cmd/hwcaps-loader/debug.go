// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

//go:build !hwcaps_debug

package main

const debugLogging = false
