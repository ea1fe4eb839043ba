// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"golang.org/x/term"
)

func writeJSON(w io.Writer, v any) error {
	data, err := jsonv2.Marshal(v, jsontext.Multiline(true))
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// highlighter emphasizes text when writing to a terminal.
type highlighter bool

func stdoutHighlighter() highlighter {
	return highlighter(term.IsTerminal(int(os.Stdout.Fd())))
}

func (h highlighter) good(s string) string {
	if !h {
		return s
	}
	return "\x1b[1;32m" + s + "\x1b[0m"
}

func (h highlighter) faint(s string) string {
	if !h {
		return s
	}
	return "\x1b[2m" + s + "\x1b[0m"
}
