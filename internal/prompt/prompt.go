// Copyright 2024 The DCF77-Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prompt collects validated integer answers from an
// interactive command line, re-asking until the answer parses and
// satisfies the field's predicate.
package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineReader yields one line of user input per call.
// *liner.State implements it.
type LineReader interface {
	Prompt(string) (string, error)
}

// Asker runs typed, validated prompts against a line reader.
type Asker struct {
	rd  LineReader
	msg io.Writer // where rejected answers are reported
}

// New returns an Asker reading from rd and reporting invalid answers
// to msg.
func New(rd LineReader, msg io.Writer) *Asker {
	return &Asker{rd: rd, msg: msg}
}

// Int asks for an integer until valid accepts it, printing errMsg for
// every rejected answer. Read errors (EOF, interrupt) abort the loop
// and propagate.
func (ask *Asker) Int(prompt string, valid func(int) bool, errMsg string) (int, error) {
	for {
		line, err := ask.rd.Prompt(prompt)
		if err != nil {
			return 0, fmt.Errorf("prompt: could not read answer to %q: %w", prompt, err)
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || !valid(v) {
			fmt.Fprintln(ask.msg, errMsg)
			continue
		}
		return v, nil
	}
}

// Bool01 asks for a 0/1 flag.
func (ask *Asker) Bool01(prompt, errMsg string) (bool, error) {
	v, err := ask.Int(prompt, func(x int) bool { return x == 0 || x == 1 }, errMsg)
	return v == 1, err
}
