// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package descriptors selects the input file of mutebase64.
package descriptors

import (
	"fmt"
	"os"

	"github.com/frankbraun/codechain/util/file"
	"github.com/mutecomm/mutebase64/log"
	"golang.org/x/crypto/ssh/terminal"
)

// Stdin is the input name which selects standard input.
const Stdin = "-"

// OpenError is returned if the named input file cannot be opened.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("descriptors: cannot open '%s': %s", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// Input is an opened input file.
type Input struct {
	Name  string   // input name ("stdin" for standard input)
	FP    *os.File // input file pointer
	stdin bool
}

// IsStdin returns true if name selects standard input.
func IsStdin(name string) bool {
	return name == "" || name == Stdin
}

// Open opens the input with the given name. An empty name or "-" selects
// standard input, which is never closed by Close.
func Open(name string) (*Input, error) {
	if IsStdin(name) {
		if terminal.IsTerminal(int(os.Stdin.Fd())) {
			log.Info("descriptors: reading from terminal, end input with Ctrl+D")
		}
		return &Input{Name: "stdin", FP: os.Stdin, stdin: true}, nil
	}
	exists, err := file.Exists(name)
	if err != nil {
		return nil, log.Error(&OpenError{Name: name, Err: err})
	}
	if !exists {
		return nil, log.Error(&OpenError{Name: name, Err: os.ErrNotExist})
	}
	fp, err := os.Open(name)
	if err != nil {
		return nil, log.Error(&OpenError{Name: name, Err: err})
	}
	log.Debugf("descriptors: opened '%s'", name)
	return &Input{Name: name, FP: fp}, nil
}

// Close closes the input file, unless it is standard input.
func (in *Input) Close() error {
	if in.stdin || in.FP == nil {
		return nil
	}
	err := in.FP.Close()
	in.FP = nil
	return err
}
