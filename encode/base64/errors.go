// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

// ReadError is returned if reading the input failed.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "base64: read error: " + e.Err.Error()
}

// Unwrap returns the underlying I/O error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError is returned if writing the encoded output failed.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "base64: write error: " + e.Err.Error()
}

// Unwrap returns the underlying I/O error.
func (e *WriteError) Unwrap() error {
	return e.Err
}
