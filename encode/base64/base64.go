// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base64 implements the streaming base64 encoder of mutebase64.
//
// The encoder reads its input in chunks of three bytes and writes groups of
// four characters from the standard alphabet (RFC 4648, table 1), wrapped at
// LineLength characters per line.
package base64

import (
	"io"

	"github.com/mutecomm/mutebase64/log"
	"github.com/mutecomm/mutebase64/util/bzero"
)

// Alphabet is the standard base64 alphabet.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Pad is the padding character used in the final group.
const Pad = '='

// LineLength is the number of characters after which a line break is written.
const LineLength = 76

var newline = []byte{'\n'}

// Encoder is a streaming base64 encoder which writes to an underlying
// io.Writer.
type Encoder struct {
	w       io.Writer
	col     int   // characters written since the last line break
	written int64 // characters written to w, line breaks included
	group   [4]byte
}

// NewEncoder returns a new base64 stream encoder writing to w.
// Close must be called after the last ReadFrom to terminate the last line.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// encodeChunk encodes chunk (1 to 3 bytes) into dst. Absent bytes count as
// zero bits and their positions are filled with Pad.
func encodeChunk(dst *[4]byte, chunk []byte) {
	var b0, b1, b2 byte
	switch len(chunk) {
	case 3:
		b2 = chunk[2]
		fallthrough
	case 2:
		b1 = chunk[1]
		fallthrough
	case 1:
		b0 = chunk[0]
	default:
		panic(log.Criticalf("base64: chunk of length %d", len(chunk)))
	}
	idx := [4]byte{
		b0 >> 2,
		(b0&0x03)<<4 | b1>>4,
		(b1&0x0f)<<2 | b2>>6,
		b2 & 0x3f,
	}
	for i := range dst {
		if i <= len(chunk) {
			dst[i] = Alphabet[idx[i]]
		} else {
			dst[i] = Pad
		}
	}
}

// readChunk reads up to len(buf) bytes from r. It only returns less than
// len(buf) bytes at the end of the stream, short reads in between are
// continued.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}

// ReadFrom reads r until the end of the stream and writes its base64 encoding
// to the underlying writer. It returns the number of bytes read from r.
// The first read or write error aborts the encoding.
func (e *Encoder) ReadFrom(r io.Reader) (int64, error) {
	var (
		chunk [3]byte
		total int64
	)
	defer bzero.Bytes(chunk[:])
	for {
		n, err := readChunk(r, chunk[:])
		if err != nil {
			return total, log.Error(&ReadError{Err: err})
		}
		if n == 0 {
			return total, nil
		}
		total += int64(n)
		if err := e.writeGroup(chunk[:n]); err != nil {
			return total, err
		}
	}
}

func (e *Encoder) writeGroup(chunk []byte) error {
	encodeChunk(&e.group, chunk)
	if err := e.write(e.group[:]); err != nil {
		return err
	}
	e.col += len(e.group)
	if e.col >= LineLength {
		if err := e.write(newline); err != nil {
			return err
		}
		e.col = 0
	}
	return nil
}

func (e *Encoder) write(p []byte) error {
	n, err := e.w.Write(p)
	e.written += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return log.Error(&WriteError{Err: err})
	}
	return nil
}

// Close terminates a partially written line with a line break.
// It does not close the underlying writer.
func (e *Encoder) Close() error {
	if e.col == 0 {
		return nil
	}
	if err := e.write(newline); err != nil {
		return err
	}
	e.col = 0
	return nil
}

// Written returns the number of characters written to the underlying writer,
// including line breaks.
func (e *Encoder) Written() int64 {
	return e.written
}

// Stream writes the base64 encoding of everything read from r to w.
func Stream(w io.Writer, r io.Reader) error {
	enc := NewEncoder(w)
	if _, err := enc.ReadFrom(r); err != nil {
		return err
	}
	return enc.Close()
}
