// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package def defines all default values used in mutebase64.
package def

import (
	"github.com/mutecomm/mutebase64/def/version"
)

// Version is the version reported by --version.
const Version = version.Number

// CmdPrefix is the 5 character command prefix used in log messages.
const CmdPrefix = "b64en"

// LogLevel is the default logging level.
const LogLevel = "info"

// OutputBufferSize is the size of the buffer in front of stdout.
const OutputBufferSize = 32 * 1024

// InputBufferSize is the size of the buffer behind the input file.
const InputBufferSize = 32 * 1024
