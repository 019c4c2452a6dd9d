// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package release

// Commit and Date describe the release commit. They are set at build time:
//
//   go build -ldflags "-X github.com/mutecomm/mutebase64/release.Commit=$(git rev-parse HEAD)"
var (
	Commit = "unknown"
	Date   = "unknown"
)
