// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mutebase64 encodes a file, or standard input, to base64 on standard output.
package main

import (
	"errors"
	"os"

	"github.com/mutecomm/mutebase64/encengine"
	"github.com/mutecomm/mutebase64/log"
	"github.com/mutecomm/mutebase64/release"
	"github.com/mutecomm/mutebase64/util"
	"github.com/mutecomm/mutebase64/util/interrupt"
	"github.com/urfave/cli"
)

func init() {
	cli.VersionPrinter = release.PrintVersion
}

func mutebase64Main() error {
	defer log.Flush()

	// create encoding engine
	ee := encengine.New()

	// add interrupt handler
	interrupt.AddInterruptHandler(func() {
		log.Infof("interrupted, output is incomplete")
	})

	// run encoding engine
	go func() {
		interrupt.ShutdownChannel <- ee.Run(os.Args)
	}()

	return <-interrupt.ShutdownChannel
}

func main() {
	// work around defer not working after os.Exit()
	if err := mutebase64Main(); err != nil {
		if errors.Is(err, encengine.ErrUsage) {
			// usage has been printed already
			os.Exit(1)
		}
		util.Fatal(err)
	}
}
