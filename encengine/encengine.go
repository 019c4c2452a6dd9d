// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encengine implements the command engine for mutebase64.
package encengine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/structs"
	"github.com/mutecomm/mutebase64/def"
	"github.com/mutecomm/mutebase64/encode/base64"
	"github.com/mutecomm/mutebase64/log"
	"github.com/mutecomm/mutebase64/util"
	"github.com/mutecomm/mutebase64/util/descriptors"
	"github.com/urfave/cli"
)

// ErrUsage is returned if mutebase64 is called with a wrong number of
// arguments or with unknown options. The usage has already been printed.
var ErrUsage = errors.New("encengine: usage error")

// Options are the effective options of an encoding run.
type Options struct {
	LogLevel   string
	LogDir     string
	LogConsole bool
	Input      string
}

// EncEngine abstracts a mutebase64 command engine.
type EncEngine struct {
	opts Options
	app  *cli.App
}

func (ee *EncEngine) usage() {
	fmt.Fprintf(ee.app.ErrWriter, "Usage: %s [FILE]\n", ee.app.Name)
}

func (ee *EncEngine) prepare(c *cli.Context) error {
	ee.opts = Options{
		LogLevel:   c.String("loglevel"),
		LogDir:     c.String("logdir"),
		LogConsole: c.Bool("logconsole"),
		Input:      c.Args().First(),
	}

	// create the log directory if it doesn't already exist
	if err := util.CreateDirs(ee.opts.LogDir); err != nil {
		return err
	}

	// initialize logging framework
	err := log.Init(ee.opts.LogLevel, def.CmdPrefix, ee.opts.LogDir,
		ee.opts.LogConsole)
	if err != nil {
		return err
	}
	log.Debugf("encengine: options %v", structs.Map(&ee.opts))
	return nil
}

// encode writes the base64 encoding of the selected input to the app writer.
func (ee *EncEngine) encode(c *cli.Context) error {
	if c.Bool("help") {
		cli.ShowAppHelp(c)
		return nil
	}
	if len(c.Args()) > 1 {
		ee.usage()
		return log.Error(ErrUsage)
	}
	if err := ee.prepare(c); err != nil {
		return err
	}

	in, err := descriptors.Open(ee.opts.Input)
	if err != nil {
		return err
	}
	defer in.Close()
	log.Infof("encengine: encoding %s", in.Name)

	out := bufio.NewWriterSize(c.App.Writer, def.OutputBufferSize)
	enc := base64.NewEncoder(out)
	n, err := enc.ReadFrom(bufio.NewReaderSize(in.FP, def.InputBufferSize))
	if err == nil {
		err = enc.Close()
	}
	if err != nil {
		// leave what has been encoded so far on the output
		out.Flush()
		return err
	}
	if err := out.Flush(); err != nil {
		return log.Error(&base64.WriteError{Err: err})
	}
	log.Infof("encengine: encoded %d bytes into %d characters", n,
		enc.Written())
	return nil
}

// New returns a new mutebase64 command engine which writes to stdout and
// stderr.
func New() *EncEngine {
	return newEngine(os.Stdout, os.Stderr)
}

func newEngine(stdout, stderr io.Writer) *EncEngine {
	var ee EncEngine
	ee.app = cli.NewApp()
	ee.app.Usage = "encode FILE, or standard input, to base64 on standard output"
	ee.app.ArgsUsage = "[FILE]"
	ee.app.Description = "With no FILE, or when FILE is -, read standard input.\n" +
		"   Lines are wrapped after 76 characters."
	ee.app.Version = def.Version
	ee.app.Writer = stdout
	ee.app.ErrWriter = stderr
	// FILE could be called "help"
	ee.app.HideHelp = true
	ee.app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "help, h",
			Usage: "show help",
		},
		cli.StringFlag{
			Name:  "loglevel",
			Value: def.LogLevel,
			Usage: "logging level {trace, debug, info, warn, error, critical}",
		},
		cli.StringFlag{
			Name:  "logdir",
			Usage: "directory to log output",
		},
		cli.BoolFlag{
			Name:  "logconsole",
			Usage: "enable logging to stderr",
		},
	}
	ee.app.OnUsageError = func(c *cli.Context, err error, isSubcommand bool) error {
		fmt.Fprintf(ee.app.ErrWriter, "%s: %s\n", ee.app.Name, err)
		ee.usage()
		return ErrUsage
	}
	ee.app.Action = func(c *cli.Context) error {
		return ee.encode(c)
	}
	return &ee
}

// Run runs the engine with the given command line arguments.
func (ee *EncEngine) Run(args []string) error {
	ee.app.Name = filepath.Base(args[0])
	return ee.app.Run(args)
}
