// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cihub/seelog"
)

var logger seelog.LoggerInterface

// formatTemplate is the message format, the %s is replaced by the command prefix.
const formatTemplate = "%%UTCDate %%UTCTime [%s] [%%LEV] %%Msg%%n"

const fileConfig = `
<seelog type="adaptive" mininterval="2000000" maxinterval="100000000"
	critmsgcount="500" minlevel="%s">
	<outputs formatid="all">
		<rollingfile type="size" filename="%s" maxsize="10485760" maxrolls="3" />
	</outputs>
	<formats>
		<format id="all" format="%s" />
	</formats>
</seelog>`

func init() {
	// disable logger by default
	logger = seelog.Disabled
}

// Init initializes the logging framework to the given logging level.
// If logDir is not empty logging is done to a rolling logfile in that
// directory. If logToStderr is true logging is done to stderr.
// Standard output is never used, it carries the encoded data.
// cmdPrefix must be a 5 character long command prefix.
// If neither logDir nor logToStderr is set, logging stays disabled.
// If the given level is invalid or the initialization fails, an
// error is returned.
func Init(logLevel, cmdPrefix, logDir string, logToStderr bool) error {
	// check level string
	level, found := seelog.LogLevelFromString(logLevel)
	if !found {
		return fmt.Errorf("log: level '%s' is invalid", logLevel)
	}
	// check cmdPrefix
	if len(cmdPrefix) != 5 {
		return fmt.Errorf("len(cmdPrefix) must be 5: \"%s\"", cmdPrefix)
	}
	if logDir != "" && logToStderr {
		return errors.New("log: logging to directory and stderr are mutually exclusive")
	}
	msgFormat := fmt.Sprintf(formatTemplate, cmdPrefix)
	// create logger
	var (
		newLogger seelog.LoggerInterface
		err       error
	)
	switch {
	case logDir != "":
		file := filepath.Join(logDir, filepath.Base(os.Args[0])+".log")
		config := fmt.Sprintf(fileConfig, logLevel, file, msgFormat)
		newLogger, err = seelog.LoggerFromConfigAsString(config)
	case logToStderr:
		newLogger, err = seelog.LoggerFromWriterWithMinLevelAndFormat(os.Stderr,
			level, msgFormat)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	newLogger.SetAdditionalStackDepth(1)
	// replace logger
	UseLogger(newLogger)
	// log info about running binary
	Infof("%s started (built with %s %s for %s/%s)", os.Args[0], runtime.Compiler,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

// Flush flushes all the messages in the logger.
func Flush() {
	Infof("%s stopping", os.Args[0])
	logger.Flush()
}

// Critical formats message using the default formats for its operands and
// writes to default logger with log level = Critical.
func Critical(v ...interface{}) error {
	if len(v) == 1 {
		err, ok := v[0].(error)
		if ok {
			logger.Critical(err)
			return err
		}
	}
	return logger.Critical(v...)
}

// Criticalf formats message according to format specifier and writes to
// default logger with log level = Critical.
func Criticalf(format string, params ...interface{}) error {
	return logger.Criticalf(format, params...)
}

// Error formats message using the default formats for its operands and writes
// to default logger with log level = Error.
// If v is a single error, that error is returned unchanged.
func Error(v ...interface{}) error {
	if len(v) == 1 {
		err, ok := v[0].(error)
		if ok {
			logger.Error(err)
			return err
		}
	}
	return logger.Error(v...)
}

// Errorf formats message according to format specifier and writes to default
// logger with log level = Error.
func Errorf(format string, params ...interface{}) error {
	return logger.Errorf(format, params...)
}

// Warn formats message using the default formats for its operands and writes
// to default logger with log level = Warn.
func Warn(v ...interface{}) error {
	if len(v) == 1 {
		err, ok := v[0].(error)
		if ok {
			logger.Warn(err)
			return err
		}
	}
	return logger.Warn(v...)
}

// Warnf formats message according to format specifier and writes to default
// logger with log level = Warn.
func Warnf(format string, params ...interface{}) error {
	return logger.Warnf(format, params...)
}

// Info formats message using the default formats for its operands and writes
// to default logger with log level = Info.
func Info(v ...interface{}) {
	logger.Info(v...)
}

// Infof formats message according to format specifier and writes to default
// logger with log level = Info.
func Infof(format string, params ...interface{}) {
	logger.Infof(format, params...)
}

// Debug formats message using the default formats for its operands and writes
// to default logger with log level = Debug.
func Debug(v ...interface{}) {
	logger.Debug(v...)
}

// Debugf formats message according to format specifier and writes to default
// logger with log level = Debug.
func Debugf(format string, params ...interface{}) {
	logger.Debugf(format, params...)
}

// Trace formats message using the default formats for its operands and writes
// to default logger with log level = Trace.
func Trace(v ...interface{}) {
	logger.Trace(v...)
}

// Tracef formats message according to format specifier and writes to default
// logger with log level = Trace.
func Tracef(format string, params ...interface{}) {
	logger.Tracef(format, params...)
}

// UseLogger uses a specified seelog.LoggerInterface to output library log.
func UseLogger(newLogger seelog.LoggerInterface) {
	logger = newLogger
}

// Disable turns logging off again.
func Disable() {
	UseLogger(seelog.Disabled)
}

// SetLogWriter uses a specified io.Writer to output library log.
func SetLogWriter(writer io.Writer) error {
	if writer == nil {
		return errors.New("log: nil writer")
	}

	newLogger, err := seelog.LoggerFromWriterWithMinLevel(writer, seelog.TraceLvl)
	if err != nil {
		return err
	}

	UseLogger(newLogger)
	return nil
}
