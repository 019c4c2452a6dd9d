package log_test

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"testing"

	"github.com/mutecomm/mutebase64/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	assert.NoError(t, log.Init("info", "test ", "", false))
	assert.Error(t, log.Init("verbose", "test ", "", false))
	assert.Error(t, log.Init("info", "test", "", false))
}

func TestInitExclusive(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "log_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpdir)
	assert.Error(t, log.Init("info", "test ", tmpdir, true))
}

func TestInitLogDir(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "log_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpdir)
	defer log.Disable()
	require.NoError(t, log.Init("debug", "test ", tmpdir, false))
	log.Debug("log_test: debug message")
	log.Flush()
}

func TestSetLogWriter(t *testing.T) {
	defer log.Disable()
	assert.Error(t, log.SetLogWriter(nil))
	var buf bytes.Buffer
	require.NoError(t, log.SetLogWriter(&buf))
	err := log.Errorf("log_test: error %d", 42)
	assert.EqualError(t, err, "log_test: error 42")
	log.Flush()
	assert.Contains(t, buf.String(), "log_test: error 42")
}

func TestErrorPassthrough(t *testing.T) {
	errTest := errors.New("log_test: passthrough")
	assert.Equal(t, errTest, log.Error(errTest))
	assert.Equal(t, errTest, log.Warn(errTest))
	assert.Equal(t, errTest, log.Critical(errTest))
	assert.EqualError(t, log.Error("log_test: created"), "log_test: created")
}

// This example shows when and how to use the critical log level.
func Example_critical() {
	alwaysFalseCondition := false
	// ...
	if alwaysFalseCondition {
		panic(log.Critical("package name: this condition should never be true"))
	}
}

// This example shows when and how to use the error log level.
func Example_error() {
	// calling external package which can produce an error
	_, err := os.Open("input")
	if err != nil {
		log.Error(err)
		return
	}
}

// This example shows when and how to use the info log level.
func Example_info() {
	log.Info("encengine: encoding stdin")
}
