package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirs(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "util_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpdir)
	logdir := filepath.Join(tmpdir, "a", "log")
	require.NoError(t, CreateDirs("", logdir))
	fi, err := os.Stat(logdir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	// a regular file blocks the path
	blocker := filepath.Join(tmpdir, "file")
	require.NoError(t, ioutil.WriteFile(blocker, []byte("x"), 0600))
	assert.Error(t, CreateDirs(filepath.Join(blocker, "log")))
}
