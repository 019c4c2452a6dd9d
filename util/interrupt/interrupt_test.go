// +build !windows

package interrupt

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterrupt(t *testing.T) {
	called := make(chan struct{}, 1)
	AddInterruptHandler(func() {
		called <- struct{}{}
	})
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))
	select {
	case err := <-ShutdownChannel:
		assert.Equal(t, ErrInterrupted, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no shutdown after SIGINT")
	}
	select {
	case <-called:
	default:
		t.Error("interrupt handler not called")
	}
}
