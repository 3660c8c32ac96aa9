package cmd

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/streambinder/lyrika/server"
	"github.com/stretchr/testify/assert"
)

func BenchmarkServe(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TestCmdServe(&testing.T{})
	}
}

func TestCmdServe(t *testing.T) {
	// monkey patching
	defer unconfigured().
		ApplyFunc(exec.LookPath, func() (string, error) {
			return "", errors.New("ko")
		}).
		ApplyMethod(&server.Server{}, "Start", func() error {
			return nil
		}).
		Reset()

	// testing
	assert.Nil(t, testExecute(cmdServe(), "--port", "8080"))
}

func TestCmdServeFailure(t *testing.T) {
	// monkey patching
	defer unconfigured().
		ApplyMethod(&server.Server{}, "Start", func() error {
			return errors.New("address already in use")
		}).
		Reset()

	// testing
	assert.EqualError(t, testExecute(cmdServe()), "address already in use")
}
