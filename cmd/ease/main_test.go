package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/easing/internal/cli"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunSuccess(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{"calc", "in sine", "1"}, stdout, stderr)

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "1\t1.000000\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunUnexpectedErrorIsPrinted(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := run([]string{"list"}, failingWriter{}, stderr)

	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, stderr.String(), "disk full")
}

func TestRunCommandErrorNotRepeated(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{"calc", "in bounce", "0.5"}, stdout, stderr)

	assert.Equal(t, cli.ExitCommandError, code)
	assert.Contains(t, stdout.String(), "E001")
	assert.NotContains(t, stderr.String(), "E001")
}
