/*
File    : tiger-rpython/cmd/tiger/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.tig")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunExitsZeroOnValidProgram(t *testing.T) {
	path := writeSource(t, `print(1+1)`)
	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	assert.Equal(t, exitNormal, code)
	assert.Equal(t, "2", stdout.String())
}

func TestRunExitsFortyOnMissingArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, exitMissingArgument, code)
}

func TestRunExitsFortyTwoOnParseFailure(t *testing.T) {
	path := writeSource(t, `if 1 2`)
	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	assert.Equal(t, exitParseFailure, code)
}

func TestRunExitsOneOnEvaluationError(t *testing.T) {
	path := writeSource(t, `1/0`)
	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	assert.Equal(t, exitOtherError, code)
}

func TestRunExitsOneOnMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.tig")}, &stdout, &stderr)
	assert.Equal(t, exitOtherError, code)
}
