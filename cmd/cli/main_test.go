package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/mathgrid/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return path
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "root: a + b\na: 2\nb: c * d\nc: 3\nd: 4\n")
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, []string{"-dot", "", input})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "root: 14\n", out.String())
	assert.Contains(t, logs.String(), "run_id=")
}

func TestRun_StartupError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "root: 1\n")
	settings := writeFile(t, dir, "settings.hcl", "evaluation {\n  // Missing closing brace here\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-config", settings, "-dot", "", input})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application startup failed")
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_EvaluationError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "root: a / b\na: 1\nb: 0\n")
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-dot", "", input})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
	assert.Empty(t, out.String())
}
