package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/protgraph/internal/cli"
	"github.com/vk/protgraph/internal/graphstore"
	"github.com/vk/protgraph/internal/testutil"
)

func TestRun_ResolveFromDataDir(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.ProteinGraphDir(t)
	args := []string{"-config", filepath.Join(dir, "absent.hcl"), "-data-dir", dir, "resolve", "SHARED"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	var got []string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []string{testutil.ProteinA, testutil.ProteinB}, got)
}

func TestRun_UnknownIdentifierExitsCleanly(t *testing.T) {
	t.Parallel()

	dir := testutil.ProteinGraphDir(t)
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-data-dir", dir, "resolve", "no-such-id"})

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out.String())
}

func TestRun_MissingTable(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.ProteinGraphDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "go_term_nodes.jsonl")))

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-data-dir", dir, "stats"})

	// --- Assert ---
	var loadErr *graphstore.DataLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, graphstore.TableGoTermNodes, loadErr.Table)
	assert.Equal(t, cli.ExitFailure, exitCode(err))
}

func TestRun_InvalidConfigFile(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, t.TempDir(), map[string]string{"protgraph.hcl": `dataset "default" {`})

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-config", filepath.Join(dir, "protgraph.hcl"), "stats"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
	assert.Equal(t, cli.ExitFailure, exitCode(err))
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, errOut, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed to the error buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
	assert.Equal(t, cli.ExitUsage, exitCode(err))
}
