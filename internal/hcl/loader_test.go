package hcl

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/protgraph/internal/config"
	"github.com/vk/protgraph/internal/testutil"
)

func loadString(t *testing.T, src string, opts ...Option) (*config.Model, error) {
	t.Helper()
	dir := testutil.WriteFiles(t, t.TempDir(), map[string]string{"protgraph.hcl": src})
	return NewLoader(opts...).Load(context.Background(), filepath.Join(dir, "protgraph.hcl"))
}

func TestLoad_FullDataset(t *testing.T) {
	// Arrange
	src := `
dataset "human" {
  data_dir           = "/srv/graph"
  protein_nodes      = "${data_dir}/proteins.msgpack"
  go_term_nodes      = "${data_dir}/go.json"
  edges              = "/other/edges.jsonl"
  identifier_records = "${data_dir}/protein_id_records.jsonl"
  protein_prefix     = "Gene_Product::"
}

server {
  healthcheck_port = 8081
}
`
	// Act
	model, err := loadString(t, src)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &config.Dataset{
		Name:              "human",
		DataDir:           "/srv/graph",
		ProteinNodes:      "/srv/graph/proteins.msgpack",
		GoTermNodes:       "/srv/graph/go.json",
		Edges:             "/other/edges.jsonl",
		IdentifierRecords: "/srv/graph/protein_id_records.jsonl",
		ProteinPrefix:     "Gene_Product::",
	}, model.Dataset)
	assert.Equal(t, 8081, model.Server.HealthcheckPort)
}

func TestLoad_TableDefaults(t *testing.T) {
	model, err := loadString(t, `dataset "default" { data_dir = "d" }`)

	require.NoError(t, err)
	assert.Equal(t, config.NewDataset("default", "d"), model.Dataset)
	assert.Equal(t, 0, model.Server.HealthcheckPort)
}

func TestLoad_DataDirOverride(t *testing.T) {
	src := `
dataset "default" {
  data_dir = "ignored"
  edges    = "${data_dir}/e.json"
}
`
	model, err := loadString(t, src, WithDataDir("/override"))

	require.NoError(t, err)
	assert.Equal(t, "/override", model.Dataset.DataDir)
	assert.Equal(t, "/override/e.json", model.Dataset.Edges)
	assert.Equal(t, filepath.Join("/override", "protein_nodes.jsonl"), model.Dataset.ProteinNodes)
}

func TestLoad_EnvFunction(t *testing.T) {
	env := map[string]string{"GRAPH_DIR": "/from/env", "PORT": "9090"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	src := `
dataset "default" {
  data_dir       = env("GRAPH_DIR")
  protein_prefix = env("UNSET_PREFIX", "Protein::")
}
server {
  healthcheck_port = env("PORT")
}
`
	model, err := loadString(t, src, WithLookupEnv(lookup))

	require.NoError(t, err)
	assert.Equal(t, "/from/env", model.Dataset.DataDir)
	assert.Equal(t, "Protein::", model.Dataset.ProteinPrefix)
	assert.Equal(t, 9090, model.Server.HealthcheckPort)
}

func TestLoad_NoConfigFile(t *testing.T) {
	testCases := []struct {
		name    string
		opts    []Option
		wantDir string
	}{
		{name: "default data dir", wantDir: config.DefaultDataDir},
		{name: "data dir flag", opts: []Option{WithDataDir("/x")}, wantDir: "/x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			missing := filepath.Join(t.TempDir(), "missing.hcl")

			model, err := NewLoader(tc.opts...).Load(context.Background(), missing)

			require.NoError(t, err)
			assert.Equal(t, config.NewDataset("default", tc.wantDir), model.Dataset)
		})
	}
}

func TestLoad_DirectoryOfFiles(t *testing.T) {
	dir := testutil.WriteFiles(t, t.TempDir(), map[string]string{
		"a_dataset.hcl":     `dataset "default" { data_dir = "d" }`,
		"nested/server.hcl": `server { healthcheck_port = 7000 }`,
		"notes.txt":         `this is not hcl {`,
	})

	model, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, "d", model.Dataset.DataDir)
	assert.Equal(t, 7000, model.Server.HealthcheckPort)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "syntax error",
			src:     `dataset "default" {`,
			wantErr: "failed to parse",
		},
		{
			name:    "unknown attribute",
			src:     `dataset "default" { colour = "red" }`,
			wantErr: "failed to decode",
		},
		{
			name:    "unknown block",
			src:     `grid {}`,
			wantErr: "failed to decode",
		},
		{
			name:    "two datasets",
			src:     "dataset \"a\" {}\ndataset \"b\" {}",
			wantErr: "expected one dataset block",
		},
		{
			name:    "two servers",
			src:     "server {}\nserver {}",
			wantErr: "at most one server block",
		},
		{
			name:    "undefined variable",
			src:     `dataset "default" { edges = "${nope}/e.jsonl" }`,
			wantErr: `failed to evaluate "edges"`,
		},
		{
			name:    "data_dir cannot refer to itself",
			src:     `dataset "default" { data_dir = "${data_dir}/x" }`,
			wantErr: `"data_dir" cannot refer to itself`,
		},
		{
			name:    "data_dir reads an unknown variable",
			src:     `dataset "default" { data_dir = "${root}/x" }`,
			wantErr: `There is no variable named "root"`,
		},
		{
			name:    "list where a string is expected",
			src:     `dataset "default" { edges = ["a", "b"] }`,
			wantErr: "must be a string",
		},
		{
			name:    "port is not a number",
			src:     `server { healthcheck_port = "http" }`,
			wantErr: "must be a number",
		},
		{
			name:    "port is fractional",
			src:     `server { healthcheck_port = 80.5 }`,
			wantErr: "whole number",
		},
		{
			name:    "port out of range",
			src:     `server { healthcheck_port = 70000 }`,
			wantErr: "out of range",
		},
		{
			name:    "bad protein prefix",
			src:     `dataset "default" { protein_prefix = "Protein" }`,
			wantErr: "must end with",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadString(t, tc.src)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
