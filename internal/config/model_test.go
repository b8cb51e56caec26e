package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset_Defaults(t *testing.T) {
	d := NewDataset("default", "data")

	assert.Equal(t, filepath.Join("data", "protein_nodes.jsonl"), d.ProteinNodes)
	assert.Equal(t, filepath.Join("data", "go_term_nodes.jsonl"), d.GoTermNodes)
	assert.Equal(t, filepath.Join("data", "edges.jsonl"), d.Edges)
	assert.Equal(t, filepath.Join("data", "identifier_records.jsonl"), d.IdentifierRecords)
	assert.Equal(t, "Protein::", d.ProteinPrefix)
	require.NoError(t, d.Validate())
}

func TestDataset_ApplyDefaultsKeepsExplicitPaths(t *testing.T) {
	d := &Dataset{Name: "x", DataDir: "d", Edges: "/elsewhere/edges.msgpack"}

	d.ApplyDefaults()

	assert.Equal(t, "/elsewhere/edges.msgpack", d.Edges)
	assert.Equal(t, filepath.Join("d", "protein_nodes.jsonl"), d.ProteinNodes)
}

func TestDataset_ProteinKind(t *testing.T) {
	testCases := []struct {
		prefix  string
		want    string
		wantErr bool
	}{
		{prefix: "Protein::", want: "Protein"},
		{prefix: "Gene_Product::", want: "Gene_Product"},
		{prefix: "Protein", wantErr: true},
		{prefix: "::", wantErr: true},
		{prefix: "1abc::", wantErr: true},
		{prefix: "Pro tein::", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.prefix, func(t *testing.T) {
			d := &Dataset{ProteinPrefix: tc.prefix}

			got, err := d.ProteinKind()

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDataset_ValidateRejectsEmptyPath(t *testing.T) {
	d := NewDataset("default", "data")
	d.Edges = ""

	err := d.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"edges"`)
}
