package query_behavior

import (
	"bufio"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/protgraph/internal/app"
	"github.com/vk/protgraph/internal/engine"
	"github.com/vk/protgraph/internal/integration_tests/harness"
	"github.com/vk/protgraph/internal/render"
	"github.com/vk/protgraph/internal/testutil"
	"github.com/vmihailenco/msgpack/v5"
)

// toMsgpack re-encodes a JSON Lines table as a MessagePack array of maps.
func toMsgpack(t *testing.T, jsonl string) string {
	t.Helper()
	var rows []map[string]any
	sc := bufio.NewScanner(strings.NewReader(jsonl))
	for sc.Scan() {
		var row map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &row))
		rows = append(rows, row)
	}
	require.NoError(t, sc.Err())

	b, err := msgpack.Marshal(rows)
	require.NoError(t, err)
	return string(b)
}

func TestQuery_MessagePackTables(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"protgraph.hcl": `
dataset "packed" {
  data_dir           = "${env("TEST_ROOT")}/packed"
  protein_nodes      = "${data_dir}/protein_nodes.msgpack"
  go_term_nodes      = "${data_dir}/go_term_nodes.msgpack"
  edges              = "${data_dir}/edges.msgpack"
  identifier_records = "${data_dir}/identifier_records.msgpack"
}
`,
	}
	for _, table := range []string{"protein_nodes", "go_term_nodes", "edges", "identifier_records"} {
		files["packed/"+table+".msgpack"] = toMsgpack(t, testutil.ProteinGraphJSONL[table+".jsonl"])
	}

	// --- Act ---
	result := harness.RunIntegrationTest(t, files, app.Config{Command: app.CmdDetails, Argument: testutil.ProteinA})

	// --- Assert ---
	result.RequireSuccess(t)
	var got engine.ProteinDetails
	require.NoError(t, json.Unmarshal([]byte(result.Output), &got))
	require.NotNil(t, got.Name)
	assert.Equal(t, "Tumor protein p53", *got.Name)
	assert.Equal(t, "Protein::uuid-a", got.UUID)
	var flat map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Output), &flat))
	assert.EqualValues(t, 393, flat["length"])
	assert.Len(t, got.FunctionalAnnotations, 2)
	assert.Len(t, got.ProteinInteractions, 3)
}

func TestQuery_NaNAttributeRendersAsNull(t *testing.T) {
	// --- Arrange ---
	packRows := func(rows ...map[string]any) string {
		b, err := msgpack.Marshal(rows)
		require.NoError(t, err)
		return string(b)
	}
	files := map[string]string{
		"protein_nodes.msgpack":      packRows(map[string]any{"id": "Protein::A", "name": "alpha", "mass": math.NaN()}),
		"go_term_nodes.msgpack":      packRows(),
		"edges.msgpack":              packRows(),
		"identifier_records.msgpack": packRows(map[string]any{"uuid": "Protein::u1", "external_id": "Protein::A", "name": math.NaN()}),
		"protgraph.hcl": `
dataset "nan" {
  data_dir           = env("TEST_ROOT")
  protein_nodes      = "${data_dir}/protein_nodes.msgpack"
  go_term_nodes      = "${data_dir}/go_term_nodes.msgpack"
  edges              = "${data_dir}/edges.msgpack"
  identifier_records = "${data_dir}/identifier_records.msgpack"
}
`,
	}

	for _, output := range []render.Format{render.FormatJSON, render.FormatYAML} {
		t.Run(string(output), func(t *testing.T) {
			// --- Act ---
			result := harness.RunIntegrationTest(t, files, app.Config{
				Command:  app.CmdDetails,
				Argument: "Protein::A",
				Output:   output,
			})

			// --- Assert ---
			result.RequireSuccess(t)
			if output == render.FormatJSON {
				assert.Contains(t, result.Output, `"mass": null`)
			} else {
				assert.Contains(t, result.Output, "mass: null\n")
			}
			assert.Contains(t, result.Output, "alpha")
		})
	}
}
