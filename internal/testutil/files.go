package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ProteinGraphJSONL is ProteinGraph encoded as JSON Lines, keyed by the
// default table file names.
var ProteinGraphJSONL = map[string]string{
	"protein_nodes.jsonl": `{"id":"Protein::A","name":"Tumor protein p53","length":393}
{"id":"Protein::B","name":"Cyclin-dependent kinase inhibitor"}
{"id":"Protein::C","name":null}
{"id":"Protein::E","name":"Tyrosine-protein kinase ABL1"}
`,
	"go_term_nodes.jsonl": `{"id":"GO_Term::1","external_id":"GO:0000001","name":"mitochondrion inheritance","namespace":"biological_process"}
{"id":"GO_Term::2","external_id":"GO:0005634","name":"nucleus","namespace":"cellular_component"}
`,
	"edges.jsonl": `{"source":"Protein::A","target":"GO_Term::1","relationship":"BiologicalProcess-Protein-FunctionalAnnotation","ML_prediction_score":0.9}
{"source":"Protein::A","target":"GO_Term::2","relationship":"CellularComponent-Protein-FunctionalAnnotation","ML_prediction_score":null}
{"source":"Protein::A","target":"GO_Term::404","relationship":"MolecularFunction-Protein-FunctionalAnnotation","ML_prediction_score":0.5}
{"source":"Protein::A","target":"Protein::B","relationship":"Protein-Protein-ProteinProteinInteraction","string_combined_score":0.75}
{"source":"Protein::C","target":"Protein::A","relationship":"Protein-Protein-ProteinProteinInteraction"}
{"source":"Protein::B","target":"GO_Term::1","relationship":"MolecularFunction-Protein-FunctionalAnnotation","ML_prediction_score":0.3}
{"source":"Protein::D","target":"Protein::A","relationship":"Protein-Protein-ProteinProteinInteraction","string_combined_score":0.1}
{"source":"Protein::A","target":"Gene::TP53","relationship":"Protein-Gene-Encodes"}
`,
	"identifier_records.jsonl": `{"uuid":"Protein::uuid-a","external_id":"Protein::A","name":"TP53","secondary_ids":["P04637","p53"],"ambiguous_secondary_ids":["SHARED"]}
{"uuid":"Protein::uuid-b","external_id":"Protein::B","name":"CDKN1A","secondary_ids":["P38936"],"ambiguous_secondary_ids":["SHARED"]}
{"uuid":"legacy-uuid-a2","external_id":"Protein::A","secondary_ids":null}
{"uuid":"orphan-uuid","name":"Orphan"}
`,
}

// WriteFiles writes every file of the map under dir, creating intermediate
// directories, and returns dir for chaining.
func WriteFiles(t *testing.T, dir string, files map[string]string) string {
	t.Helper()

	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return dir
}

// ProteinGraphDir writes the JSON Lines fixture into a fresh temporary
// directory and returns its path.
func ProteinGraphDir(t *testing.T) string {
	t.Helper()
	return WriteFiles(t, t.TempDir(), ProteinGraphJSONL)
}
