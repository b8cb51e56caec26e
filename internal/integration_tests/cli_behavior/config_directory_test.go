package cli_behavior

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/protgraph/internal/app"
	"github.com/vk/protgraph/internal/graphstore"
	"github.com/vk/protgraph/internal/integration_tests/harness"
	"github.com/vk/protgraph/internal/render"
)

// Test for: config discovery walks a directory and ignores non-HCL files.
func TestCLI_LoadsHCL_FromDirectoryPath(t *testing.T) {
	// --- Arrange ---
	files := harness.DataFiles("data", map[string]string{
		"conf.d/10-dataset.hcl": `
dataset "fixture" {
  data_dir = "${env("TEST_ROOT")}/data"
}
`,
		"conf.d/README.md": "dataset \"ignored\" {}",
	})

	// --- Act ---
	result := harness.RunIntegrationTest(t, files, app.Config{
		Command:  app.CmdInteractions,
		Argument: "Protein::A",
		Output:   render.FormatText,
	})

	// --- Assert ---
	result.RequireSuccess(t)
	out := color.ClearCode(result.Output)
	assert.True(t, strings.HasPrefix(out, "Protein interactions (3)"), out)
	assert.Contains(t, out, "Protein::D")
	assert.Contains(t, result.LogOutput, "Discovered HCL files.")
}

// Test for: with no dataset block anywhere, -data-dir alone locates the
// tables under their default names.
func TestCLI_DataDirWithoutConfig(t *testing.T) {
	// --- Arrange ---
	emptyConfigDir := t.TempDir()

	// --- Act ---
	result := harness.RunIntegrationTest(t, harness.DataFiles("data", nil), app.Config{
		ConfigPath: emptyConfigDir,
		DataDir:    "does-not-exist",
		Command:    app.CmdStats,
	})

	// --- Assert ---
	var loadErr *graphstore.DataLoadError
	require.ErrorAs(t, result.Err, &loadErr)
	assert.Equal(t, filepath.Join("does-not-exist", loadErr.Table+".jsonl"), loadErr.Path)
}

func TestCLI_YAMLOutput(t *testing.T) {
	files := harness.DataFiles("data", map[string]string{
		"protgraph.hcl": `dataset "fixture" { data_dir = "${env("TEST_ROOT")}/data" }`,
	})

	result := harness.RunIntegrationTest(t, files, app.Config{
		Command:  app.CmdResolve,
		Argument: "SHARED",
		Output:   render.FormatYAML,
	})

	result.RequireSuccess(t)
	assert.Equal(t, "- Protein::A\n- Protein::B\n", result.Output)
}
