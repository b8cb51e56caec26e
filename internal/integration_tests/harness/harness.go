// Package harness runs the whole application against files written to a
// temporary directory. It is shared by the integration test packages.
package harness

import (
	"context"
	"maps"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/protgraph/internal/app"
	"github.com/vk/protgraph/internal/hcl"
	"github.com/vk/protgraph/internal/render"
	"github.com/vk/protgraph/internal/testutil"
)

// RootEnv is the variable through which HCL files under test reach the
// temporary root, e.g. `data_dir = "${env("TEST_ROOT")}/data"`.
const RootEnv = "TEST_ROOT"

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// DataFiles returns the fixture graph as JSON Lines under dir, merged with
// any extra files. Extra files win on name clashes.
func DataFiles(dir string, extra map[string]string) map[string]string {
	files := make(map[string]string, len(testutil.ProteinGraphJSONL)+len(extra))
	for name, content := range testutil.ProteinGraphJSONL {
		files[path.Join(dir, name)] = content
	}
	maps.Copy(files, extra)
	return files
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext writes files into a fresh root directory,
// points the configuration at it and runs the app end to end. Logging,
// output and config path fields left empty in cfg get test defaults.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	root := testutil.WriteFiles(t, t.TempDir(), files)

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = root
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.Output == "" {
		cfg.Output = render.FormatJSON
	}

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	result := func(a *app.App, err error) *HarnessResult {
		if os.Getenv("PROTGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
		return &HarnessResult{
			Output:    outBuffer.String(),
			LogOutput: logBuffer.String(),
			Err:       err,
			App:       a,
		}
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return result(nil, err)
	}

	lookupEnv := func(name string) (string, bool) {
		if name == RootEnv {
			return root, true
		}
		return os.LookupEnv(name)
	}
	loader := hcl.NewLoader(hcl.WithDataDir(validated.DataDir), hcl.WithLookupEnv(lookupEnv))

	testApp, err := app.New(ctx, outBuffer, logBuffer, validated, loader)
	if err != nil {
		return result(nil, err)
	}
	return result(testApp, testApp.Run(ctx))
}

// RequireSuccess fails the test when the run returned an error.
func (r *HarnessResult) RequireSuccess(t *testing.T) {
	t.Helper()
	require.NoError(t, r.Err, "the application run should not produce an error\n--- logs ---\n%s", r.LogOutput)
}
