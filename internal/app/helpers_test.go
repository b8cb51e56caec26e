package app

import (
	"context"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/protgraph/internal/hcl"
	"github.com/vk/protgraph/internal/render"
	"github.com/vk/protgraph/internal/testutil"
)

// testConfig returns a valid configuration for the given command.
func testConfig(cmd Command, arg string) Config {
	return Config{
		LogFormat: "text",
		LogLevel:  "debug",
		Output:    render.FormatJSON,
		Command:   cmd,
		Argument:  arg,
	}
}

// setupAppTest builds an App over the fixture graph written to a temporary
// data directory. It returns the app with its result and log buffers.
func setupAppTest(t *testing.T, cfg Config) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	if cfg.DataDir == "" {
		cfg.DataDir = testutil.ProteinGraphDir(t)
	}
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	testApp, err := New(context.Background(), outBuffer, logBuffer, validated, hcl.NewLoader(hcl.WithDataDir(validated.DataDir)))
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("PROTGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}

// freePort asks the kernel for an unused TCP port.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
