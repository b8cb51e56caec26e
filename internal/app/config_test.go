package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid resolve",
			mutate: func(c *Config) {},
		},
		{
			name:   "stats takes no argument",
			mutate: func(c *Config) { c.Command, c.Argument = CmdStats, "" },
		},
		{
			name:   "serve without a command",
			mutate: func(c *Config) { c.Command, c.Argument, c.Serve = "", "", true },
		},
		{
			name:    "no command",
			mutate:  func(c *Config) { c.Command, c.Argument = "", "" },
			wantErr: "a command is required",
		},
		{
			name:    "unknown command",
			mutate:  func(c *Config) { c.Command = "explode" },
			wantErr: `unknown command "explode"`,
		},
		{
			name:    "missing argument",
			mutate:  func(c *Config) { c.Command, c.Argument = CmdDetails, "" },
			wantErr: "requires a protein-id argument",
		},
		{
			name:    "unexpected argument",
			mutate:  func(c *Config) { c.Command, c.Argument = CmdStats, "x" },
			wantErr: "takes no argument",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: `invalid log-level "verbose": must be one of debug, info, warn, error`,
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "invalid log-format",
		},
		{
			name:    "bad output",
			mutate:  func(c *Config) { c.Output = "csv" },
			wantErr: "invalid output",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.HealthcheckPort = 70000 },
			wantErr: "invalid healthcheck-port 70000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(CmdResolve, "p53")
			tc.mutate(&cfg)

			got, err := NewConfig(cfg)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg, *got)
		})
	}
}

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand("GO-TERM")
	require.NoError(t, err)
	assert.Equal(t, CmdGoTerm, cmd)
	assert.True(t, cmd.TakesArgument())
	assert.False(t, CmdStats.TakesArgument())

	_, err = ParseCommand("nope")
	assert.Error(t, err)
}

func TestCommandUsage(t *testing.T) {
	lines := CommandUsage()

	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "annotations <protein-id>")
	assert.Contains(t, lines[len(lines)-1], "stats")
}
