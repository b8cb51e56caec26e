package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/protgraph/internal/app"
	"github.com/vk/protgraph/internal/render"
)

// Process exit codes.
const (
	ExitFailure = 1 // data loading or runtime failure
	ExitUsage   = 2 // invalid flags or arguments
)

// DefaultConfigPath is where configuration is looked up when -config is not
// given. A missing default file is not an error.
const DefaultConfigPath = "protgraph.hcl"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("protgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() { printUsage(output, flagSet) }

	configFlag := flagSet.String("config", DefaultConfigPath, "Path to an .hcl file or a directory of .hcl files.")
	dataDirFlag := flagSet.String("data-dir", "", "Directory holding the tables. Overrides data_dir from the config.")
	outputFlag := flagSet.String("output", string(render.FormatJSON), "Result format. Options: 'json', 'text' or 'yaml'.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health and metrics server. 0 uses the config value.")
	serveFlag := flagSet.Bool("serve", false, "Keep the health and metrics server running until interrupted.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 && !*serveFlag {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 2 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("too many arguments: %s", strings.Join(flagSet.Args()[2:], " "))}
	}

	var cmd app.Command
	var arg string
	if flagSet.NArg() > 0 {
		parsed, err := app.ParseCommand(flagSet.Arg(0))
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		cmd = parsed
		arg = flagSet.Arg(1)
	}
	slog.Debug("Command determined.", "command", cmd, "argument", arg)

	output, err := render.ParseFormat(*outputFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath:      *configFlag,
		DataDir:         *dataDirFlag,
		LogFormat:       strings.ToLower(*logFormatFlag),
		LogLevel:        strings.ToLower(*logLevelFlag),
		Output:          output,
		HealthcheckPort: *healthPortFlag,
		Serve:           *serveFlag,
		Command:         cmd,
		Argument:        arg,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func printUsage(w io.Writer, flagSet *flag.FlagSet) {
	fmt.Fprint(w, `
protgraph - Protein identifier resolution and GO annotation queries.

Usage:
  protgraph [options] <command> [argument]

Commands:
`)
	for _, line := range app.CommandUsage() {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprint(w, "\nOptions:\n")
	flagSet.PrintDefaults()
}
