package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vk/protgraph/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl file or directory
	DataDir    string // overrides data_dir from the config file

	LogFormat       string        `flag:"log-format" validate:"oneof=text json"`
	LogLevel        string        `flag:"log-level" validate:"oneof=debug info warn error"`
	Output          render.Format `flag:"output" validate:"oneof=json text yaml"`
	HealthcheckPort int           `flag:"healthcheck-port" validate:"gte=0,lte=65535"`
	Serve           bool

	Command  Command
	Argument string
}

var configValidate = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their command-line flag names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})
	return v
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := configValidate.Struct(cfg); err != nil {
		return nil, validationError(err)
	}

	switch {
	case cfg.Command == "" && !cfg.Serve:
		return nil, errors.New("a command is required")
	case cfg.Command == "":
		if cfg.Argument != "" {
			return nil, fmt.Errorf("unexpected argument %q without a command", cfg.Argument)
		}
	default:
		cmd, err := ParseCommand(string(cfg.Command))
		if err != nil {
			return nil, err
		}
		cfg.Command = cmd
		if cmd.TakesArgument() && cfg.Argument == "" {
			return nil, fmt.Errorf("command %q requires a %s argument", cmd, commands[cmd].argName)
		}
		if !cmd.TakesArgument() && cfg.Argument != "" {
			return nil, fmt.Errorf("command %q takes no argument, got %q", cmd, cfg.Argument)
		}
	}

	return &cfg, nil
}

// validationError turns validator output into a message that names the
// offending flag.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("invalid %s %q: must be one of %s", fe.Field(), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte", "lte":
		return fmt.Errorf("invalid %s %v: must be between 0 and 65535", fe.Field(), fe.Value())
	}
	return fmt.Errorf("invalid %s %v", fe.Field(), fe.Value())
}
