package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vk/protgraph/internal/engine"
)

// Command names a query the application can answer.
type Command string

const (
	CmdResolve      Command = "resolve"
	CmdSearch       Command = "search"
	CmdDetails      Command = "details"
	CmdAnnotations  Command = "annotations"
	CmdInteractions Command = "interactions"
	CmdGoTerm       Command = "go-term"
	CmdStats        Command = "stats"
)

// commandSpec describes how a command is validated and run. run returns the
// result to render and whether it found anything.
type commandSpec struct {
	argName string // empty when the command takes no argument
	usage   string
	run     func(e *engine.Engine, arg string) (any, bool)
}

var commands = map[Command]commandSpec{
	CmdResolve: {
		argName: "identifier",
		usage:   "Resolve any identifier to canonical protein ids.",
		run: func(e *engine.Engine, arg string) (any, bool) {
			ids := e.Resolve(arg)
			return ids, len(ids) > 0
		},
	},
	CmdSearch: {
		argName: "identifier",
		usage:   fmt.Sprintf("Resolve an identifier and summarize up to %d matching proteins.", engine.DefaultSearchLimit),
		run: func(e *engine.Engine, arg string) (any, bool) {
			found := e.Search(arg, engine.DefaultSearchLimit)
			return found, len(found) > 0
		},
	},
	CmdDetails: {
		argName: "protein-id",
		usage:   "Show a protein with its annotations and interactions.",
		run: func(e *engine.Engine, arg string) (any, bool) {
			return e.Details(arg), e.Has(arg)
		},
	},
	CmdAnnotations: {
		argName: "protein-id",
		usage:   "List the functional annotations of a protein.",
		run: func(e *engine.Engine, arg string) (any, bool) {
			anns := e.AnnotationsFor(arg)
			return anns, len(anns) > 0
		},
	},
	CmdInteractions: {
		argName: "protein-id",
		usage:   "List the interaction partners of a protein.",
		run: func(e *engine.Engine, arg string) (any, bool) {
			ints := e.InteractionsFor(arg)
			return ints, len(ints) > 0
		},
	},
	CmdGoTerm: {
		argName: "GO-id",
		usage:   "Show a GO term and the proteins annotated with it.",
		run: func(e *engine.Engine, arg string) (any, bool) {
			term, ok := e.GoTerm(arg)
			if !ok {
				return (*engine.GoTermDetails)(nil), false
			}
			return &term, true
		},
	},
	CmdStats: {
		usage: "Show table and index sizes.",
		run: func(e *engine.Engine, _ string) (any, bool) {
			return e.Stats(), true
		},
	},
}

// ParseCommand validates a command name.
func ParseCommand(s string) (Command, error) {
	cmd := Command(strings.ToLower(s))
	if _, ok := commands[cmd]; !ok {
		return "", fmt.Errorf("unknown command %q", s)
	}
	return cmd, nil
}

// TakesArgument reports whether the command needs an argument.
func (c Command) TakesArgument() bool {
	return commands[c].argName != ""
}

// CommandUsage returns one help line per command, sorted by name.
func CommandUsage() []string {
	names := make([]string, 0, len(commands))
	for cmd := range commands {
		names = append(names, string(cmd))
	}
	slices.Sort(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		spec := commands[Command(name)]
		synopsis := name
		if spec.argName != "" {
			synopsis += " <" + spec.argName + ">"
		}
		lines = append(lines, fmt.Sprintf("%-28s %s", synopsis, spec.usage))
	}
	return lines
}
