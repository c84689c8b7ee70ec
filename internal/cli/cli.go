package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/actiongraph/internal/app"
	"github.com/vk/actiongraph/internal/hcl"
	"github.com/zclconf/go-cty/cty"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// inputFlags collects repeated -input label=value flags.
type inputFlags map[string]cty.Value

func (f inputFlags) String() string {
	labels := make([]string, 0, len(f))
	for label := range f {
		labels = append(labels, label)
	}
	return strings.Join(labels, ",")
}

func (f inputFlags) Set(s string) error {
	label, v, err := hcl.ParseAssignment(s)
	if err != nil {
		return err
	}
	if _, dup := f[label]; dup {
		return fmt.Errorf("input %q given more than once", label)
	}
	f[label] = v
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("actiongraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
actiongraph - Derive values through an action hypergraph.

Usage:
  actiongraph [options] GRAPH_PATH...

Arguments:
  GRAPH_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Queries:
  -known A,B                  list every node derivable from A and B
  -known A,B -target C        show how C is derived from A and B
  -target C -input A=3 ...    compute C from concrete input values
  (none)                      run every scenario declared in the files

Options:
`)
		flagSet.PrintDefaults()
	}

	inputs := inputFlags{}
	knownFlag := flagSet.String("known", "", "Comma-separated labels to compute the closure of.")
	targetFlag := flagSet.String("target", "", "Node to explain (with -known) or simulate (with -input).")
	flagSet.Var(inputs, "input", "Input value as label=HCL expression, e.g. A=3 or name=\"x\". Repeatable.")
	outputFlag := flagSet.String("output", "text", "Result format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing GRAPH_PATH"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		GraphPaths: flagSet.Args(),
		Known:      splitLabels(*knownFlag),
		Target:     strings.TrimSpace(*targetFlag),
		Inputs:     inputs,
		Output:     strings.ToLower(*outputFlag),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func splitLabels(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
