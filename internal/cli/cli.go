package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"spinekit/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("spinekit", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
spinekit - A procedural tensegrity spine structure generator.

Usage:
  spinekit [options] [STRUCTURE_PATH]

Arguments:
  STRUCTURE_PATH
    Path to a single .hcl structure description or a directory of them.
    When omitted, the built-in description is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	structureFlag := flagSet.String("structure", "", "Path to the structure description file or directory.")
	sFlag := flagSet.String("s", "", "Path to the structure description file or directory (shorthand).")
	segmentsFlag := flagSet.Int("segments", -1, "Override the number of replicated segments. -1 keeps the description's value.")
	stepsFlag := flagSet.Int("steps", 0, "Number of control steps to advance the built model. 0 is disabled.")
	dtFlag := flagSet.Float64("dt", 0.001, "Time delta per control step, in seconds.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *structureFlag != "" {
		path = *structureFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Structure path determined.", "path", path)

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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DescriptionPath: path,
		Segments:        *segmentsFlag,
		Steps:           *stepsFlag,
		Delta:           *dtFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
