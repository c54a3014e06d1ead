package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/confluentinc/quickstart-streaming-agents/internal/app"
	"github.com/confluentinc/quickstart-streaming-agents/internal/fsutil"
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
// Structurally invalid arguments (bad cloud provider, missing state
// directory) yield exit code 1: they indicate a caller error, not an
// environmental condition.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("labsummary", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
labsummary - Generate Flink SQL command summaries for deployed workshop labs.

Usage:
  labsummary -cloud <aws|azure> [options] [STATE_DIR]

Arguments:
  STATE_DIR
    Project root containing <cloud>/<lab> terraform directories and the lab
    walkthrough markdown files. Defaults to the current directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	cloudFlag := flagSet.String("cloud", "", "Cloud provider. Options: 'aws' or 'azure'.")
	labFlag := flagSet.String("lab", "", "Generate for a single lab identifier, e.g. 'lab1'. Empty means all labs.")
	stateDirFlag := flagSet.String("state-dir", "", "Project root directory (also accepted as a positional argument).")
	manifestFlag := flagSet.String("manifest", "", "Path to a labs.yaml manifest overriding the built-in lab set.")
	cleanFlag := flagSet.Bool("clean", false, "Remove previously generated summary files instead of generating.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	stateDir := *stateDirFlag
	if stateDir == "" && flagSet.NArg() > 0 {
		stateDir = flagSet.Arg(0)
	}
	if stateDir == "" {
		stateDir = "."
	}
	if !fsutil.DirExists(stateDir) {
		return nil, false, &ExitError{Code: 1, Message: fmt.Sprintf("state directory not found: %s", stateDir)}
	}

	cloud := strings.ToLower(*cloudFlag)
	if cloud != "aws" && cloud != "azure" {
		return nil, false, &ExitError{Code: 1, Message: fmt.Sprintf("invalid cloud provider %q: must be 'aws' or 'azure'", *cloudFlag)}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 1, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 1, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		Lab:          *labFlag,
		Cloud:        cloud,
		StateDir:     stateDir,
		ManifestPath: *manifestFlag,
		Clean:        *cleanFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	return config, false, nil
}
