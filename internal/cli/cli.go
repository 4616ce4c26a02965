// Package cli parses command-line arguments, validates user input, and owns
// process-level concerns like exit codes. It translates flags into the
// application's invocation config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/featstore/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated invocation
// config, a boolean indicating a clean early exit (help), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("featstore", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
featstore - declarative apply for feature repositories.

Usage:
  featstore [options] COMMAND [REPO_PATH]

Commands:
  apply          Reconcile the registry and infrastructure with the repo.
  teardown       Remove all registered objects and infrastructure.
  registry-dump  Print the registry contents (debugging only).

Arguments:
  REPO_PATH
    Path to the feature repository root (default ".").

Options:
`)
		flagSet.PrintDefaults()
	}

	skipSourceValidation := flagSet.Bool("skip-source-validation", false, "Don't validate batch data sources against the offline store configuration.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	command := flagSet.Arg(0)
	switch command {
	case app.CommandApply, app.CommandTeardown, app.CommandRegistryDump:
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q: expected one of 'apply', 'teardown', 'registry-dump'", command)}
	}

	repoPath := "."
	if flagSet.NArg() > 1 {
		repoPath = flagSet.Arg(1)
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

	return &app.Config{
		Command:              command,
		RepoPath:             repoPath,
		SkipSourceValidation: *skipSourceValidation,
		LogFormat:            logFormat,
		LogLevel:             logLevel,
	}, false, nil
}
