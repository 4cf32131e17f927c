package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/tdeecalc/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Only flags that were given end up in the Config; the rest is resolved
// later from the settings file and the defaults.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tdee", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
tdee - estimate total daily energy expenditure from weight, body fat and activity.

Usage:
  tdee [options]

With no options the calculator asks for weight (kg), body fat (%) and an
activity level on the terminal, then prints the calculation.

Options:
`)
		flagSet.PrintDefaults()
	}

	settingsFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	serveFlag := flagSet.String("serve", "", "Serve the calculator over HTTP on this address (e.g. ':8080') instead of prompting.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0))}
	}

	given := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { given[f.Name] = true })

	cfg := app.Config{SettingsPath: *settingsFlag}
	if given["log-level"] {
		cfg.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if given["log-format"] {
		cfg.LogFormat = strings.ToLower(*logFormatFlag)
	}
	if given["serve"] {
		cfg.ServeAddr = *serveFlag
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
