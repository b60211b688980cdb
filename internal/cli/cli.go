package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/oplcutils/gluegen/internal/app"
)

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating the program should exit cleanly (help requested), or
// an ExitError carrying the exit code.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("gluegen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gluegen - OpenPLC glue generator

Usage:
  gluegen [options] [<path-to-located-variables.h> <path-to-glue-vars.cpp>]

Reads the LOCATED_VARIABLES.h file generated by the MATIEC compiler and
produces glueVars.cpp for the OpenPLC runtime. If not specified, paths are
relative to the current directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL settings file, or a directory containing one.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	dumpFlag := flagSet.Bool("dump", false, "Dump the aggregated declarations and boolean groups before emitting.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &app.ExitError{Code: app.ExitUsage, Message: err.Error()}
	}

	// Zero positional arguments runs with the default file names; exactly
	// two name the input and output paths.
	var inputPath, outputPath string
	switch flagSet.NArg() {
	case 0:
	case 2:
		inputPath = flagSet.Arg(0)
		outputPath = flagSet.Arg(1)
	default:
		flagSet.Usage()
		return nil, false, &app.ExitError{
			Code:    app.ExitUsage,
			Message: fmt.Sprintf("expected zero or two positional arguments, got %d", flagSet.NArg()),
		}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &app.ExitError{Code: app.ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &app.ExitError{Code: app.ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		InputPath:  inputPath,
		OutputPath: outputPath,
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		Dump:       *dumpFlag,
	})
	if err != nil {
		return nil, false, &app.ExitError{Code: app.ExitUsage, Message: err.Error()}
	}

	return config, false, nil
}
