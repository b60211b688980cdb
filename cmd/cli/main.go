package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oplcutils/gluegen/internal/app"
	"github.com/oplcutils/gluegen/internal/cli"
)

// main is the entrypoint for the glue generator.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*app.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. logW receives diagnostics and usage text; the generated source
// goes to the configured output file.
func run(logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, logW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	generator, err := app.New(logW, cfg)
	if err != nil {
		return err
	}
	return generator.Run(context.Background())
}
