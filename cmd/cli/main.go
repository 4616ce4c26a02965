package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/featstore/internal/app"
	"github.com/vk/featstore/internal/cli"
)

// main is the entrypoint for the featstore binary.
func main() {
	// Minimal logger until the invocation-scoped one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the application logic so tests can drive it with their own
// writers. The report goes to outW; logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	appCfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	application, err := app.New(outW, logW, appCfg)
	if err != nil {
		return err
	}
	return application.Run(context.Background(), appCfg)
}
