package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/confluentinc/quickstart-streaming-agents/internal/app"
	"github.com/confluentinc/quickstart-streaming-agents/internal/cli"
)

// main is the entrypoint for the lab summary generator.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	summaryApp, err := app.NewApp(outW, appConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if appConfig.Clean {
		return summaryApp.Clean(ctx)
	}
	return summaryApp.Run(ctx)
}
