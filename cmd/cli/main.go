package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/littlekai/internal/app"
	"github.com/specialistvlad/littlekai/internal/cli"
	"github.com/specialistvlad/littlekai/internal/menu"
	"github.com/specialistvlad/littlekai/internal/prompt"
)

// main is the entrypoint for the littlekai application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	appConfig.EchoInput = !prompt.IsInteractive(in)

	// A panic anywhere below is a bug; report it as an error instead of a
	// stack trace on the customer's terminal.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	ctx := context.Background()
	littleKai, err := app.NewApp(ctx, in, outW, logW, appConfig, menu.NewLoader())
	if err != nil {
		return err
	}

	return littleKai.Run(ctx)
}
