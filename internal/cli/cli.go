package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/littlekai/internal/app"
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
// With no arguments the counter runs on the built-in menu.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("littlekai", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Little Kai - build a bowl of noodles one layer at a time.

Usage:
  littlekai [options] [MENU_PATH]

Arguments:
  MENU_PATH
    Optional path to a .hcl menu file or a directory of .hcl files.
    The built-in menu is used when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	menuFlag := flagSet.String("menu", "", "Path to the menu file or directory.")
	mFlag := flagSet.String("m", "", "Path to the menu file or directory (shorthand).")
	itemizeFlag := flagSet.Bool("itemize", false, "List every layer of the order on the receipt.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one MENU_PATH may be given"}
	}

	path := ""
	if *menuFlag != "" {
		path = *menuFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Menu path determined.", "path", path)

	config, err := app.NewConfig(app.Config{
		MenuPath:  path,
		Itemize:   *itemizeFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
