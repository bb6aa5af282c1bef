package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/idelchi/extstat/internal/extstat"
)

// newLogger returns a console logger on stderr, silent unless debug is set.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func logic(options extstat.Options, stdout io.Writer) error {
	log := newLogger(options.Debug)
	options.Logger = &log

	enableProgress := !options.Debug && isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	sizes, summary, err := extstat.Run(context.Background(), options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if options.Convert {
		return report(extstat.Convert(sizes), summary, options.WantJSON, stdout)
	}

	return report(&sizes.Report, summary, options.WantJSON, stdout)
}

// report prints the statistics and, if requested, persists them to OutputFile.
func report[V extstat.Value](stats *extstat.Report[V], summary extstat.Summary, persist bool, stdout io.Writer) error {
	if err := PrintReport(stats, summary, stdout); err != nil {
		return err
	}

	if !persist {
		return nil
	}

	if err := WriteFile(OutputFile, stats); err != nil {
		return err
	}

	//nolint:forbidigo // Completion message to console
	_, err := fmt.Fprintln(stdout, "Output in json file")

	return err
}
