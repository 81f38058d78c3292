package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hupe1980/seqeq"
	"github.com/hupe1980/seqeq/internal/source"
)

// Exit statuses, in the manner of cmp(1).
const (
	exitEqual  = 0
	exitDiffer = 1
	exitError  = 2
)

// errDiffer is returned by an action whose inputs compared unequal.
var errDiffer = errors.New("inputs differ")

// app carries the state shared between the root command and its
// subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *seqeq.Logger
}

// stdinArg stands in for a "-" operand while the command line is parsed;
// the parser drops a bare "-" that comes before the other operands.
const stdinArg = "\x00stdin"

// run executes the CLI and maps the outcome to an exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, logger: seqeq.NoopLogger()}

	err := a.command().Run(ctx, escapeStdin(args))
	switch {
	case err == nil:
		return exitEqual
	case errors.Is(err, errDiffer):
		return exitDiffer
	default:
		fmt.Fprintln(stderr, "seqeq:", err)
		return exitError
	}
}

func (a *app) command() *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version)
		fmt.Fprintln(cmd.Writer, "Commit:", commit)
		fmt.Fprintln(cmd.Writer, "Date:", date)
	}

	return &cli.Command{
		Name:  "seqeq",
		Usage: "Compare files as sequences of fixed-width words",
		Description: `seqeq compares two inputs element by element using vector-width blocks
where the CPU allows it. Inputs may be plain files, zstd or lz4 frames, or
"-" for standard input.`,
		Version:   version,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		// Exit statuses are decided by run, never by the library.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "minimum log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("SEQEQ_LOG_LEVEL"),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format (text, json)",
				Value:   "text",
				Sources: cli.EnvVars("SEQEQ_LOG_FORMAT"),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger, err := newLogger(a.stderr, cmd.String("log-level"), cmd.String("log-format"))
			if err != nil {
				return ctx, err
			}
			a.logger = logger
			return ctx, nil
		},
		Commands: []*cli.Command{
			a.cmpCommand(),
			a.infoCommand(),
		},
	}
}

// newLogger builds the diagnostic logger. Logs go to w so that stdout only
// carries comparison results.
func newLogger(w io.Writer, level, format string) (*seqeq.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return seqeq.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return seqeq.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// escapeStdin replaces every "-" operand with stdinArg.
func escapeStdin(args []string) []string {
	out := slices.Clone(args)
	for i := 1; i < len(out); i++ {
		if out[i] == source.Stdin {
			out[i] = stdinArg
		}
	}
	return out
}
