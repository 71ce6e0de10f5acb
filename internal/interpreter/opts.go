package interpreter

import (
	"io"
	"log/slog"
	"os"

	"github.com/leonardinius/loxlite/internal/log"
	"github.com/leonardinius/loxlite/internal/loxerrors"
)

type interpreterOpts struct {
	globals  Environment
	stdout   io.Writer
	stderr   io.Writer
	reporter loxerrors.ErrReporter
	logger   *slog.Logger
}

type InterpreterOption func(*interpreterOpts)

// WithGlobals runs the interpreter against an existing environment,
// e.g. one pre-populated by the host.
func WithGlobals(globals Environment) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.globals = globals
	}
}

func WithStdout(stdout io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stdout = stdout
	}
}

// WithStderr sets where the default error reporter writes.
// Ignored when WithErrorReporter is given.
func WithStderr(stderr io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r loxerrors.ErrReporter) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.reporter = r
	}
}

func WithLogger(logger *slog.Logger) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.logger = logger
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := interpreterOpts{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range options {
		opt(&opts)
	}

	if opts.globals == nil {
		opts.globals = NewEnvironment()
	}
	if opts.reporter == nil {
		opts.reporter = loxerrors.NewErrReporter(opts.stderr)
	}
	if opts.logger == nil {
		opts.logger = log.Default()
	}

	return &opts
}
