package pipeline

import (
	"os"

	"github.com/leonardinius/loxlite/internal/loxerrors"
	"github.com/leonardinius/loxlite/internal/parser"
	"github.com/leonardinius/loxlite/internal/token"
)

// DefaultCacheSize is the number of parsed sources kept per pipeline.
const DefaultCacheSize = 128

type pipelineOpts struct {
	reporter  loxerrors.ErrReporter
	tokenHook func([]token.Token)
	astHook   func([]parser.Stmt)
	cacheSize int
}

type Option func(*pipelineOpts)

// WithErrorReporter sets the reporter for lexical and parse errors.
// Runtime errors are reported by the interpreter's own reporter.
func WithErrorReporter(r loxerrors.ErrReporter) Option {
	return func(opts *pipelineOpts) {
		opts.reporter = r
	}
}

// WithTokenHook calls fn with the token stream of every successfully parsed run.
func WithTokenHook(fn func([]token.Token)) Option {
	return func(opts *pipelineOpts) {
		opts.tokenHook = fn
	}
}

// WithASTHook calls fn with the statements of every run before they execute.
func WithASTHook(fn func([]parser.Stmt)) Option {
	return func(opts *pipelineOpts) {
		opts.astHook = fn
	}
}

// WithCacheSize bounds the parse cache. Zero or less disables caching.
func WithCacheSize(size int) Option {
	return func(opts *pipelineOpts) {
		opts.cacheSize = size
	}
}

func newPipelineOpts(options ...Option) *pipelineOpts {
	opts := pipelineOpts{cacheSize: DefaultCacheSize}
	for _, opt := range options {
		opt(&opts)
	}

	if opts.reporter == nil {
		opts.reporter = loxerrors.NewErrReporter(os.Stderr)
	}

	return &opts
}
