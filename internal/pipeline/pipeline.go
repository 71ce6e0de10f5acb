// Package pipeline drives one source text through scanning, parsing and
// interpretation against a long-lived interpreter.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/leonardinius/loxlite/internal/interpreter"
	"github.com/leonardinius/loxlite/internal/log"
	"github.com/leonardinius/loxlite/internal/loxerrors"
	"github.com/leonardinius/loxlite/internal/parser"
	"github.com/leonardinius/loxlite/internal/scanner"
	"github.com/leonardinius/loxlite/internal/token"
)

// ErrReadInput is returned by RunReader when the source cannot be read.
var ErrReadInput = errors.New("read input")

// Result describes a completed run.
type Result struct {
	// Value of the last statement when it was an expression statement, nil otherwise.
	Value interpreter.Value
	// Expression is true when the last statement was an expression statement.
	Expression bool
	// Statements is the number of parsed statements.
	Statements int
	// Cached is true when the parse was served from the cache.
	Cached bool
}

type Pipeline interface {
	// Run scans, parses and interprets source.
	//
	// Lexical errors stop the run before parsing and parse errors stop it
	// before execution; both are reported and returned. Runtime errors are
	// reported by the interpreter per statement and returned joined.
	Run(ctx context.Context, source string) (Result, error)

	// RunReader reads r to the end and runs its contents.
	RunReader(ctx context.Context, r io.Reader) (Result, error)

	// Interpreter returns the interpreter statements are executed by.
	Interpreter() interpreter.Interpreter
}

type parsed struct {
	source     string
	tokens     []token.Token
	statements []parser.Stmt
}

type pipeline struct {
	interp   interpreter.Interpreter
	reporter loxerrors.ErrReporter
	tokens   func([]token.Token)
	ast      func([]parser.Stmt)
	cache    map[uint64]*parsed
	limit    int
}

func New(interp interpreter.Interpreter, options ...Option) Pipeline {
	opts := newPipelineOpts(options...)

	p := &pipeline{
		interp:   interp,
		reporter: opts.reporter,
		tokens:   opts.tokenHook,
		ast:      opts.astHook,
		limit:    opts.cacheSize,
	}
	if p.limit > 0 {
		p.cache = make(map[uint64]*parsed)
	}

	return p
}

// Interpreter implements Pipeline.
func (p *pipeline) Interpreter() interpreter.Interpreter {
	return p.interp
}

// RunReader implements Pipeline.
func (p *pipeline) RunReader(ctx context.Context, r io.Reader) (Result, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	log.TraceContext(ctx, "read input", slog.Int("source_bytes", len(data)))

	return p.Run(ctx, string(data))
}

// Run implements Pipeline.
func (p *pipeline) Run(ctx context.Context, source string) (Result, error) {
	unit, cached, err := p.parse(ctx, source)
	if err != nil {
		p.reporter.ReportError(err)
		return Result{}, err
	}

	if p.tokens != nil {
		p.tokens(unit.tokens)
	}
	if p.ast != nil {
		p.ast(unit.statements)
	}

	value, err := p.interp.Interpret(ctx, unit.statements)

	result := Result{Statements: len(unit.statements), Cached: cached}
	if n := len(unit.statements); n > 0 {
		_, result.Expression = unit.statements[n-1].(*parser.StmtExpression)
	}
	if result.Expression {
		result.Value = value
	}

	return result, err
}

func (p *pipeline) parse(ctx context.Context, source string) (*parsed, bool, error) {
	hash := xxh3.HashString(source)
	digest := strconv.FormatUint(hash, 16)

	if unit, ok := p.cache[hash]; ok && unit.source == source {
		log.TraceContext(ctx, "cache lookup",
			slog.String("source_hash", digest),
			slog.Bool("cache_hit", true),
		)
		return unit, true, nil
	}

	tokens, err := scanner.NewScanner(source).Scan()
	if err != nil {
		log.DebugContext(ctx, "scan failed",
			slog.String("source_hash", digest),
			slog.Int("errors", len(loxerrors.Flatten(err))),
		)
		return nil, false, err
	}
	log.TraceContext(ctx, "scanned", slog.String("source_hash", digest), slog.Int("tokens", len(tokens)))

	statements, err := parser.NewParser(tokens).Parse()
	if err != nil {
		log.DebugContext(ctx, "parse failed",
			slog.String("source_hash", digest),
			slog.Int("errors", len(loxerrors.Flatten(err))),
		)
		return nil, false, err
	}
	log.TraceContext(ctx, "parsed", slog.String("source_hash", digest), slog.Int("statements", len(statements)))

	unit := &parsed{source: source, tokens: tokens, statements: statements}
	p.store(ctx, hash, unit)

	return unit, false, nil
}

// store keeps at most limit parses; a full cache is dropped wholesale.
func (p *pipeline) store(ctx context.Context, hash uint64, unit *parsed) {
	if p.cache == nil {
		return
	}
	if len(p.cache) >= p.limit {
		log.DebugContext(ctx, "cache reset", slog.Int("entries", len(p.cache)))
		clear(p.cache)
	}
	p.cache[hash] = unit
}

var _ Pipeline = (*pipeline)(nil)
