package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/chzyer/readline"

	"github.com/leonardinius/loxlite/internal/interpreter"
	"github.com/leonardinius/loxlite/internal/loxerrors"
	"github.com/leonardinius/loxlite/internal/parser"
	"github.com/leonardinius/loxlite/internal/pipeline"
	"github.com/leonardinius/loxlite/internal/token"
)

// Exit codes follow sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

type LoxApp struct {
	stdin       io.ReadCloser
	stdout      io.Writer
	stderr      io.Writer
	configPaths []string
}

type AppOption func(*LoxApp)

func WithStdin(stdin io.ReadCloser) AppOption {
	return func(app *LoxApp) {
		app.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(app *LoxApp) {
		app.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(app *LoxApp) {
		app.stderr = stderr
	}
}

// WithConfigPaths replaces the YAML config files consulted before flags.
func WithConfigPaths(paths ...string) AppOption {
	return func(app *LoxApp) {
		app.configPaths = paths
	}
}

func NewLoxApp(options ...AppOption) *LoxApp {
	app := &LoxApp{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		configPaths: defaultConfigPaths,
	}
	for _, opt := range options {
		opt(app)
	}
	return app
}

func (app *LoxApp) Main(args []string) int {
	ctx := context.Background()

	var cli CLI
	exitCode := -1

	k, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.Writers(app.stdout, app.stderr),
		kong.Exit(func(code int) { exitCode = code }),
		kong.ExplicitGroups([]kong.Group{cli.Log.group(), cli.Profile.group()}),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
		kong.Configuration(loadYAML, app.configPaths...),
		cli.vars(),
	)
	if err != nil {
		fmt.Fprintf(app.stderr, "%s: error: %v\n", appName, err)
		return ExitUsage
	}

	_, err = k.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		k.Errorf("%s", err)
		return ExitUsage
	}

	cli.Log.start(ctx, app.stderr)
	defer cli.Profile.start(ctx)()

	reporter := loxerrors.NewStyledErrReporter(app.stderr)
	interp := interpreter.NewInterpreter(
		interpreter.WithStdout(app.stdout),
		interpreter.WithErrorReporter(reporter),
	)

	if err = defineGlobals(interp.Environment(), cli.Define); err != nil {
		k.Errorf("%s", err)
		return ExitUsage
	}

	p := pipeline.New(interp, app.pipelineOptions(&cli, reporter)...)

	if cli.Script != "" {
		return app.runFile(ctx, p, reporter, cli.Script)
	}
	return app.runPrompt(ctx, p, reporter, cli.History)
}

func (app *LoxApp) pipelineOptions(cli *CLI, reporter loxerrors.ErrReporter) []pipeline.Option {
	options := []pipeline.Option{pipeline.WithErrorReporter(reporter)}

	if cli.NoCache {
		options = append(options, pipeline.WithCacheSize(0))
	}

	if cli.Tokens {
		options = append(options, pipeline.WithTokenHook(func(tokens []token.Token) {
			for _, tok := range tokens {
				fmt.Fprintln(app.stderr, tok.GoString())
			}
		}))
	}

	var printer parser.Printer
	switch cli.AST {
	case "infix":
		printer = parser.NewAstPrinter()
	case "rpn":
		printer = parser.NewRPNPrinter()
	}
	if printer != nil {
		options = append(options, pipeline.WithASTHook(func(statements []parser.Stmt) {
			fmt.Fprintln(app.stderr, printer.PrintProgram(statements))
		}))
	}

	return options
}

func (app *LoxApp) runFile(ctx context.Context, p pipeline.Pipeline, reporter loxerrors.ErrReporter, scriptPath string) int {
	f, err := os.Open(scriptPath)
	if err != nil {
		reporter.ReportError(err)
		return ExitIOErr
	}
	defer f.Close()

	_, err = p.RunReader(ctx, f)
	if errors.Is(err, pipeline.ErrReadInput) {
		reporter.ReportError(err)
	}

	return exitCode(err)
}

func (app *LoxApp) runPrompt(ctx context.Context, p pipeline.Pipeline, reporter loxerrors.ErrReporter, history string) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptStyle.Render(prompt),
		HistoryFile:     history,
		AutoComplete:    &completer{env: p.Interpreter().Environment()},
		InterruptPrompt: "^C",
		EOFPrompt:       commandQuit,
		Stdin:           app.stdin,
		Stdout:          app.stdout,
		Stderr:          app.stderr,
	})
	if err != nil {
		reporter.ReportError(err)
		return ExitIOErr
	}
	defer rl.Close()

	if err = newRepl(p, app.stdout).loop(ctx, rl); err != nil {
		reporter.ReportError(err)
		return ExitIOErr
	}

	return ExitOK
}

// exitCode maps a run error to a process exit code.
func exitCode(err error) int {
	var (
		scanErr    *loxerrors.ScannerError
		parseErr   *loxerrors.ParserError
		runtimeErr *loxerrors.RuntimeError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &scanErr), errors.As(err, &parseErr):
		return ExitDataErr
	case errors.As(err, &runtimeErr):
		return ExitSoftware
	default:
		return ExitIOErr
	}
}
