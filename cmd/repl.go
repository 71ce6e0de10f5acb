package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"

	"github.com/leonardinius/loxlite/internal/interpreter"
	"github.com/leonardinius/loxlite/internal/pipeline"
	"github.com/leonardinius/loxlite/internal/token"
)

const (
	prompt      = "> "
	commandEnv  = ":env"
	commandQuit = ":quit"
)

var promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

type lineReader interface {
	Readline() (string, error)
}

type repl struct {
	pipeline pipeline.Pipeline
	stdout   io.Writer
}

func newRepl(p pipeline.Pipeline, stdout io.Writer) *repl {
	return &repl{pipeline: p, stdout: stdout}
}

// loop reads lines until EOF or :quit. Ctrl-C discards the current line.
func (r *repl) loop(ctx context.Context, lines lineReader) error {
	for {
		line, err := lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if quit := r.eval(ctx, line); quit {
			return nil
		}
	}
}

// eval runs one line. Errors are already reported by the pipeline, the
// session carries on with the same environment.
func (r *repl) eval(ctx context.Context, line string) (quit bool) {
	switch strings.TrimSpace(line) {
	case "":
		return false
	case commandQuit:
		return true
	case commandEnv:
		fmt.Fprintln(r.stdout, r.pipeline.Interpreter().Environment())
		return false
	}

	result, err := r.pipeline.Run(ctx, line)
	if err == nil && result.Expression {
		fmt.Fprintln(r.stdout, result.Value.GoString())
	}

	return false
}

// completer completes keywords, bound variable names and REPL commands.
type completer struct {
	env interpreter.Environment
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && unicode.IsLetter(line[start-1]) {
		start--
	}
	if start > 0 && line[start-1] == ':' {
		start--
	}

	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	var suffixes [][]rune
	for _, candidate := range c.candidates(start == 0) {
		if len(candidate) > len(prefix) && strings.HasPrefix(candidate, prefix) {
			suffixes = append(suffixes, []rune(candidate[len(prefix):]))
		}
	}

	return suffixes, len([]rune(prefix))
}

func (c *completer) candidates(lineStart bool) []string {
	candidates := append(token.Keywords(), c.env.Names()...)
	if lineStart {
		candidates = append(candidates, commandEnv, commandQuit)
	}

	slices.Sort(candidates)
	return slices.Compact(candidates)
}

var _ readline.AutoCompleter = (*completer)(nil)
