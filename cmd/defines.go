package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/leonardinius/loxlite/internal/interpreter"
	"github.com/leonardinius/loxlite/internal/parser"
	"github.com/leonardinius/loxlite/internal/scanner"
	"github.com/leonardinius/loxlite/internal/token"
)

var ErrInvalidDefine = errors.New("invalid define")

// defineGlobals binds -D name=value pairs before the first run.
//
// Values spelled like a literal (nil, true, false, an optionally negative
// number) take that type; anything else is a string.
func defineGlobals(env interpreter.Environment, defines map[string]string) error {
	names := maps.Keys(defines)
	slices.Sort(names)

	for _, name := range names {
		if !isIdentifier(name) {
			return fmt.Errorf("%w: %q is not a variable name", ErrInvalidDefine, name)
		}
		env.Define(name, defineValue(defines[name]))
	}

	return nil
}

func isIdentifier(name string) bool {
	tokens, err := scanner.NewScanner(name).Scan()
	return err == nil &&
		len(tokens) == 2 &&
		tokens[0].Type == token.IDENTIFIER &&
		tokens[0].Lexeme == name
}

func defineValue(raw string) interpreter.Value {
	switch raw {
	case "nil":
		return interpreter.NilValue
	case "true":
		return interpreter.TrueValue
	case "false":
		return interpreter.FalseValue
	}

	digits, negative := strings.CutPrefix(raw, "-")
	tokens, err := scanner.NewScanner(digits).Scan()
	if err == nil && len(tokens) == 2 && tokens[0].Type == token.NUMBER && tokens[0].Lexeme == digits {
		if n, err := strconv.ParseFloat(tokens[0].Literal, 64); err == nil {
			if negative {
				n = -n
			}
			return parser.ValueNumber(n)
		}
	}

	return parser.ValueString(raw)
}
