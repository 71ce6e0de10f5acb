package token

import (
	"slices"

	"golang.org/x/exp/maps"
)

// reserved maps reserved identifier spellings to their token types.
// Only print, var, true, false and nil have a meaning today; the rest are
// kept reserved so they can not be used as variable names.
var reserved = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Lookup returns the keyword token type for identifier, if it is reserved.
func Lookup(identifier string) (tokenType TokenType, ok bool) {
	tokenType, ok = reserved[identifier]
	return
}

// Keywords returns the reserved spellings in lexical order.
func Keywords() []string {
	keys := maps.Keys(reserved)
	slices.Sort(keys)
	return keys
}
