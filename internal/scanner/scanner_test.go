package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/loxlite/internal/loxerrors"
	"github.com/leonardinius/loxlite/internal/scanner"
	"github.com/leonardinius/loxlite/internal/token"
)

func TestScanTokens(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`}},
		{
			"basic",
			"(){},.*+-;/",
			[]string{
				`{Type: LEFT_PAREN, Lexeme: "(", Literal: "", Line: 1}`,
				`{Type: RIGHT_PAREN, Lexeme: ")", Literal: "", Line: 1}`,
				`{Type: LEFT_BRACE, Lexeme: "{", Literal: "", Line: 1}`,
				`{Type: RIGHT_BRACE, Lexeme: "}", Literal: "", Line: 1}`,
				`{Type: COMMA, Lexeme: ",", Literal: "", Line: 1}`,
				`{Type: DOT, Lexeme: ".", Literal: "", Line: 1}`,
				`{Type: STAR, Lexeme: "*", Literal: "", Line: 1}`,
				`{Type: PLUS, Lexeme: "+", Literal: "", Line: 1}`,
				`{Type: MINUS, Lexeme: "-", Literal: "", Line: 1}`,
				`{Type: SEMICOLON, Lexeme: ";", Literal: "", Line: 1}`,
				`{Type: SLASH, Lexeme: "/", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"bangbang",
			"!!",
			[]string{
				`{Type: BANG, Lexeme: "!", Literal: "", Line: 1}`,
				`{Type: BANG, Lexeme: "!", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"bangbangeqeqeqeq",
			"!====",
			[]string{
				`{Type: BANG_EQUAL, Lexeme: "!=", Literal: "", Line: 1}`,
				`{Type: EQUAL_EQUAL, Lexeme: "==", Literal: "", Line: 1}`,
				`{Type: EQUAL, Lexeme: "=", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"lteqeqeqeq",
			"<====",
			[]string{
				`{Type: LESS_EQUAL, Lexeme: "<=", Literal: "", Line: 1}`,
				`{Type: EQUAL_EQUAL, Lexeme: "==", Literal: "", Line: 1}`,
				`{Type: EQUAL, Lexeme: "=", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"gt gteq lt",
			"> >= <",
			[]string{
				`{Type: GREATER, Lexeme: ">", Literal: "", Line: 1}`,
				`{Type: GREATER_EQUAL, Lexeme: ">=", Literal: "", Line: 1}`,
				`{Type: LESS, Lexeme: "<", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"trailing lookahead",
			"=",
			[]string{
				`{Type: EQUAL, Lexeme: "=", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"comment",
			"//comment",
			[]string{
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"comment between numbers",
			"1 // comment\n2;",
			[]string{
				`{Type: NUMBER, Lexeme: "1", Literal: "1", Line: 1}`,
				`{Type: NUMBER, Lexeme: "2", Literal: "2", Line: 2}`,
				`{Type: SEMICOLON, Lexeme: ";", Literal: "", Line: 2}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 2}`,
			},
		},
		{
			"bangcomment",
			"!//comment",
			[]string{
				`{Type: BANG, Lexeme: "!", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"spaces",
			"! \r\t=",
			[]string{
				`{Type: BANG, Lexeme: "!", Literal: "", Line: 1}`,
				`{Type: EQUAL, Lexeme: "=", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"newlines",
			"1\n\n2\n",
			[]string{
				`{Type: NUMBER, Lexeme: "1", Literal: "1", Line: 1}`,
				`{Type: NUMBER, Lexeme: "2", Literal: "2", Line: 3}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 4}`,
			},
		},
		{
			"string",
			`"string"`,
			[]string{
				`{Type: STRING, Lexeme: "\"string\"", Literal: "string", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"empty-string",
			`""`,
			[]string{
				`{Type: STRING, Lexeme: "\"\"", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"string-multiline",
			"\"a\nb\";",
			[]string{
				`{Type: STRING, Lexeme: "\"a\nb\"", Literal: "a\nb", Line: 2}`,
				`{Type: SEMICOLON, Lexeme: ";", Literal: "", Line: 2}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 2}`,
			},
		},
		{
			"string-keeps-comment",
			`"a // b"`,
			[]string{
				`{Type: STRING, Lexeme: "\"a // b\"", Literal: "a // b", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"number-integer",
			`10`,
			[]string{
				`{Type: NUMBER, Lexeme: "10", Literal: "10", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"number-integer-leading-zeroes",
			`0010`,
			[]string{
				`{Type: NUMBER, Lexeme: "0010", Literal: "0010", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"number-decimal",
			`12.34`,
			[]string{
				`{Type: NUMBER, Lexeme: "12.34", Literal: "12.34", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"number-dot",
			`12.`,
			[]string{
				`{Type: NUMBER, Lexeme: "12", Literal: "12", Line: 1}`,
				`{Type: DOT, Lexeme: ".", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"number-dot-dot",
			`1.2.3`,
			[]string{
				`{Type: NUMBER, Lexeme: "1.2", Literal: "1.2", Line: 1}`,
				`{Type: DOT, Lexeme: ".", Literal: "", Line: 1}`,
				`{Type: NUMBER, Lexeme: "3", Literal: "3", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"leading-dot",
			`.5`,
			[]string{
				`{Type: DOT, Lexeme: ".", Literal: "", Line: 1}`,
				`{Type: NUMBER, Lexeme: "5", Literal: "5", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"identifier",
			`identifier`,
			[]string{
				`{Type: IDENTIFIER, Lexeme: "identifier", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"identifier-letters-only",
			`ab1`,
			[]string{
				`{Type: IDENTIFIER, Lexeme: "ab", Literal: "", Line: 1}`,
				`{Type: NUMBER, Lexeme: "1", Literal: "1", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"identifier-unicode",
			`größe`,
			[]string{
				`{Type: IDENTIFIER, Lexeme: "größe", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
		{
			"reserved",
			`and class else false for fun if nil or print return super this true var while`,
			[]string{
				`{Type: AND, Lexeme: "and", Literal: "", Line: 1}`,
				`{Type: CLASS, Lexeme: "class", Literal: "", Line: 1}`,
				`{Type: ELSE, Lexeme: "else", Literal: "", Line: 1}`,
				`{Type: FALSE, Lexeme: "false", Literal: "", Line: 1}`,
				`{Type: FOR, Lexeme: "for", Literal: "", Line: 1}`,
				`{Type: FUN, Lexeme: "fun", Literal: "", Line: 1}`,
				`{Type: IF, Lexeme: "if", Literal: "", Line: 1}`,
				`{Type: NIL, Lexeme: "nil", Literal: "", Line: 1}`,
				`{Type: OR, Lexeme: "or", Literal: "", Line: 1}`,
				`{Type: PRINT, Lexeme: "print", Literal: "", Line: 1}`,
				`{Type: RETURN, Lexeme: "return", Literal: "", Line: 1}`,
				`{Type: SUPER, Lexeme: "super", Literal: "", Line: 1}`,
				`{Type: THIS, Lexeme: "this", Literal: "", Line: 1}`,
				`{Type: TRUE, Lexeme: "true", Literal: "", Line: 1}`,
				`{Type: VAR, Lexeme: "var", Literal: "", Line: 1}`,
				`{Type: WHILE, Lexeme: "while", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 1}`,
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			s := scanner.NewScanner(tc.input)
			tokens, err := s.Scan()
			require.NoError(tt, err)

			tokensAsStrings := make([]string, len(tokens))
			for i, token := range tokens {
				tokensAsStrings[i] = token.GoString()
			}
			assert.Equal(tt, tc.expected, tokensAsStrings)
		})
	}
}

func TestScanErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name   string
		input  string
		types  []token.TokenType
		errors []string
	}{
		{
			name:   "unexpected character",
			input:  "⌘",
			types:  []token.TokenType{token.EOF},
			errors: []string{"[line 1] syntax error: Unexpected character. '⌘'"},
		},
		{
			name:   "unexpected characters accumulate",
			input:  "1 # 2\n@ 3",
			types:  []token.TokenType{token.NUMBER, token.NUMBER, token.NUMBER, token.EOF},
			errors: []string{"[line 1] syntax error: Unexpected character. '#'", "[line 2] syntax error: Unexpected character. '@'"},
		},
		{
			name:   "underscore is not an identifier character",
			input:  "a_b",
			types:  []token.TokenType{token.IDENTIFIER, token.IDENTIFIER, token.EOF},
			errors: []string{"[line 1] syntax error: Unexpected character. '_'"},
		},
		{
			name:   "unterminated string cites starting line",
			input:  "1 + 1;\n\"abc\n\n",
			types:  []token.TokenType{token.NUMBER, token.PLUS, token.NUMBER, token.SEMICOLON, token.EOF},
			errors: []string{"[line 2] syntax error: Unterminated string."},
		},
		{
			name:   "errors before and after a string",
			input:  "$\"ok\"$",
			types:  []token.TokenType{token.STRING, token.EOF},
			errors: []string{"[line 1] syntax error: Unexpected character. '$'", "[line 1] syntax error: Unexpected character. '$'"},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			s := scanner.NewScanner(tc.input)
			tokens, err := s.Scan()
			require.Error(tt, err)

			types := make([]token.TokenType, len(tokens))
			for i, tok := range tokens {
				types[i] = tok.Type
			}
			assert.Equal(tt, tc.types, types)

			messages := make([]string, len(s.Errors()))
			for i, e := range s.Errors() {
				messages[i] = e.Error()
			}
			assert.Equal(tt, tc.errors, messages)

			for _, e := range s.Errors() {
				assert.ErrorIs(tt, err, e)
			}
		})
	}
}

func TestScanUnterminatedStringThenNextSource(t *testing.T) {
	_, err := scanner.NewScanner(`"abc`).Scan()
	require.ErrorIs(t, err, loxerrors.ErrScanUnterminatedString)

	var se *loxerrors.ScannerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Line())

	tokens, err := scanner.NewScanner(`1 + 1;`).Scan()
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, token.NUMBER, tokens[0].Type)
	assert.Equal(t, "1", tokens[0].Literal)
}

func TestScanEOFLine(t *testing.T) {
	for source, line := range map[string]int{
		"":                 1,
		"print 1;":         1,
		"print 1;\n":       2,
		"var a;\n\nvar b;": 3,
		"\"x\ny\"":         2,
	} {
		tokens, err := scanner.NewScanner(source).Scan()
		require.NoError(t, err)

		eof := tokens[len(tokens)-1]
		assert.Equal(t, token.EOF, eof.Type, source)
		assert.Equal(t, line, eof.Line, source)
		assert.Empty(t, eof.Lexeme)
		assert.Empty(t, eof.Literal)

		for _, tok := range tokens[:len(tokens)-1] {
			assert.NotEqual(t, token.EOF, tok.Type)
		}
	}
}
