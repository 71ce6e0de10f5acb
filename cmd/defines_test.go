package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/loxlite/internal/interpreter"
	"github.com/leonardinius/loxlite/internal/parser"
)

func TestDefineValue(t *testing.T) {
	testcases := []struct {
		raw    string
		expect interpreter.Value
	}{
		{raw: `nil`, expect: parser.NilValue},
		{raw: `true`, expect: parser.TrueValue},
		{raw: `false`, expect: parser.FalseValue},
		{raw: `42`, expect: parser.ValueNumber(42)},
		{raw: `4.5`, expect: parser.ValueNumber(4.5)},
		{raw: `-4.5`, expect: parser.ValueNumber(-4.5)},
		{raw: `007`, expect: parser.ValueNumber(7)},
		{raw: `1e3`, expect: parser.ValueString("1e3")},
		{raw: `Inf`, expect: parser.ValueString("Inf")},
		{raw: `4.`, expect: parser.ValueString("4.")},
		{raw: `--1`, expect: parser.ValueString("--1")},
		{raw: ``, expect: parser.ValueString("")},
		{raw: `hello world`, expect: parser.ValueString("hello world")},
	}

	for _, tc := range testcases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expect, defineValue(tc.raw))
		})
	}
}

func TestDefineGlobals(t *testing.T) {
	env := interpreter.NewEnvironment()

	err := defineGlobals(env, map[string]string{"b": "2", "a": "x", "größe": "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "größe"}, env.Names())

	value, _ := env.Get("b")
	assert.Equal(t, parser.ValueNumber(2), value)
}

func TestDefineGlobalsInvalidName(t *testing.T) {
	for _, name := range []string{"", "print", "a_b", "a1", "a b", "1a"} {
		t.Run(name, func(t *testing.T) {
			err := defineGlobals(interpreter.NewEnvironment(), map[string]string{name: "1"})
			assert.ErrorIs(t, err, ErrInvalidDefine)
		})
	}
}
