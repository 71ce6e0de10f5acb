package interpreter

import "github.com/leonardinius/loxlite/internal/parser"

// Value is the runtime value produced by evaluation.
type Value = parser.Value

var (
	NilValue   = parser.NilValue
	TrueValue  = parser.TrueValue
	FalseValue = parser.FalseValue
)

func isTruthy(value Value) bool {
	switch v := value.(type) {
	case nil, parser.ValueNil:
		return false
	case parser.ValueBool:
		return bool(v)
	default:
		return true
	}
}

func boolValue(b bool) Value {
	if b {
		return TrueValue
	}
	return FalseValue
}
