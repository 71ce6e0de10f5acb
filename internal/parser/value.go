package parser

import (
	"strconv"
)

type ValueType uint

const (
	ValueNilType ValueType = iota
	ValueBoolType
	ValueNumberType
	ValueStringType
)

func (t ValueType) String() string {
	switch t {
	case ValueNilType:
		return "nil"
	case ValueBoolType:
		return "boolean"
	case ValueNumberType:
		return "number"
	case ValueStringType:
		return "string"
	}
	return "ValueType(" + strconv.Itoa(int(t)) + ")"
}

// Value is a runtime value. The set of implementations is closed:
// ValueNil, ValueBool, ValueNumber and ValueString.
type Value interface {
	Type() ValueType
	String() string
	GoString() string

	sealed()
}

type (
	ValueNil    struct{}
	ValueBool   bool
	ValueNumber float64
	ValueString string
)

var (
	NilValue   = ValueNil{}
	TrueValue  = ValueBool(true)
	FalseValue = ValueBool(false)
)

// Type implements Value.
func (v ValueNil) Type() ValueType { return ValueNilType }

// Type implements Value.
func (v ValueBool) Type() ValueType { return ValueBoolType }

// Type implements Value.
func (v ValueNumber) Type() ValueType { return ValueNumberType }

// Type implements Value.
func (v ValueString) Type() ValueType { return ValueStringType }

func (v ValueNil) String() string { return "nil" }

func (v ValueBool) String() string { return strconv.FormatBool(bool(v)) }

// String formats the shortest representation that round-trips, so whole
// numbers print without a fraction.
func (v ValueNumber) String() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) }

func (v ValueString) String() string { return string(v) }

func (v ValueNil) GoString() string { return v.String() }

func (v ValueBool) GoString() string { return v.String() }

func (v ValueNumber) GoString() string { return v.String() }

func (v ValueString) GoString() string { return strconv.Quote(string(v)) }

func (ValueNil) sealed()    {}
func (ValueBool) sealed()   {}
func (ValueNumber) sealed() {}
func (ValueString) sealed() {}

var (
	_ Value = ValueNil{}
	_ Value = ValueBool(false)
	_ Value = ValueNumber(0)
	_ Value = ValueString("")
)
