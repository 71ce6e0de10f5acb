package interpreter

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/leonardinius/loxlite/internal/loxerrors"
)

// Environment holds the variable bindings of one interpreter.
//
// The environment is flat: there is no block scoping, every binding is global.
type Environment interface {
	// Define binds name to value, overwriting any previous binding.
	Define(name string, value Value)

	// Get returns the value bound to name.
	Get(name string) (Value, bool)

	// Assign rebinds an existing name. Unbound names fail with
	// loxerrors.ErrRuntimeUndefinedVariable.
	Assign(name string, value Value) error

	// Names returns the bound names in sorted order.
	Names() []string

	fmt.Stringer
}

type environment struct {
	values map[string]Value
}

func NewEnvironment() Environment {
	return &environment{values: make(map[string]Value)}
}

// Define implements Environment.
func (e *environment) Define(name string, value Value) {
	if value == nil {
		value = NilValue
	}
	e.values[name] = value
}

// Get implements Environment.
func (e *environment) Get(name string) (Value, bool) {
	value, ok := e.values[name]
	return value, ok
}

// Assign implements Environment.
func (e *environment) Assign(name string, value Value) error {
	if _, ok := e.values[name]; !ok {
		return loxerrors.ErrRuntimeUndefinedVariableName(name)
	}

	e.Define(name, value)
	return nil
}

// Names implements Environment.
func (e *environment) Names() []string {
	names := maps.Keys(e.values)
	slices.Sort(names)
	return names
}

func (e *environment) String() string {
	var w strings.Builder

	w.WriteString("{")
	for i, name := range e.Names() {
		if i > 0 {
			w.WriteString(", ")
		}
		fmt.Fprintf(&w, "%s=%#v", name, e.values[name])
	}
	w.WriteString("}")

	return w.String()
}

var _ Environment = (*environment)(nil)
