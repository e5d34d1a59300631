package schema

import (
	"fmt"

	"github.com/ccbrown/gqlcore/graphql/ast"
)

type ScalarType struct {
	Name        string
	Description string
	Directives  []*Directive

	// Coerces an AST literal into the type's internal representation. Should return nil if
	// coercion is impossible.
	LiteralCoercion func(ast.Value) interface{}

	// Coerces a raw variable value (e.g. decoded from JSON) into the type's internal
	// representation. Should return nil if coercion is impossible.
	VariableValueCoercion func(interface{}) interface{}

	// Coerces the type's internal representation into a JSON-serializable result value. Should
	// return nil if coercion is impossible.
	ResultCoercion func(interface{}) interface{}
}

func (t *ScalarType) String() string {
	return t.Name
}

func (t *ScalarType) IsInputType() bool {
	return true
}

func (t *ScalarType) IsOutputType() bool {
	return true
}

func (t *ScalarType) IsSubTypeOf(other Type) bool {
	return t.IsSameType(other)
}

func (t *ScalarType) IsSameType(other Type) bool {
	return t == other
}

func (t *ScalarType) NamedType() string {
	return t.Name
}

func (t *ScalarType) CoerceVariableValue(v interface{}) (interface{}, error) {
	if t.VariableValueCoercion == nil {
		return v, nil
	}
	if coerced := t.VariableValueCoercion(v); coerced != nil {
		return coerced, nil
	}
	return nil, fmt.Errorf("cannot coerce to %v", t.Name)
}

// CoerceResult converts a resolved value into its JSON-serializable representation.
func (t *ScalarType) CoerceResult(v interface{}) (interface{}, error) {
	if t.ResultCoercion == nil {
		return v, nil
	}
	if coerced := t.ResultCoercion(v); coerced != nil {
		return coerced, nil
	}
	return nil, fmt.Errorf("cannot coerce %v to %v", v, t.Name)
}

func IsScalarType(t Type) bool {
	_, ok := t.(*ScalarType)
	return ok
}
