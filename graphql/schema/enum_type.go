package schema

import (
	"fmt"

	"github.com/ccbrown/gqlcore/graphql/ast"
)

type EnumType struct {
	Name        string
	Description string
	Directives  []*Directive
	Values      map[string]*EnumValueDefinition
}

type EnumValueDefinition struct {
	Description string
	Directives  []*Directive
}

func (t *EnumType) String() string {
	return t.Name
}

func (t *EnumType) IsInputType() bool {
	return true
}

func (t *EnumType) IsOutputType() bool {
	return true
}

func (t *EnumType) IsSubTypeOf(other Type) bool {
	return t.IsSameType(other)
}

func (t *EnumType) IsSameType(other Type) bool {
	return t == other
}

func (t *EnumType) NamedType() string {
	return t.Name
}

func (t *EnumType) CoerceLiteral(from ast.Value) (interface{}, error) {
	if v, ok := from.(*ast.EnumValue); ok {
		if _, ok := t.Values[v.Value]; ok {
			return v.Value, nil
		}
	}
	return nil, fmt.Errorf("cannot coerce to %v", t.Name)
}

func (t *EnumType) CoerceVariableValue(value interface{}) (interface{}, error) {
	if s, ok := value.(string); ok {
		if _, ok := t.Values[s]; ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("cannot coerce to %v", t.Name)
}

// CoerceResult converts a resolved value into its JSON-serializable representation.
func (t *EnumType) CoerceResult(value interface{}) (interface{}, error) {
	if s, ok := value.(string); ok {
		if _, ok := t.Values[s]; ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("cannot coerce %v to %v", value, t.Name)
}

func (d *EnumType) shallowValidate() error {
	if len(d.Values) == 0 {
		return fmt.Errorf("%v must have at least one field", d.Name)
	} else {
		for name := range d.Values {
			if !isName(name) || name == "true" || name == "false" || name == "null" {
				return fmt.Errorf("illegal field name: %v", name)
			}
		}
	}
	return nil
}

func IsEnumType(t Type) bool {
	_, ok := t.(*EnumType)
	return ok
}
