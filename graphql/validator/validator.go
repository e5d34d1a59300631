package validator

import (
	"fmt"

	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/gqlerrors"
	"github.com/ccbrown/gqlcore/graphql/schema"
)

// Location is an alias for gqlerrors.Location, so that validator errors can be reported alongside
// execution errors without conversion.
type Location = gqlerrors.Location

type Error struct {
	Message   string
	Nodes     []ast.Node
	Locations []Location

	// If a validator is unable to perform its job due to an error unrelated to its purpose, it will
	// emit a secondary error. Secondary errors are always errors that should be caught by other
	// validators, so if there are any primary errors, secondary errors are discarded as they should
	// all be duplicates. If a secondary error makes it out of validation, there's probably a
	// mistake in one of the validators.
	isSecondary bool
}

func (err *Error) Error() string {
	return err.Message
}

func locationsForNodes(nodes []ast.Node) []Location {
	var locations []Location
	for _, node := range nodes {
		if node != nil {
			pos := node.Position()
			locations = append(locations, Location{
				Line:   pos.Line,
				Column: pos.Column,
			})
		}
	}
	return locations
}

func newError(node ast.Node, message string, args ...interface{}) *Error {
	return newErrorWithNodes([]ast.Node{node}, message, args...)
}

func newErrorWithNodes(nodes []ast.Node, message string, args ...interface{}) *Error {
	return &Error{
		Message:   fmt.Sprintf(message, args...),
		Nodes:     nodes,
		Locations: locationsForNodes(nodes),
	}
}

func newSecondaryError(node ast.Node, message string, args ...interface{}) *Error {
	ret := newErrorWithNodes([]ast.Node{node}, message, args...)
	ret.isSecondary = true
	return ret
}

// Rule defines a validation pass that can be run against a document, beyond the rules required by
// the GraphQL spec itself (e.g. ValidateCost).
type Rule func(*ast.Document, *schema.Schema, *TypeInfo) []*Error

// ValidateDocument runs the document through every rule required by the GraphQL spec, plus any
// additional rules supplied by the caller, and returns the accumulated errors.
func ValidateDocument(doc *ast.Document, s *schema.Schema, rules ...Rule) []*Error {
	typeInfo := NewTypeInfo(doc, s)
	var errs []*Error
	for _, f := range []Rule{
		validateDocument,
		validateOperations,
		validateFields,
		validateArguments,
		validateFragments,
		validateValues,
		validateDirectives,
		validateVariables,
	} {
		errs = append(errs, f(doc, s, typeInfo)...)
	}
	for _, rule := range rules {
		errs = append(errs, rule(doc, s, typeInfo)...)
	}
	var primary []*Error
	for _, err := range errs {
		if !err.isSecondary {
			primary = append(primary, err)
		}
	}
	if len(primary) > 0 {
		return primary
	}
	return errs
}
