package executor

import (
	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/gqlerrors"
	"github.com/ccbrown/gqlcore/graphql/validator"
)

// Error represents an execution error. It's an alias for gqlerrors.Error so that the top-level
// graphql package can work with a single error type across parsing, validation, and execution.
type Error = gqlerrors.Error

// Location represents the location of a character within a query's source text.
type Location = gqlerrors.Location

func newError(node ast.Node, message string, args ...interface{}) *Error {
	return gqlerrors.New(gqlerrors.KindUnknown, node, message, args...)
}

func newNonNullViolationError(node ast.Node, path *path, message string, args ...interface{}) *Error {
	return gqlerrors.NewWithPath(gqlerrors.KindNonNullViolation, node, path, message, args...)
}

func newTypeMismatchError(node ast.Node, path *path, message string, args ...interface{}) *Error {
	return gqlerrors.NewWithPath(gqlerrors.KindTypeMismatch, node, path, message, args...)
}

// newErrorWithValidatorError converts an error produced by the validator package (during variable
// or argument coercion) into an executor Error.
func newErrorWithValidatorError(err *validator.Error) *Error {
	if err == nil {
		return nil
	}
	return gqlerrors.FromNodes(gqlerrors.KindVariableCoercion, err.Nodes, err.Message)
}
