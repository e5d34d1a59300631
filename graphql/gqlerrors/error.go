// Package gqlerrors defines the error and path representations shared by the schema, validator,
// and executor packages.
package gqlerrors

import (
	"fmt"
	"sync"

	"github.com/ccbrown/gqlcore/graphql/ast"
)

// Kind classifies an Error by the stage of execution that produced it.
type Kind int

const (
	// KindUnknown is the zero value, used for errors that belong to none of the stages below (e.g.
	// a request whose operation name matches no operation in the document).
	KindUnknown Kind = iota
	KindParse
	KindValidation
	KindVariableCoercion
	KindResolver
	KindNonNullViolation
	KindTypeMismatch
	KindCancellation
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindValidation:
		return "ValidationError"
	case KindVariableCoercion:
		return "VariableCoercionError"
	case KindResolver:
		return "ResolverError"
	case KindNonNullViolation:
		return "NonNullViolation"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindCancellation:
		return "CancellationError"
	default:
		return "Error"
	}
}

// Location represents the location of a character within a query's source text.
type Location struct {
	Line   int
	Column int
}

// Error represents an error that occurred during the validation or execution of a GraphQL
// request. Error messages are formatted as sentences, e.g. "An error occurred."
type Error struct {
	Message string
	Kind    Kind

	// Nearly all errors have locations, which point to one or more relevant query tokens.
	Locations []Location

	// If the error occurred during the resolution of a particular field, a path will be present.
	Path []interface{}

	originalError error
}

func (err *Error) Error() string {
	return err.Message
}

// Unwrap returns the original error, if this Error wraps one returned by a resolver or other
// plug-in function.
func (err *Error) Unwrap() error {
	return err.originalError
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

// New creates an error located at node, with no associated path.
func New(kind Kind, node ast.Node, message string, args ...interface{}) *Error {
	var nodes []ast.Node
	if node != nil {
		nodes = []ast.Node{node}
	}
	return NewWithNodes(kind, nodes, message, args...)
}

// NewWithNodes creates an error located at one or more nodes, with no associated path.
func NewWithNodes(kind Kind, nodes []ast.Node, message string, args ...interface{}) *Error {
	return &Error{
		Message:   fmt.Sprintf(message, args...),
		Kind:      kind,
		Locations: locationsForNodes(nodes),
	}
}

// NewWithPath creates an error located at node, associated with a response path.
func NewWithPath(kind Kind, node ast.Node, path *Path, message string, args ...interface{}) *Error {
	ret := New(kind, node, message, args...)
	ret.Path = path.Slice()
	return ret
}

// Wrap creates a ResolverError from an error returned by a resolver, preserving it for Unwrap.
func Wrap(node ast.Node, path *Path, err error) *Error {
	return WrapWithNodes([]ast.Node{node}, path, err)
}

// WrapWithNodes is like Wrap, but attaches locations for multiple nodes (e.g. a field that was
// selected multiple times via aliases or fragments).
func WrapWithNodes(nodes []ast.Node, path *Path, err error) *Error {
	ret := NewWithNodes(KindResolver, nodes, "%v", err)
	ret.Path = path.Slice()
	ret.originalError = err
	return ret
}

// FromNodes converts a message and the AST nodes it's located at (as produced by the validator
// package) into an Error of the given kind.
func FromNodes(kind Kind, nodes []ast.Node, message string) *Error {
	return NewWithNodes(kind, nodes, "%s", message)
}

// Accumulator collects errors encountered over the course of executing a single request. It is
// safe for concurrent use, since resolvers may run on background goroutines.
type Accumulator struct {
	mu     sync.Mutex
	errors []*Error
}

// Add appends an error to the accumulator. Safe to call from any goroutine.
func (a *Accumulator) Add(err *Error) {
	if err == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errors = append(a.errors, err)
}

// Errors returns the accumulated errors, in the order they were added.
func (a *Accumulator) Errors() []*Error {
	a.mu.Lock()
	defer a.mu.Unlock()
	ret := make([]*Error, len(a.errors))
	copy(ret, a.errors)
	return ret
}
