package main

import (
	"github.com/ccbrown/gqlcore/graphql"
	"github.com/ccbrown/gqlcore/graphql/cursor"
)

// bookCursor is the opaque value encoded into a "books" connection's "after" argument: the index,
// within demoBooks, of the last book the client has already seen.
type bookCursor struct {
	Index int
}

type book struct {
	Title  string
	Author string
}

var demoBooks = []book{
	{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin"},
	{Title: "A Fire Upon the Deep", Author: "Vernor Vinge"},
	{Title: "Too Like the Lightning", Author: "Ada Palmer"},
}

// bookEdge pairs a book with its position in demoBooks, so the Book type's "cursor" field can
// encode a cursor pointing just past it.
type bookEdge struct {
	book  book
	index int
}

var bookType = &graphql.ObjectType{
	Name: "Book",
	Fields: map[string]*graphql.FieldDefinition{
		"title": {
			Type: graphql.NewNonNullType(graphql.StringType),
			Resolve: func(ctx *graphql.FieldContext) (interface{}, error) {
				return ctx.Object.(bookEdge).book.Title, nil
			},
		},
		"author": {
			Type: graphql.StringType,
			Resolve: func(ctx *graphql.FieldContext) (interface{}, error) {
				return ctx.Object.(bookEdge).book.Author, nil
			},
		},
		"cursor": {
			Type: graphql.NewNonNullType(graphql.StringType),
			Resolve: func(ctx *graphql.FieldContext) (interface{}, error) {
				return cursor.Encode(bookCursor{Index: ctx.Object.(bookEdge).index})
			},
		},
	},
}

// demoSchema returns a small schema used to exercise the engine from the command line: a "hello"
// scalar field, and a "books" list field implementing cursor-based pagination whose cost scales
// with the requested page size.
func demoSchema() (*graphql.Schema, error) {
	queryType := &graphql.ObjectType{
		Name: "Query",
		Fields: map[string]*graphql.FieldDefinition{
			"hello": {
				Type: graphql.NewNonNullType(graphql.StringType),
				Resolve: func(ctx *graphql.FieldContext) (interface{}, error) {
					return "Hello, world!", nil
				},
			},
			"books": {
				Type: graphql.NewNonNullType(graphql.NewListType(graphql.NewNonNullType(bookType))),
				Arguments: map[string]*graphql.InputValueDefinition{
					"first": {
						Type:         graphql.IntType,
						DefaultValue: 10,
					},
					"after": {
						Type: graphql.StringType,
					},
				},
				Cost: func(ctx *graphql.FieldCostContext) graphql.FieldCost {
					first := 10
					if n, ok := ctx.Arguments["first"].(int); ok {
						first = n
					}
					return graphql.FieldCost{Resolver: 1, Multiplier: first}
				},
				Resolve: func(ctx *graphql.FieldContext) (interface{}, error) {
					start := 0
					if after, ok := ctx.Arguments["after"].(string); ok && after != "" {
						var c bookCursor
						if err := cursor.Decode(after, &c); err == nil && c.Index+1 > start {
							start = c.Index + 1
						}
					}
					first, _ := ctx.Arguments["first"].(int)
					end := start + first
					if first < 0 || end > len(demoBooks) {
						end = len(demoBooks)
					}
					if start > end {
						start = end
					}
					edges := make([]bookEdge, 0, end-start)
					for i := start; i < end; i++ {
						edges = append(edges, bookEdge{book: demoBooks[i], index: i})
					}
					return edges, nil
				},
			},
		},
	}

	return graphql.NewSchema(&graphql.SchemaDefinition{
		Query: queryType,
		DirectiveDefinitions: map[string]*graphql.DirectiveDefinition{
			"include": graphql.IncludeDirective,
			"skip":    graphql.SkipDirective,
		},
	})
}
