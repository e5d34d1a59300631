package gqlerrors

import (
	"strconv"
	"strings"
)

// Path represents a position within a GraphQL response, as a reversed linked list of field names
// and list indices. A nil *Path represents the root of the response.
type Path struct {
	Prev            *Path
	StringComponent string
	HasString       bool
	IntComponent    int
}

// WithIntComponent returns a new path that extends p with a list index.
func (p *Path) WithIntComponent(n int) *Path {
	return &Path{
		Prev:         p,
		IntComponent: n,
	}
}

// WithStringComponent returns a new path that extends p with a field name.
func (p *Path) WithStringComponent(s string) *Path {
	return &Path{
		Prev:            p,
		StringComponent: s,
		HasString:       true,
	}
}

// Slice returns the path as a slice of ints and strings, in response order.
func (p *Path) Slice() []interface{} {
	if p == nil {
		return nil
	}
	if p.HasString {
		return append(p.Prev.Slice(), p.StringComponent)
	}
	return append(p.Prev.Slice(), p.IntComponent)
}

// String renders the path using dot notation for field names and bracket notation for list
// indices, e.g. "items[0].name".
func (p *Path) String() string {
	var b strings.Builder
	for _, c := range p.Slice() {
		switch c := c.(type) {
		case string:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(c)
		case int:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(c))
			b.WriteByte(']')
		}
	}
	return b.String()
}
