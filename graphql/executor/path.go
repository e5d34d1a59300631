package executor

import "github.com/ccbrown/gqlcore/graphql/gqlerrors"

// path is an alias for gqlerrors.Path, which tracks the response path leading to a field during
// execution.
type path = gqlerrors.Path
