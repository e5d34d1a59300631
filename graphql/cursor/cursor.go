// Package cursor implements opaque pagination cursors for list fields that accept "after"/"before"
// style arguments. Resolvers for such fields typically pair this with a FieldCost function whose
// Multiplier reflects the requested page size.
package cursor

import (
	"encoding/base64"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

// Encode serializes a cursor value into an opaque, URL-safe string. The value must be a type that
// msgpack can marshal (typically a small struct of exported fields).
func Encode(v interface{}) (string, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "error marshaling cursor")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Decode deserializes a cursor previously produced by Encode into out, which must be a non-nil
// pointer. Cursors are client-supplied, so callers implementing the GraphQL Cursor Connections
// Specification should typically treat a decode error the same as "no cursor" rather than
// propagating it as a field error.
func Decode(s string, out interface{}) error {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return errors.Wrap(err, "error decoding cursor")
	}
	if err := msgpack.Unmarshal(b, out); err != nil {
		return errors.Wrap(err, "error unmarshaling cursor")
	}
	return nil
}
