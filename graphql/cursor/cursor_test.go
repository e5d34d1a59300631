package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testCursor struct {
	Nano int64
	ID   string
}

func TestEncodeDecode(t *testing.T) {
	c := testCursor{Nano: 123, ID: "abc"}
	s, err := Encode(c)
	assert.NoError(t, err)
	assert.NotEmpty(t, s)

	var decoded testCursor
	assert.NoError(t, Decode(s, &decoded))
	assert.Equal(t, c, decoded)
}

func TestDecodeMalformed(t *testing.T) {
	var decoded testCursor
	assert.Error(t, Decode("not a valid cursor", &decoded))
}
