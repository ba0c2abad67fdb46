package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncated(t *testing.T) {
	err := NewTruncated("uint32", 3, 4, 2)
	require.EqualError(t, err, "not enough bytes to read uint32 at offset 3, expected 4, found 2")
	assert.ErrorIs(t, err, Truncated{})
	assert.NotErrorIs(t, err, LengthOverflow{})
	require.EqualError(t, err.Extend("b"), "b: not enough bytes to read uint32 at offset 3, expected 4, found 2")
}

func TestLengthOverflowIsTruncated(t *testing.T) {
	err := NewLengthOverflow("name", 4, 0xffffffff, 1)
	require.EqualError(t, err, "declared name length 4294967295 at offset 4 exceeds remaining 1 bytes")
	assert.ErrorIs(t, err, LengthOverflow{})
	assert.ErrorIs(t, err, Truncated{})
	assert.NotErrorIs(t, err, UnknownType{})
}

func TestElementDecodeFailed(t *testing.T) {
	cause := NewTruncated("tag", 10, 1, 0)
	err := Extend(NewElementDecodeFailed(2, cause), "container")
	require.EqualError(t, err, "container: failed to decode element 2: not enough bytes to read tag at offset 10, expected 1, found 0")
	assert.ErrorIs(t, err, ElementDecodeFailed{})
	assert.ErrorIs(t, err, Truncated{})

	var edf *ElementDecodeFailed
	require.True(t, errors.As(err, &edf))
	assert.Equal(t, 2, edf.Index)
	var tr *Truncated
	require.True(t, errors.As(err, &tr))
	assert.Equal(t, 10, tr.Offset)
}

func TestNestedElementDecodeFailed(t *testing.T) {
	inner := NewElementDecodeFailed(0, NewUnknownType(20, 99))
	outer := NewElementDecodeFailed(3, Extend(inner, "value \"nested\""))
	assert.ErrorIs(t, outer, UnknownType{})
	var edf *ElementDecodeFailed
	require.ErrorAs(t, outer, &edf)
	assert.Equal(t, 3, edf.Index)
}

func TestSupplementalErrors(t *testing.T) {
	require.EqualError(t, NewDepthExceeded(12, 128), "nesting depth exceeds limit 128 at offset 12")
	assert.ErrorIs(t, NewDepthExceeded(0, 1), DepthExceeded{})
	require.EqualError(t, NewArrayTypeMismatch(4, 11), "array element type 11 differs from array type 4")
	assert.ErrorIs(t, NewArrayTypeMismatch(4, 11).Extend("a"), ArrayTypeMismatch{})
	require.EqualError(t, NewTrailingBytes(9, 3), "3 unexpected bytes after offset 9")
	assert.ErrorIs(t, NewTrailingBytes(9, 3), TrailingBytes{})
}
