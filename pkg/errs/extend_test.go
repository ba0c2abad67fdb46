package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtend(t *testing.T) {
	require.EqualError(t, Extend(errors.New("a"), "b"), "b: a")
	require.NoError(t, Extend(nil, "b"))
}

func TestExtendKeepsType(t *testing.T) {
	err := Extend(NewUnknownType(7, 0xff), "value \"x\"")
	require.EqualError(t, err, "value \"x\": unknown type tag 255 at offset 7")
	var ut *UnknownType
	require.ErrorAs(t, err, &ut)
	require.EqualValues(t, 0xff, ut.Tag)
	require.EqualValues(t, 7, ut.Offset)
}
