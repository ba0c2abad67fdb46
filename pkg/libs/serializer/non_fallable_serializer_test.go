package serializer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNonFallableSerializer_Write(t *testing.T) {
	buf := &bytes.Buffer{}
	o := bytes.NewBuffer([]byte{1, 2, 3, 4, 5})
	s := NewNonFallable(buf)
	_, _ = o.WriteTo(s)

	require.EqualValues(t, 5, s.N())
	require.Equal(t, []byte{1, 2, 3, 4, 5}, buf.Bytes())
}

func TestNonFallableSerializer_LittleEndian(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewNonFallable(buf)
	s.Uint32(0xffffffff)
	s.Byte('x')
	s.Uint16(0x0102)
	s.Uint64(1)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 'x', 0x02, 0x01, 1, 0, 0, 0, 0, 0, 0, 0}, buf.Bytes())
	require.EqualValues(t, 15, s.N())
}
