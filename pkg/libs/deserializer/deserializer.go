package deserializer

import (
	"encoding/binary"

	"github.com/wavesplatform/valuecodec/pkg/errs"
)

// Deserializer reads little-endian primitives from a byte slice. Every read is
// checked against the remaining input before any byte is touched; the buffer is
// never modified.
type Deserializer struct {
	b   []byte
	off int
}

func NewDeserializer(b []byte) *Deserializer {
	return &Deserializer{
		b: b,
	}
}

// NewDeserializerAt starts reading at the given offset, which must be within [0, len(b)].
func NewDeserializerAt(b []byte, offset int) *Deserializer {
	return &Deserializer{
		b:   b,
		off: offset,
	}
}

// Offset of the next unread byte.
func (a *Deserializer) Offset() int {
	return a.off
}

// Length of the rest bytes.
func (a *Deserializer) Len() int {
	return len(a.b) - a.off
}

func (a *Deserializer) fixed(what string, size int) ([]byte, error) {
	if a.Len() < size {
		return nil, errs.NewTruncated(what, a.off, size, a.Len())
	}
	out := a.b[a.off : a.off+size]
	a.off += size
	return out, nil
}

func (a *Deserializer) Byte() (byte, error) {
	b, err := a.fixed("byte", 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (a *Deserializer) Uint16() (uint16, error) {
	b, err := a.fixed("uint16", 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (a *Deserializer) Uint32() (uint32, error) {
	b, err := a.fixed("uint32", 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (a *Deserializer) Uint64() (uint64, error) {
	b, err := a.fixed("uint64", 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Length reads a four byte length field. The value is a claim about the input
// and is checked only when the data it describes is read with Bytes.
func (a *Deserializer) Length(what string) (uint32, error) {
	b, err := a.fixed(what+" length", 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Bytes returns the next length bytes. The returned slice shares memory with the
// input. A length greater than the remaining input is reported as LengthOverflow
// before anything is read or allocated.
func (a *Deserializer) Bytes(what string, length uint32) ([]byte, error) {
	if uint64(length) > uint64(a.Len()) {
		return nil, errs.NewLengthOverflow(what, a.off, uint64(length), a.Len())
	}
	n := int(length)
	out := a.b[a.off : a.off+n]
	a.off += n
	return out, nil
}

// BytesWithUInt32Len reads a four byte length followed by that many bytes.
func (a *Deserializer) BytesWithUInt32Len(what string) ([]byte, error) {
	l, err := a.Length(what)
	if err != nil {
		return nil, err
	}
	return a.Bytes(what, l)
}
