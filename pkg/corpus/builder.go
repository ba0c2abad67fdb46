package corpus

import (
	"bytes"
	"math"

	"github.com/ccoveille/go-safecast"
	"github.com/wavesplatform/valuecodec/pkg/libs/serializer"
)

// Builder assembles raw byte sequences. Unlike the codec encoder it writes
// length and count fields exactly as told, which is how malformed inputs are
// produced.
type Builder struct {
	buf *bytes.Buffer
	s   *serializer.NonFallable
}

func NewBuilder() *Builder {
	buf := &bytes.Buffer{}
	return &Builder{buf: buf, s: serializer.NewNonFallable(buf)}
}

// Len writes a four byte little-endian length or count field.
func (b *Builder) Len(n uint32) *Builder {
	b.s.Uint32(n)
	return b
}

func (b *Builder) Byte(v byte) *Builder {
	b.s.Byte(v)
	return b
}

func (b *Builder) Raw(p []byte) *Builder {
	b.s.Bytes(p)
	return b
}

// LengthPrefixed writes the actual length of p followed by p.
func (b *Builder) LengthPrefixed(p []byte) *Builder {
	return b.Len(safecast.MustConvert[uint32](len(p))).Raw(p)
}

// Value writes a value with the given tag byte and pre-encoded payload. The tag
// is not checked.
func (b *Builder) Value(name []byte, tag byte, payload []byte) *Builder {
	return b.LengthPrefixed(name).Byte(tag).Raw(payload)
}

// Sequence writes a count equal to the number of items followed by the items.
func (b *Builder) Sequence(items ...[]byte) *Builder {
	return b.Claiming(safecast.MustConvert[uint32](len(items)), items...)
}

// Claiming writes an arbitrary count followed by the items.
func (b *Builder) Claiming(count uint32, items ...[]byte) *Builder {
	b.Len(count)
	for _, it := range items {
		b.Raw(it)
	}
	return b
}

// Bytes returns a copy of the assembled bytes, never nil.
func (b *Builder) Bytes() []byte {
	return append([]byte{}, b.buf.Bytes()...)
}

func value(name string, tag byte, payload []byte) []byte {
	return NewBuilder().Value([]byte(name), tag, payload).Bytes()
}

func lengthPrefixed(p []byte) []byte {
	return NewBuilder().LengthPrefixed(p).Bytes()
}

func sequence(items ...[]byte) []byte {
	return NewBuilder().Sequence(items...).Bytes()
}

func le16(v uint16) []byte {
	b := NewBuilder()
	b.s.Uint16(v)
	return b.Bytes()
}

func le32(v uint32) []byte {
	return NewBuilder().Len(v).Bytes()
}

func le64(v uint64) []byte {
	b := NewBuilder()
	b.s.Uint64(v)
	return b.Bytes()
}

func i16(v int16) []byte { return le16(uint16(v)) }
func i32(v int32) []byte { return le32(uint32(v)) }
func i64(v int64) []byte { return le64(uint64(v)) }

func f32(v float32) []byte {
	return le32(math.Float32bits(v))
}

func f64(v float64) []byte {
	return le64(math.Float64bits(v))
}
