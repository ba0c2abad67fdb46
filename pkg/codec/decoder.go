package codec

import (
	"bytes"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/wavesplatform/valuecodec/pkg/errs"
	"github.com/wavesplatform/valuecodec/pkg/libs/deserializer"
)

const (
	// DefaultMaxDepth is the nesting limit used by a zero Decoder.
	DefaultMaxDepth = 128

	// Upper bound of elements preallocated for a sequence. The count is taken
	// from the input and is not trusted.
	maxPrealloc = 64
)

// Decoder decodes values and containers. The zero value is ready to use and a
// Decoder may be shared between goroutines.
type Decoder struct {
	// MaxDepth limits nesting of container and array payloads. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

var defaultDecoder Decoder

// DecodeValue decodes one value starting at cursor using the default decoder.
func DecodeValue(buf []byte, cursor int) (Value, int, error) {
	return defaultDecoder.DecodeValue(buf, cursor)
}

// DecodeContainer decodes one container starting at cursor using the default decoder.
func DecodeContainer(buf []byte, cursor int) (Container, int, error) {
	return defaultDecoder.DecodeContainer(buf, cursor)
}

// DecodeValue decodes one value starting at cursor and returns it together with
// the cursor just past it. On error the cursor is returned unchanged.
func (d Decoder) DecodeValue(buf []byte, cursor int) (Value, int, error) {
	if err := checkCursor(buf, cursor); err != nil {
		return Value{}, cursor, err
	}
	r := deserializer.NewDeserializerAt(buf, cursor)
	v, err := d.value(r, 0)
	if err != nil {
		return Value{}, cursor, err
	}
	return v, r.Offset(), nil
}

// DecodeContainer decodes one container starting at cursor and returns it with
// the cursor just past it. Decoding stops at the first element that fails.
func (d Decoder) DecodeContainer(buf []byte, cursor int) (Container, int, error) {
	if err := checkCursor(buf, cursor); err != nil {
		return nil, cursor, err
	}
	r := deserializer.NewDeserializerAt(buf, cursor)
	values, err := d.sequence(r, 1, false)
	if err != nil {
		return nil, cursor, err
	}
	return values, r.Offset(), nil
}

// UnmarshalBinary decodes data holding exactly one value.
func (v *Value) UnmarshalBinary(data []byte) error {
	rs, n, err := DecodeValue(data, 0)
	if err != nil {
		return err
	}
	if n != len(data) {
		return errs.NewTrailingBytes(n, len(data)-n)
	}
	*v = rs
	return nil
}

// UnmarshalBinary decodes data holding exactly one container.
func (c *Container) UnmarshalBinary(data []byte) error {
	rs, n, err := DecodeContainer(data, 0)
	if err != nil {
		return err
	}
	if n != len(data) {
		return errs.NewTrailingBytes(n, len(data)-n)
	}
	*c = rs
	return nil
}

func checkCursor(buf []byte, cursor int) error {
	if cursor < 0 || cursor > len(buf) {
		return errors.Errorf("cursor %d is out of buffer bounds [0, %d]", cursor, len(buf))
	}
	return nil
}

func (d Decoder) maxDepth() int {
	if d.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return d.MaxDepth
}

// value decodes a value nested in depth container or array payloads.
func (d Decoder) value(r *deserializer.Deserializer, depth int) (Value, error) {
	name, err := r.BytesWithUInt32Len("name")
	if err != nil {
		return Value{}, err
	}
	tagOffset := r.Offset()
	b, err := r.Byte()
	if err != nil {
		return Value{}, errs.Extend(err, fmt.Sprintf("tag of value %q", name))
	}
	tag := Tag(b)
	if !tag.Valid() {
		return Value{}, errs.NewUnknownType(tagOffset, b)
	}
	p, err := d.payload(r, tag, depth)
	if err != nil {
		return Value{}, errs.Extend(err, fmt.Sprintf("%s value %q", tag, name))
	}
	return Value{Name: bytes.Clone(name), Payload: p}, nil
}

func (d Decoder) payload(r *deserializer.Deserializer, tag Tag, depth int) (Payload, error) {
	switch tag {
	case TagNull:
		return Null{}, nil
	case TagBool:
		b, err := r.Byte()
		if err != nil {
			return nil, err
		}
		return Bool(b != 0), nil
	case TagInt16, TagUint16:
		u, err := r.Uint16()
		if err != nil {
			return nil, err
		}
		if tag == TagInt16 {
			return Int16(int16(u)), nil
		}
		return Uint16(u), nil
	case TagInt32, TagUint32, TagFloat32:
		u, err := r.Uint32()
		if err != nil {
			return nil, err
		}
		switch tag {
		case TagInt32:
			return Int32(int32(u)), nil
		case TagFloat32:
			return Float32(math.Float32frombits(u)), nil
		default:
			return Uint32(u), nil
		}
	case TagInt64, TagUint64, TagFloat64:
		u, err := r.Uint64()
		if err != nil {
			return nil, err
		}
		switch tag {
		case TagInt64:
			return Int64(int64(u)), nil
		case TagFloat64:
			return Float64(math.Float64frombits(u)), nil
		default:
			return Uint64(u), nil
		}
	case TagBytes:
		b, err := r.BytesWithUInt32Len("bytes")
		if err != nil {
			return nil, err
		}
		return Bytes(bytes.Clone(b)), nil
	case TagString:
		b, err := r.BytesWithUInt32Len("string")
		if err != nil {
			return nil, err
		}
		return String(b), nil
	case TagContainer:
		values, err := d.sequence(r, depth+1, false)
		if err != nil {
			return nil, err
		}
		return Container(values), nil
	case TagArray:
		values, err := d.sequence(r, depth+1, true)
		if err != nil {
			return nil, err
		}
		return Array{values: values}, nil
	default:
		return nil, errs.NewUnknownType(r.Offset(), byte(tag))
	}
}

// sequence decodes a count followed by that many values. The count is not
// compared with the input size, a count larger than the data surfaces as a
// failure of the first element that runs out of bytes.
func (d Decoder) sequence(r *deserializer.Deserializer, depth int, homogeneous bool) ([]Value, error) {
	if limit := d.maxDepth(); depth > limit {
		return nil, errs.NewDepthExceeded(r.Offset(), limit)
	}
	count, err := r.Uint32()
	if err != nil {
		return nil, errs.Extend(err, "element count")
	}
	values := make([]Value, 0, min(count, maxPrealloc))
	for i := 0; uint64(i) < uint64(count); i++ {
		v, err := d.value(r, depth)
		if err != nil {
			return nil, errs.NewElementDecodeFailed(i, err)
		}
		if homogeneous && i > 0 && v.Tag() != values[0].Tag() {
			return nil, errs.NewElementDecodeFailed(i, errs.NewArrayTypeMismatch(byte(values[0].Tag()), byte(v.Tag())))
		}
		values = append(values, v)
	}
	return values, nil
}
