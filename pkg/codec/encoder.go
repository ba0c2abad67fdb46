package codec

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/wavesplatform/valuecodec/pkg/libs/serializer"
)

func (v Value) encode(s *serializer.Serializer) error {
	if err := s.BytesWithUInt32Len(v.Name); err != nil {
		return errors.Wrap(err, "failed to write value name")
	}
	p := v.payload()
	if err := s.Byte(byte(p.Tag())); err != nil {
		return err
	}
	if err := p.encode(s); err != nil {
		return errors.Wrapf(err, "failed to write %s payload of value %q", p.Tag(), v.Name)
	}
	return nil
}

// WriteTo writes the encoded value to w.
func (v Value) WriteTo(w io.Writer) (int64, error) {
	s := serializer.New(w)
	err := v.encode(s)
	return s.N(), err
}

// MarshalBinary encodes the value. It fails only for names or payloads longer
// than math.MaxUint32 bytes, which cannot be described by a length field.
func (v Value) MarshalBinary() ([]byte, error) {
	return marshal(v.WriteTo)
}

// WriteTo writes the encoded container to w.
func (c Container) WriteTo(w io.Writer) (int64, error) {
	s := serializer.New(w)
	err := c.encode(s)
	return s.N(), err
}

func (c Container) MarshalBinary() ([]byte, error) {
	return marshal(c.WriteTo)
}

// EncodeValue encodes a single value with the given name and payload.
func EncodeValue(name []byte, p Payload) ([]byte, error) {
	return Value{Name: name, Payload: p}.MarshalBinary()
}

// EncodeContainer encodes the values as a container.
func EncodeContainer(values ...Value) ([]byte, error) {
	return Container(values).MarshalBinary()
}

// AppendValue appends the encoded value to dst and returns the extended slice.
func AppendValue(dst []byte, v Value) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	if _, err := v.WriteTo(buf); err != nil {
		return dst, err
	}
	return buf.Bytes(), nil
}

// AppendContainer appends the encoded container to dst and returns the extended slice.
func AppendContainer(dst []byte, c Container) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	if _, err := c.WriteTo(buf); err != nil {
		return dst, err
	}
	return buf.Bytes(), nil
}

func marshal(writeTo func(w io.Writer) (int64, error)) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := writeTo(buf); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}
