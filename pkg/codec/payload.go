package codec

import (
	"bytes"
	"math"

	"github.com/wavesplatform/valuecodec/pkg/libs/serializer"
)

// Payload is the typed content of a value. The set of implementations is
// closed, one type per tag.
type Payload interface {
	Tag() Tag
	encode(s *serializer.Serializer) error
	equal(other Payload) bool
}

type (
	Null    struct{}
	Bool    bool
	Int16   int16
	Uint16  uint16
	Int32   int32
	Uint32  uint32
	Int64   int64
	Uint64  uint64
	Float32 float32
	Float64 float64
	Bytes   []byte
	// String is not required to hold valid UTF-8.
	String string
)

func (Null) Tag() Tag    { return TagNull }
func (Bool) Tag() Tag    { return TagBool }
func (Int16) Tag() Tag   { return TagInt16 }
func (Uint16) Tag() Tag  { return TagUint16 }
func (Int32) Tag() Tag   { return TagInt32 }
func (Uint32) Tag() Tag  { return TagUint32 }
func (Int64) Tag() Tag   { return TagInt64 }
func (Uint64) Tag() Tag  { return TagUint64 }
func (Float32) Tag() Tag { return TagFloat32 }
func (Float64) Tag() Tag { return TagFloat64 }
func (Bytes) Tag() Tag   { return TagBytes }
func (String) Tag() Tag  { return TagString }

func (Null) encode(*serializer.Serializer) error        { return nil }
func (p Bool) encode(s *serializer.Serializer) error    { return s.Bool(bool(p)) }
func (p Int16) encode(s *serializer.Serializer) error   { return s.Int16(int16(p)) }
func (p Uint16) encode(s *serializer.Serializer) error  { return s.Uint16(uint16(p)) }
func (p Int32) encode(s *serializer.Serializer) error   { return s.Int32(int32(p)) }
func (p Uint32) encode(s *serializer.Serializer) error  { return s.Uint32(uint32(p)) }
func (p Int64) encode(s *serializer.Serializer) error   { return s.Int64(int64(p)) }
func (p Uint64) encode(s *serializer.Serializer) error  { return s.Uint64(uint64(p)) }
func (p Float32) encode(s *serializer.Serializer) error { return s.Float32(float32(p)) }
func (p Float64) encode(s *serializer.Serializer) error { return s.Float64(float64(p)) }
func (p Bytes) encode(s *serializer.Serializer) error   { return s.BytesWithUInt32Len(p) }
func (p String) encode(s *serializer.Serializer) error  { return s.StringWithUInt32Len(string(p)) }

func (Null) equal(other Payload) bool {
	_, ok := other.(Null)
	return ok
}

func (p Bool) equal(other Payload) bool {
	o, ok := other.(Bool)
	return ok && o == p
}

func (p Int16) equal(other Payload) bool {
	o, ok := other.(Int16)
	return ok && o == p
}

func (p Uint16) equal(other Payload) bool {
	o, ok := other.(Uint16)
	return ok && o == p
}

func (p Int32) equal(other Payload) bool {
	o, ok := other.(Int32)
	return ok && o == p
}

func (p Uint32) equal(other Payload) bool {
	o, ok := other.(Uint32)
	return ok && o == p
}

func (p Int64) equal(other Payload) bool {
	o, ok := other.(Int64)
	return ok && o == p
}

func (p Uint64) equal(other Payload) bool {
	o, ok := other.(Uint64)
	return ok && o == p
}

// Floats are compared by bit pattern, so a decoded NaN equals the encoded one.
func (p Float32) equal(other Payload) bool {
	o, ok := other.(Float32)
	return ok && math.Float32bits(float32(o)) == math.Float32bits(float32(p))
}

func (p Float64) equal(other Payload) bool {
	o, ok := other.(Float64)
	return ok && math.Float64bits(float64(o)) == math.Float64bits(float64(p))
}

func (p Bytes) equal(other Payload) bool {
	o, ok := other.(Bytes)
	return ok && bytes.Equal(o, p)
}

func (p String) equal(other Payload) bool {
	o, ok := other.(String)
	return ok && o == p
}
