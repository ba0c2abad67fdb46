package codec

import (
	"fmt"

	"github.com/ccoveille/go-safecast"
	"github.com/pkg/errors"
	"github.com/wavesplatform/valuecodec/pkg/errs"
	"github.com/wavesplatform/valuecodec/pkg/libs/serializer"
)

// Container is an ordered sequence of values. It is encoded as a count followed
// by the values and is also the payload of container typed values.
type Container []Value

func (Container) Tag() Tag { return TagContainer }

func (c Container) encode(s *serializer.Serializer) error {
	return encodeSequence(s, c)
}

func (c Container) equal(other Payload) bool {
	o, ok := other.(Container)
	return ok && sequenceEqual(c, o)
}

// Equal reports whether both containers hold equal values in the same order.
func (c Container) Equal(other Container) bool {
	return sequenceEqual(c, other)
}

// Array is a homogeneous sequence of values sharing one tag. Its wire layout is
// the same as a container's. Arrays are built with NewArray, which keeps every
// encodable array decodable.
type Array struct {
	values []Value
}

// NewArray returns an array of the given values or an ArrayTypeMismatch error if
// their tags differ.
func NewArray(values ...Value) (Array, error) {
	for i := 1; i < len(values); i++ {
		if want, got := values[0].Tag(), values[i].Tag(); got != want {
			return Array{}, errs.Extend(errs.NewArrayTypeMismatch(byte(want), byte(got)), fmt.Sprintf("element %d", i))
		}
	}
	return Array{values: values}, nil
}

// MustArray is like NewArray but panics on mixed tags. For tests and static data.
func MustArray(values ...Value) Array {
	a, err := NewArray(values...)
	if err != nil {
		panic(err)
	}
	return a
}

func (Array) Tag() Tag { return TagArray }

func (a Array) Len() int {
	return len(a.values)
}

// Values returns the array elements. The slice must not be modified.
func (a Array) Values() []Value {
	return a.values
}

// ElemTag returns the tag shared by all elements, false for an empty array.
func (a Array) ElemTag() (Tag, bool) {
	if len(a.values) == 0 {
		return 0, false
	}
	return a.values[0].Tag(), true
}

func (a Array) encode(s *serializer.Serializer) error {
	return encodeSequence(s, a.values)
}

func (a Array) equal(other Payload) bool {
	o, ok := other.(Array)
	return ok && sequenceEqual(a.values, o.values)
}

func encodeSequence(s *serializer.Serializer, values []Value) error {
	count, err := safecast.ToUint32(len(values))
	if err != nil {
		return errors.Wrapf(err, "too many values %d", len(values))
	}
	if err := s.Uint32(count); err != nil {
		return err
	}
	for i := range values {
		if err := values[i].encode(s); err != nil {
			return errors.Wrapf(err, "failed to encode element %d", i)
		}
	}
	return nil
}

func sequenceEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
