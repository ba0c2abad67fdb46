package codec

import (
	"bytes"
	"fmt"
)

// Value is a named typed unit of serialized data. The name is arbitrary bytes
// and may be empty. A nil Payload is encoded as Null.
type Value struct {
	Name    []byte
	Payload Payload
}

// NewValue is a shorthand for building values with textual names.
func NewValue(name string, p Payload) Value {
	return Value{Name: []byte(name), Payload: p}
}

func (v Value) payload() Payload {
	if v.Payload == nil {
		return Null{}
	}
	return v.Payload
}

func (v Value) Tag() Tag {
	return v.payload().Tag()
}

// Equal compares names and payloads byte-wise. Nil and empty byte slices are equal.
func (v Value) Equal(other Value) bool {
	return bytes.Equal(v.Name, other.Name) && v.payload().equal(other.payload())
}

func (v Value) String() string {
	switch p := v.payload().(type) {
	case Null:
		return fmt.Sprintf("%s %q", TagNull, v.Name)
	case Bytes:
		return fmt.Sprintf("%s %q = %x", TagBytes, v.Name, []byte(p))
	case String:
		return fmt.Sprintf("%s %q = %q", TagString, v.Name, string(p))
	case Container:
		return fmt.Sprintf("%s %q [%d]", TagContainer, v.Name, len(p))
	case Array:
		return fmt.Sprintf("%s %q [%d]", TagArray, v.Name, p.Len())
	default:
		return fmt.Sprintf("%s %q = %v", p.Tag(), v.Name, p)
	}
}
