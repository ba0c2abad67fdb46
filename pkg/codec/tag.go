package codec

import "fmt"

// Tag identifies the payload type of a value.
type Tag byte

const (
	TagNull Tag = iota
	TagBool
	TagInt16
	TagUint16
	TagInt32
	TagUint32
	TagInt64
	TagUint64
	TagFloat32
	TagFloat64
	TagBytes
	TagString
	TagContainer
	TagArray
)

const tagCount = int(TagArray) + 1

var tagNames = [tagCount]string{
	"null", "bool", "int16", "uint16", "int32", "uint32", "int64", "uint64",
	"float32", "float64", "bytes", "string", "container", "array",
}

// Fixed payload sizes, zero for null and for variable length payloads.
var tagWidths = [tagCount]int{0, 1, 2, 2, 4, 4, 8, 8, 4, 8, 0, 0, 0, 0}

// Valid reports whether the tag belongs to the closed set of defined tags.
func (t Tag) Valid() bool {
	return int(t) < tagCount
}

func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tag(%d)", byte(t))
	}
	return tagNames[t]
}

// Width returns the payload size of fixed-width tags. The second result is
// false for variable length payloads and unknown tags.
func (t Tag) Width() (int, bool) {
	if !t.Valid() {
		return 0, false
	}
	switch t {
	case TagBytes, TagString, TagContainer, TagArray:
		return 0, false
	default:
		return tagWidths[t], true
	}
}
