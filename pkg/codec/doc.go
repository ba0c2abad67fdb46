// Package codec implements the binary encoding of named typed values and of
// containers holding them.
//
// A value is encoded as a four byte little-endian name length, the name bytes,
// one tag byte and a payload whose layout depends on the tag. A container is a
// four byte little-endian count followed by that many values. The format has no
// magic number, version or checksum: callers know whether a buffer holds a value
// or a container.
//
// Every length read from the input is compared with the
// number of bytes that remain before anything is sliced or allocated, unknown
// tags are rejected without guessing a payload width, and nesting of containers
// and arrays is bounded by Decoder.MaxDepth.
package codec
