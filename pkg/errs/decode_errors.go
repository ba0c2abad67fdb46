package errs

import "fmt"

// Truncated is returned when fewer bytes remain than a fixed-width field needs.
type Truncated struct {
	message string
	Offset  int
	Want    int
	Have    int
}

func NewTruncated(what string, offset, want, have int) *Truncated {
	return &Truncated{
		message: fmt.Sprintf("not enough bytes to read %s at offset %d, expected %d, found %d", what, offset, want, have),
		Offset:  offset,
		Want:    want,
		Have:    have,
	}
}

func (a Truncated) Error() string {
	return a.message
}

func (a Truncated) Extend(message string) error {
	a.message = fmtExtend(a, message)
	return &a
}

func (a Truncated) Is(target error) bool {
	switch target.(type) {
	case Truncated, *Truncated:
		return true
	default:
		return false
	}
}

// LengthOverflow is returned when a declared length exceeds the bytes remaining
// in the input. It also matches Truncated with errors.Is.
type LengthOverflow struct {
	message   string
	Offset    int
	Declared  uint64
	Remaining int
}

func NewLengthOverflow(what string, offset int, declared uint64, remaining int) *LengthOverflow {
	return &LengthOverflow{
		message: fmt.Sprintf("declared %s length %d at offset %d exceeds remaining %d bytes",
			what, declared, offset, remaining),
		Offset:    offset,
		Declared:  declared,
		Remaining: remaining,
	}
}

func (a LengthOverflow) Error() string {
	return a.message
}

func (a LengthOverflow) Extend(message string) error {
	a.message = fmtExtend(a, message)
	return &a
}

func (a LengthOverflow) Is(target error) bool {
	switch target.(type) {
	case LengthOverflow, *LengthOverflow, Truncated, *Truncated:
		return true
	default:
		return false
	}
}

// UnknownType is returned for a tag byte outside the defined set.
type UnknownType struct {
	message string
	Offset  int
	Tag     byte
}

func NewUnknownType(offset int, tag byte) *UnknownType {
	return &UnknownType{
		message: fmt.Sprintf("unknown type tag %d at offset %d", tag, offset),
		Offset:  offset,
		Tag:     tag,
	}
}

func (a UnknownType) Error() string {
	return a.message
}

func (a UnknownType) Extend(message string) error {
	a.message = fmtExtend(a, message)
	return &a
}

func (a UnknownType) Is(target error) bool {
	switch target.(type) {
	case UnknownType, *UnknownType:
		return true
	default:
		return false
	}
}

// ElementDecodeFailed carries the index of the container or array element that
// failed to decode. The cause is available through errors.Unwrap.
type ElementDecodeFailed struct {
	prefix string
	Index  int
	err    error
}

func NewElementDecodeFailed(index int, cause error) *ElementDecodeFailed {
	return &ElementDecodeFailed{
		Index: index,
		err:   cause,
	}
}

func (a ElementDecodeFailed) Error() string {
	return fmt.Sprintf("%sfailed to decode element %d: %v", a.prefix, a.Index, a.err)
}

func (a ElementDecodeFailed) Unwrap() error {
	return a.err
}

func (a ElementDecodeFailed) Extend(message string) error {
	a.prefix = message + ": " + a.prefix
	return &a
}

func (a ElementDecodeFailed) Is(target error) bool {
	switch target.(type) {
	case ElementDecodeFailed, *ElementDecodeFailed:
		return true
	default:
		return false
	}
}

// DepthExceeded is returned when nested containers or arrays go deeper than the
// decoder allows.
type DepthExceeded struct {
	message string
	Limit   int
}

func NewDepthExceeded(offset, limit int) *DepthExceeded {
	return &DepthExceeded{
		message: fmt.Sprintf("nesting depth exceeds limit %d at offset %d", limit, offset),
		Limit:   limit,
	}
}

func (a DepthExceeded) Error() string {
	return a.message
}

func (a DepthExceeded) Extend(message string) error {
	a.message = fmtExtend(a, message)
	return &a
}

func (a DepthExceeded) Is(target error) bool {
	switch target.(type) {
	case DepthExceeded, *DepthExceeded:
		return true
	default:
		return false
	}
}

type ArrayTypeMismatch struct {
	message string
	Want    byte
	Got     byte
}

func NewArrayTypeMismatch(want, got byte) *ArrayTypeMismatch {
	return &ArrayTypeMismatch{
		message: fmt.Sprintf("array element type %d differs from array type %d", got, want),
		Want:    want,
		Got:     got,
	}
}

func (a ArrayTypeMismatch) Error() string {
	return a.message
}

func (a ArrayTypeMismatch) Extend(message string) error {
	a.message = fmtExtend(a, message)
	return &a
}

func (a ArrayTypeMismatch) Is(target error) bool {
	switch target.(type) {
	case ArrayTypeMismatch, *ArrayTypeMismatch:
		return true
	default:
		return false
	}
}

type TrailingBytes struct {
	message   string
	Remaining int
}

func NewTrailingBytes(offset, remaining int) *TrailingBytes {
	return &TrailingBytes{
		message:   fmt.Sprintf("%d unexpected bytes after offset %d", remaining, offset),
		Remaining: remaining,
	}
}

func (a TrailingBytes) Error() string {
	return a.message
}

func (a TrailingBytes) Extend(message string) error {
	a.message = fmtExtend(a, message)
	return &a
}

func (a TrailingBytes) Is(target error) bool {
	switch target.(type) {
	case TrailingBytes, *TrailingBytes:
		return true
	default:
		return false
	}
}
