package corpus

import (
	"fmt"
	"strings"
)

// Target selects the decoder entry point a case is meant for.
type Target int

const (
	TargetValue Target = iota
	TargetContainer
)

var targetNames = []string{"value", "container"}

func (t Target) String() string {
	if t < 0 || int(t) >= len(targetNames) {
		return fmt.Sprintf("Target(%d)", int(t))
	}
	return targetNames[t]
}

// Dir is the directory of raw seed files for the target.
func (t Target) Dir() string {
	switch t {
	case TargetValue:
		return "deserialize"
	case TargetContainer:
		return "container"
	default:
		return t.String()
	}
}

// FuzzFunc is the name of the Go fuzz test that consumes the target's seeds.
func (t Target) FuzzFunc() string {
	switch t {
	case TargetValue:
		return "FuzzDecodeValue"
	case TargetContainer:
		return "FuzzDecodeContainer"
	default:
		return "Fuzz" + t.String()
	}
}

func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Target) UnmarshalText(text []byte) error {
	for i, n := range targetNames {
		if n == string(text) {
			*t = Target(i)
			return nil
		}
	}
	return fmt.Errorf("unknown target %q", string(text))
}

// Expect is the outcome a conforming decoder produces for a case.
type Expect int

const (
	ExpectOK Expect = iota
	ExpectTruncated
	ExpectLengthOverflow
	ExpectUnknownType
	ExpectElementFailed
	ExpectInvalid
)

var expectNames = []string{"ok", "truncated", "length_overflow", "unknown_type", "element_failed", "invalid"}

func (e Expect) String() string {
	if e < 0 || int(e) >= len(expectNames) {
		return fmt.Sprintf("Expect(%d)", int(e))
	}
	return expectNames[e]
}

func (e Expect) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Expect) UnmarshalText(text []byte) error {
	for i, n := range expectNames {
		if n == strings.ToLower(string(text)) {
			*e = Expect(i)
			return nil
		}
	}
	return fmt.Errorf("unknown expectation %q", string(text))
}

// Case is one named seed input.
type Case struct {
	Target Target
	Name   string
	Data   []byte
	Expect Expect
}

func (c Case) String() string {
	return c.Target.Dir() + "/" + c.Name
}

// Cases returns the value cases followed by the container cases. The order and
// contents are fixed.
func Cases() []Case {
	return append(ValueCases(), ContainerCases()...)
}

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// ValueCases returns seeds for single value decoding: one valid value per tag
// and the structural and adversarial edge cases.
func ValueCases() []Case {
	ok := func(name string, data []byte) Case {
		return Case{Target: TargetValue, Name: name, Data: data, Expect: ExpectOK}
	}
	bad := func(name string, data []byte, e Expect) Case {
		return Case{Target: TargetValue, Name: name, Data: data, Expect: e}
	}
	return []Case{
		ok("null_value", value("null_test", 0, nil)),
		ok("bool_true", value("bool_true", 1, []byte{1})),
		ok("bool_false", value("bool_false", 1, []byte{0})),
		ok("int16_value", value("short", 2, i16(-12345))),
		ok("uint16_value", value("ushort", 3, le16(65000))),
		ok("int32_value", value("int", 4, i32(-123456789))),
		ok("uint32_value", value("uint", 5, le32(0xDEADBEEF))),
		ok("int64_value", value("llong", 6, i64(-9223372036854775807))),
		ok("uint64_value", value("ullong", 7, le64(0xDEADBEEFCAFEBABE))),
		ok("float_value", value("float", 8, f32(3.14159))),
		ok("double_value", value("double", 9, f64(2.718281828459045))),
		ok("string_value", value("string", 11, lengthPrefixed([]byte("Hello, World!")))),
		ok("bytes_value", value("bytes", 10, lengthPrefixed(allBytes()))),
		ok("container_value", value("container", 12, sequence(
			value("int_val", 4, le32(123)),
			value("str_val", 11, lengthPrefixed([]byte("test"))),
		))),
		ok("array_value", value("array", 13, sequence(
			value("", 4, le32(1)),
			value("", 4, le32(2)),
			value("", 4, le32(3)),
		))),
		bad("empty", []byte{}, ExpectTruncated),
		bad("minimal", NewBuilder().Len(0).Bytes(), ExpectTruncated),
		bad("truncated_name_len", []byte{0xFF, 0xFF}, ExpectTruncated),
		bad("huge_name_len", NewBuilder().Len(0xFFFFFFFF).Raw([]byte("x")).Bytes(), ExpectLengthOverflow),
		bad("invalid_type", value("test", 255, []byte{0, 0, 0, 0}), ExpectUnknownType),
		ok("zero_name", value("", 4, le32(42))),
	}
}

// ContainerCases returns seeds for container decoding.
func ContainerCases() []Case {
	c := func(name string, data []byte, e Expect) Case {
		return Case{Target: TargetContainer, Name: name, Data: data, Expect: e}
	}
	return []Case{
		c("empty_container", sequence(), ExpectOK),
		c("single_value", sequence(value("test", 4, le32(42))), ExpectOK),
		c("multiple_values", sequence(
			value("int_val", 4, le32(123)),
			value("bool_val", 1, []byte{1}),
			value("str_val", 11, lengthPrefixed([]byte("test"))),
		), ExpectOK),
		c("huge_count", NewBuilder().Len(0xFFFFFFFF).Bytes(), ExpectElementFailed),
		c("corrupted", NewBuilder().Claiming(5, make([]byte, 10)).Bytes(), ExpectElementFailed),
		c("empty", []byte{}, ExpectTruncated),
		c("partial_count", []byte{0x01, 0x00}, ExpectTruncated),
	}
}
