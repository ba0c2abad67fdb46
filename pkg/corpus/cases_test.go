package corpus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavesplatform/valuecodec/pkg/codec"
	"github.com/wavesplatform/valuecodec/pkg/errs"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, []byte{}, b.Bytes())

	b.LengthPrefixed([]byte("ab")).Byte(4).Raw([]byte{1, 2, 3, 4})
	assert.Equal(t, []byte{2, 0, 0, 0, 'a', 'b', 4, 1, 2, 3, 4}, b.Bytes())

	got := NewBuilder().Claiming(3, []byte{9}).Bytes()
	assert.Equal(t, []byte{3, 0, 0, 0, 9}, got)

	got = NewBuilder().Sequence([]byte{1}, []byte{2, 3}).Bytes()
	assert.Equal(t, []byte{2, 0, 0, 0, 1, 2, 3}, got)
}

func TestBuilderBytesIsCopy(t *testing.T) {
	b := NewBuilder().Byte(1)
	out := b.Bytes()
	out[0] = 0xff
	assert.Equal(t, []byte{1}, b.Bytes())
}

func TestCaseBytes(t *testing.T) {
	byName := make(map[string]Case)
	for _, c := range Cases() {
		byName[c.String()] = c
	}
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"deserialize/null_value", []byte{9, 0, 0, 0, 'n', 'u', 'l', 'l', '_', 't', 'e', 's', 't', 0}},
		{"deserialize/int32_value", []byte{3, 0, 0, 0, 'i', 'n', 't', 4, 0xEB, 0x32, 0xA4, 0xF8}},
		{"deserialize/uint32_value", []byte{4, 0, 0, 0, 'u', 'i', 'n', 't', 5, 0xEF, 0xBE, 0xAD, 0xDE}},
		{"deserialize/bool_true", []byte{9, 0, 0, 0, 'b', 'o', 'o', 'l', '_', 't', 'r', 'u', 'e', 1, 1}},
		{"deserialize/empty", []byte{}},
		{"deserialize/minimal", []byte{0, 0, 0, 0}},
		{"deserialize/truncated_name_len", []byte{0xFF, 0xFF}},
		{"deserialize/huge_name_len", []byte{0xFF, 0xFF, 0xFF, 0xFF, 'x'}},
		{"deserialize/invalid_type", []byte{4, 0, 0, 0, 't', 'e', 's', 't', 0xFF, 0, 0, 0, 0}},
		{"deserialize/zero_name", []byte{0, 0, 0, 0, 4, 42, 0, 0, 0}},
		{"container/empty_container", []byte{0, 0, 0, 0}},
		{"container/huge_count", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"container/corrupted", []byte{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"container/partial_count", []byte{1, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := byName[tc.name]
			require.True(t, ok)
			assert.Equal(t, tc.data, c.Data)
		})
	}
}

func TestCasesAreUniqueAndStable(t *testing.T) {
	first := Cases()
	seen := make(map[string]struct{}, len(first))
	for _, c := range first {
		_, dup := seen[c.String()]
		assert.False(t, dup, "duplicate case %s", c)
		seen[c.String()] = struct{}{}
		assert.NotEmpty(t, c.Name)
		assert.NotNil(t, c.Data)
	}
	assert.Equal(t, first, Cases())
	assert.Len(t, first, len(ValueCases())+len(ContainerCases()))
}

func TestValueCasesCoverEveryTag(t *testing.T) {
	tags := make(map[codec.Tag]bool)
	for _, c := range ValueCases() {
		if c.Expect != ExpectOK {
			continue
		}
		v, _, err := codec.DecodeValue(c.Data, 0)
		require.NoError(t, err, c.String())
		tags[v.Tag()] = true
	}
	for tag := codec.TagNull; tag <= codec.TagArray; tag++ {
		assert.True(t, tags[tag], "no valid case for %s", tag)
	}
}

func TestCheckDefaultDecoder(t *testing.T) {
	mm := Check(codec.Decoder{}, Cases())
	for _, m := range mm {
		t.Errorf("%s: expected %s, got %s: %v", m.Case, m.Case.Expect, m.Got, m.Err)
	}
}

func TestCheckReportsMismatch(t *testing.T) {
	cases := []Case{
		{Target: TargetValue, Name: "lie", Data: []byte{}, Expect: ExpectOK},
		{Target: TargetContainer, Name: "fine", Data: []byte{0, 0, 0, 0}, Expect: ExpectOK},
	}
	mm := Check(codec.Decoder{}, cases)
	require.Len(t, mm, 1)
	assert.Equal(t, "lie", mm[0].Case.Name)
	assert.Equal(t, ExpectTruncated, mm[0].Got)
	assert.Error(t, mm[0].Err)
}

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		err    error
		expect Expect
	}{
		{nil, ExpectOK},
		{errs.NewTruncated("name", 0, 4, 2), ExpectTruncated},
		{errs.NewLengthOverflow("name", 0, 1<<32-1, 1), ExpectLengthOverflow},
		{errs.NewUnknownType(8, 255), ExpectUnknownType},
		{errs.NewElementDecodeFailed(2, errs.NewTruncated("name length", 14, 4, 0)), ExpectElementFailed},
		{errs.NewDepthExceeded(0, 1), ExpectInvalid},
		{errors.New("other"), ExpectInvalid},
	} {
		assert.Equal(t, tc.expect, Classify(tc.err), "%v", tc.err)
	}
}

func TestDecodeContainerTargetIsDeeperByOne(t *testing.T) {
	deep := NewBuilder()
	deep.Len(1).Value(nil, byte(codec.TagContainer), nil).Len(0)
	c := Case{Target: TargetContainer, Data: deep.Bytes()}
	assert.NoError(t, Decode(codec.Decoder{MaxDepth: 2}, c))
	assert.Equal(t, ExpectElementFailed, Classify(Decode(codec.Decoder{MaxDepth: 1}, c)))
}

func TestTextMarshaling(t *testing.T) {
	var tg Target
	require.NoError(t, tg.UnmarshalText([]byte("container")))
	assert.Equal(t, TargetContainer, tg)
	assert.Error(t, tg.UnmarshalText([]byte("nope")))

	var e Expect
	require.NoError(t, e.UnmarshalText([]byte("length_overflow")))
	assert.Equal(t, ExpectLengthOverflow, e)
	assert.Error(t, e.UnmarshalText([]byte("nope")))

	assert.Equal(t, "Target(7)", Target(7).String())
	assert.Equal(t, "Expect(-1)", Expect(-1).String())
}
