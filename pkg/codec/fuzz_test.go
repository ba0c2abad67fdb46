package codec_test

import (
	"testing"

	"github.com/wavesplatform/valuecodec/pkg/codec"
	"github.com/wavesplatform/valuecodec/pkg/corpus"
)

func seed(f *testing.F, cases []corpus.Case) {
	for _, c := range cases {
		f.Add(c.Data)
	}
}

func FuzzDecodeValue(f *testing.F) {
	seed(f, corpus.ValueCases())
	f.Fuzz(func(t *testing.T, data []byte) {
		v, n, err := codec.DecodeValue(data, 0)
		if err != nil {
			if n != 0 {
				t.Fatalf("cursor moved to %d on error %v", n, err)
			}
			return
		}
		if n > len(data) {
			t.Fatalf("cursor %d beyond input of %d bytes", n, len(data))
		}
		b, err := v.MarshalBinary()
		if err != nil {
			t.Fatalf("failed to encode decoded value: %v", err)
		}
		rs, m, err := codec.DecodeValue(b, 0)
		if err != nil {
			t.Fatalf("failed to decode re-encoded value: %v", err)
		}
		if m != len(b) {
			t.Fatalf("re-encoded value consumed %d of %d bytes", m, len(b))
		}
		if !v.Equal(rs) {
			t.Fatalf("round trip mismatch: %s != %s", v, rs)
		}
	})
}

func FuzzDecodeContainer(f *testing.F) {
	seed(f, corpus.ContainerCases())
	f.Fuzz(func(t *testing.T, data []byte) {
		c, n, err := codec.DecodeContainer(data, 0)
		if err != nil {
			if n != 0 {
				t.Fatalf("cursor moved to %d on error %v", n, err)
			}
			return
		}
		b, err := c.MarshalBinary()
		if err != nil {
			t.Fatalf("failed to encode decoded container: %v", err)
		}
		var rs codec.Container
		if err := rs.UnmarshalBinary(b); err != nil {
			t.Fatalf("failed to decode re-encoded container: %v", err)
		}
		if !c.Equal(rs) {
			t.Fatalf("round trip mismatch for %d values", len(c))
		}
	})
}
