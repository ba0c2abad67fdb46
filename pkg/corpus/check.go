package corpus

import (
	"errors"

	"github.com/wavesplatform/valuecodec/pkg/codec"
	"github.com/wavesplatform/valuecodec/pkg/errs"
)

// Classify maps a decode error to the expectation it satisfies.
func Classify(err error) Expect {
	switch {
	case err == nil:
		return ExpectOK
	case errors.Is(err, errs.ElementDecodeFailed{}):
		return ExpectElementFailed
	case errors.Is(err, errs.LengthOverflow{}):
		return ExpectLengthOverflow
	case errors.Is(err, errs.Truncated{}):
		return ExpectTruncated
	case errors.Is(err, errs.UnknownType{}):
		return ExpectUnknownType
	default:
		return ExpectInvalid
	}
}

// Decode runs the decoder entry point of the case's target over its data.
func Decode(d codec.Decoder, c Case) error {
	var err error
	switch c.Target {
	case TargetContainer:
		_, _, err = d.DecodeContainer(c.Data, 0)
	default:
		_, _, err = d.DecodeValue(c.Data, 0)
	}
	return err
}

// Mismatch describes a case whose decoding outcome differs from its expectation.
type Mismatch struct {
	Case Case
	Got  Expect
	Err  error
}

// Check decodes every case and returns those that do not behave as expected.
func Check(d codec.Decoder, cases []Case) []Mismatch {
	var rs []Mismatch
	for _, c := range cases {
		err := Decode(d, c)
		if got := Classify(err); got != c.Expect {
			rs = append(rs, Mismatch{Case: c, Got: got, Err: err})
		}
	}
	return rs
}
