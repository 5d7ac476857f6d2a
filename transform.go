package utf8codec

import (
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Validator is a transformer that copies well-formed UTF-8 through
// unchanged and fails with a KindInvalidSequence *Error on the first
// malformed, overlong or surrogate sequence. Unlike the x/text decoders it
// never substitutes U+FFFD.
//
// The error's Offset is relative to the src of the failing Transform call.
var Validator transform.Transformer = validator{}

// Strict is an encoding.Encoding for UTF-8 whose decoder and encoder both
// reject invalid input instead of replacing it:
//
//	s, err := utf8codec.Strict.NewDecoder().String(input)
//	r := utf8codec.Strict.NewDecoder().Reader(conn)
var Strict encoding.Encoding = strictEncoding{}

type strictEncoding struct{}

func (strictEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: validator{}}
}

func (strictEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: validator{}}
}

func (strictEncoding) String() string { return "UTF-8 (strict)" }

type validator struct{ transform.NopResetter }

func (validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	i := 0
	for i < len(src) {
		c := src[i]
		if c < 0x80 {
			if i >= len(dst) {
				return i, i, transform.ErrShortDst
			}
			dst[i] = c
			i++
			continue
		}

		if size, ok := ClassifyLeadingByte(c); ok && i+size > len(src) && !atEOF && continuationsOnly(src[i+1:]) {
			return i, i, transform.ErrShortSrc
		}

		_, size, e := decode(src[i:])
		if e != nil {
			e = e.at(OpTransform, i)
			Logger().Debug("utf8codec: invalid input",
				zap.Int("offset", e.Offset),
				zap.Binary("bytes", src[i:min(i+maxSequenceLen, len(src))]),
			)
			return i, i, e
		}
		if i+size > len(dst) {
			return i, i, transform.ErrShortDst
		}
		copy(dst[i:], src[i:i+size])
		i += size
	}
	return i, i, nil
}

func continuationsOnly(b []byte) bool {
	for _, c := range b {
		if !IsContinuationByte(c) {
			return false
		}
	}
	return true
}
