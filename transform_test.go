package utf8codec

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestValidatorTransform(t *testing.T) {
	tests := []struct {
		name    string
		dstSize int
		src     []byte
		atEOF   bool
		nSrc    int
		err     error
	}{
		{name: "ASCII", dstSize: 8, src: []byte("abc"), atEOF: true, nSrc: 3},
		{name: "multi-byte", dstSize: 8, src: []byte("é€"), atEOF: true, nSrc: 5},
		{name: "short dst on ASCII", dstSize: 1, src: []byte("ab"), atEOF: true, nSrc: 1, err: transform.ErrShortDst},
		{name: "short dst mid character", dstSize: 2, src: []byte("aé"), atEOF: true, nSrc: 1, err: transform.ErrShortDst},
		{name: "short src", dstSize: 8, src: []byte{'a', 0xE2, 0x82}, atEOF: false, nSrc: 1, err: transform.ErrShortSrc},
		{name: "truncated at EOF", dstSize: 8, src: []byte{'a', 0xE2, 0x82}, atEOF: true, nSrc: 1, err: ErrInvalidSequence},
		{name: "bad byte inside partial", dstSize: 8, src: []byte{'a', 0xE2, 'b'}, atEOF: false, nSrc: 1, err: ErrInvalidSequence},
		{name: "overlong", dstSize: 8, src: []byte{0xC0, 0xAF}, atEOF: false, nSrc: 0, err: ErrInvalidSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.dstSize)
			nDst, nSrc, err := Validator.Transform(dst, tt.src, tt.atEOF)
			if tt.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.err)
			}
			assert.Equal(t, tt.nSrc, nSrc)
			assert.Equal(t, nSrc, nDst)
			assert.Equal(t, tt.src[:nSrc], dst[:nDst])
		})
	}
}

func TestValidatorErrorOffset(t *testing.T) {
	_, _, err := Validator.Transform(make([]byte, 8), []byte("ok\xED\xA0\x80"), true)
	require.ErrorIs(t, err, ErrInvalidSequence)
	e := err.(*Error)
	assert.Equal(t, OpTransform, e.Op)
	assert.Equal(t, 2, e.Offset)
}

func TestValidatorReader(t *testing.T) {
	r := transform.NewReader(iotest.OneByteReader(strings.NewReader(mixedText)), Validator)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, mixedText, string(out))

	r = transform.NewReader(strings.NewReader("fine\xC3"), Validator)
	_, err = io.ReadAll(r)
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestStrictEncoding(t *testing.T) {
	s, err := Strict.NewDecoder().String("ok😀")
	require.NoError(t, err)
	assert.Equal(t, "ok😀", s)

	_, err = Strict.NewDecoder().String("ok\xFF")
	assert.ErrorIs(t, err, ErrInvalidSequence)

	_, err = Strict.NewEncoder().Bytes([]byte{0xED, 0xA0, 0x80})
	assert.ErrorIs(t, err, ErrInvalidSequence)

	b, err := Strict.NewEncoder().Bytes([]byte("énd"))
	require.NoError(t, err)
	assert.Equal(t, "énd", string(b))
}
