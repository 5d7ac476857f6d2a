package utf8codec

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "kind only",
			err:      ErrInvalidSequence,
			expected: "utf8codec: invalid_sequence",
		},
		{
			name:     "null pointer",
			err:      nullPointer(OpEncode, "output buffer"),
			expected: "utf8codec: [encode] null_pointer: output buffer is nil",
		},
		{
			name:     "invalid codepoint",
			err:      invalidCodepoint(OpEncode, 0xD800),
			expected: "utf8codec: [encode] invalid_codepoint: U+D800 is not a Unicode scalar value",
		},
		{
			name:     "offset and detail",
			err:      invalidSequence(OpDecode, "overlong encoding", []byte{0xC0, 0xAF}).at(OpValidate, 7),
			expected: "utf8codec: [validate] invalid_sequence at offset 7: overlong encoding: c0 af",
		},
		{
			name:     "buffer too small",
			err:      bufferTooSmall(OpEncode, 3, 2),
			expected: "utf8codec: [encode] buffer_too_small: need 3 bytes, have 2",
		},
		{
			name: "index and cause",
			err: &Error{
				Op:     OpWrite,
				Kind:   KindInvalidSequence,
				Offset: 4,
				Index:  2,
				Cause:  io.ErrUnexpectedEOF,
			},
			expected: "utf8codec: [write] invalid_sequence at offset 4 (codepoint #2) (caused by: unexpected EOF)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", invalidCodepoint(OpEncodeStream, 0x110000))

	assert.ErrorIs(t, err, ErrInvalidCodepoint)
	assert.NotErrorIs(t, err, ErrInvalidSequence)
	assert.Equal(t, KindInvalidCodepoint, KindOf(err))
	assert.Equal(t, Kind(""), KindOf(io.EOF))

	cause := &Error{Kind: KindInvalidSequence, Index: -1, Cause: io.ErrClosedPipe}
	assert.True(t, errors.Is(cause, io.ErrClosedPipe))
}

func TestErrorAtCopies(t *testing.T) {
	orig := invalidSequence(OpDecode, "x", nil)
	moved := orig.at(OpRead, 10)

	assert.Equal(t, OpDecode, orig.Op)
	assert.Zero(t, orig.Offset)
	assert.Equal(t, OpRead, moved.Op)
	assert.Equal(t, 10, moved.Offset)
}
