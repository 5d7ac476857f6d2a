package utf8codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Op names the operation that produced an error
type Op string

const (
	OpEncode       Op = "encode"
	OpDecode       Op = "decode"
	OpValidate     Op = "validate"
	OpCount        Op = "count"
	OpEncodeStream Op = "encode-stream"
	OpDecodeStream Op = "decode-stream"
	OpRead         Op = "read"
	OpWrite        Op = "write"
	OpTransform    Op = "transform"
)

// Kind categorizes the error. An error carries exactly one kind.
type Kind string

const (
	KindNullPointer      Kind = "null_pointer"
	KindInvalidCodepoint Kind = "invalid_codepoint"
	KindInvalidSequence  Kind = "invalid_sequence"
	KindBufferTooSmall   Kind = "buffer_too_small"
)

// Sentinels for errors.Is. They match any *Error of the same Kind,
// regardless of operation or position.
var (
	ErrNullPointer      = &Error{Kind: KindNullPointer, Index: -1}
	ErrInvalidCodepoint = &Error{Kind: KindInvalidCodepoint, Index: -1}
	ErrInvalidSequence  = &Error{Kind: KindInvalidSequence, Index: -1}
	ErrBufferTooSmall   = &Error{Kind: KindBufferTooSmall, Index: -1}
)

// Error is the structured error returned by every operation in this package.
//
// Offset is the byte offset of the failing sequence in the input (decode
// side) or output (encode side). Index is the position of the failing
// codepoint for the codepoint-array operations, -1 when not applicable.
// Required is set on KindBufferTooSmall errors from the encoder and holds
// the exact number of bytes the codepoint needs.
type Error struct {
	Cause    error
	Value    any
	Op       Op
	Kind     Kind
	Detail   string
	Offset   int
	Index    int
	Required int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("utf8codec: ")
	if e.Op != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Op))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Offset > 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
	}
	if e.Index >= 0 {
		b.WriteString(" (codepoint #")
		b.WriteString(strconv.Itoa(e.Index))
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same Kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// at returns a copy of e relocated to a new operation and offset. Used by
// the folding operations to report positions relative to their own input.
func (e *Error) at(op Op, offset int) *Error {
	c := *e
	c.Op = op
	c.Offset += offset
	return &c
}

func nullPointer(op Op, what string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNullPointer,
		Index:  -1,
		Detail: what + " is nil",
	}
}

func invalidCodepoint(op Op, cp uint32) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidCodepoint,
		Index:  -1,
		Value:  cp,
		Detail: fmt.Sprintf("U+%04X is not a Unicode scalar value", cp),
	}
}

func invalidSequence(op Op, detail string, data []byte) *Error {
	preview := data
	if len(preview) > maxSequenceLen {
		preview = preview[:maxSequenceLen]
	}
	return &Error{
		Op:     op,
		Kind:   KindInvalidSequence,
		Index:  -1,
		Detail: fmt.Sprintf("%s: % x", detail, preview),
	}
}

func bufferTooSmall(op Op, required, available int) *Error {
	return &Error{
		Op:       op,
		Kind:     KindBufferTooSmall,
		Index:    -1,
		Required: required,
		Detail:   fmt.Sprintf("need %d bytes, have %d", required, available),
	}
}
