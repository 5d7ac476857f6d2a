// Package utf8codec converts between Unicode codepoints and UTF-8.
//
// The core is a strict single-codepoint encoder and decoder sharing one
// leading-byte classifier. The decoder rejects truncated sequences, bad
// continuation bytes, overlong encodings and encoded surrogates; the
// encoder rejects anything that is not a Unicode scalar value and always
// produces the shortest form.
//
// # Buffers
//
// The caller owns every buffer. Core operations write into caller-supplied
// slices and never allocate:
//
//	buf := make([]byte, 4)
//	n, err := utf8codec.EncodeCodepoint(0x1F60A, buf)
//	cp, size, err := utf8codec.DecodeCodepoint(buf[:n])
//
// A nil output slice is a KindNullPointer error, checked before anything
// else. When an output is too small the error is KindBufferTooSmall; the
// encoder also reports the exact length it needs.
//
// # Buffers of many codepoints
//
//	Validate(in)              well-formedness of a whole buffer
//	CountCodepoints(in)       codepoint count of a whole buffer
//	EncodeStream(cps, out)    []uint32 -> []byte
//	DecodeStream(in, out)     []byte -> []uint32
//	ForEach / Codepoints      callback and iterator forms
//
// These stop at the first error and always report the progress made so far
// next to it, with the byte offset of the failure in the error.
//
// # io and x/text
//
// Reader and Writer adapt the codec to io.Reader and io.Writer. Validator
// and Strict plug strict validation into golang.org/x/text/transform.
//
// # Errors
//
// Every error is an *Error carrying one Kind. Use errors.Is with
// ErrNullPointer, ErrInvalidCodepoint, ErrInvalidSequence or
// ErrBufferTooSmall, or errors.As to read the offset and sizes.
package utf8codec
