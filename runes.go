package utf8codec

// Prefix for the leading byte, indexed by sequence length
var leaderTag = [maxSequenceLen + 1]byte{1: 0x00, 2: 0xC0, 3: 0xE0, 4: 0xF0}

// EncodedLen returns the number of bytes EncodeCodepoint writes for cp.
func EncodedLen(cp uint32) (int, error) {
	if !IsValidCodepoint(cp) {
		return 0, invalidCodepoint(OpEncode, cp)
	}
	return minimalLen(cp), nil
}

// EncodeCodepoint writes the UTF-8 encoding of cp into out and returns the
// number of bytes written.
//
// A nil out is a KindNullPointer error. When out is too short the error is
// KindBufferTooSmall and the returned int is the required length, so the
// caller can retry with a right-sized buffer. Nothing is written on error.
func EncodeCodepoint(cp uint32, out []byte) (int, error) {
	n, e := encode(cp, out)
	if e != nil {
		return n, e
	}
	return n, nil
}

func encode(cp uint32, out []byte) (int, *Error) {
	if out == nil {
		return 0, nullPointer(OpEncode, "output buffer")
	}
	if !IsValidCodepoint(cp) {
		return 0, invalidCodepoint(OpEncode, cp)
	}

	n := minimalLen(cp)
	if len(out) < n {
		return n, bufferTooSmall(OpEncode, n, len(out))
	}

	// Fast path for ASCII - most common case
	if n == 1 {
		out[0] = byte(cp)
		return 1, nil
	}

	// Continuation bytes from the least significant 6-bit slice backwards
	for i := n - 1; i > 0; i-- {
		out[i] = continuationTag | byte(cp&continuationBits)
		cp >>= 6
	}
	out[0] = leaderTag[n] | byte(cp)
	return n, nil
}

// AppendCodepoint appends the UTF-8 encoding of cp to dst, growing it if
// needed. It is the only allocating encode path.
func AppendCodepoint(dst []byte, cp uint32) ([]byte, error) {
	n, err := EncodedLen(cp)
	if err != nil {
		return dst, err
	}
	var buf [maxSequenceLen]byte
	if _, err := EncodeCodepoint(cp, buf[:n]); err != nil {
		return dst, err
	}
	return append(dst, buf[:n]...), nil
}

// DecodeCodepoint decodes the character sequence at the start of in and
// returns its codepoint and the number of bytes consumed.
//
// Every failure other than a nil input is KindInvalidSequence: a byte that
// cannot lead a sequence, a truncated sequence, a bad continuation byte, an
// overlong encoding or an encoded surrogate. Truncation is not reported
// differently from malformation; streaming callers check availability with
// ClassifyLeadingByte first.
func DecodeCodepoint(in []byte) (uint32, int, error) {
	cp, n, e := decode(in)
	if e != nil {
		return 0, 0, e
	}
	return cp, n, nil
}

// decode is DecodeCodepoint returning the concrete error type, so the
// folding operations can relocate it without a type assertion.
func decode(in []byte) (uint32, int, *Error) {
	if in == nil {
		return 0, 0, nullPointer(OpDecode, "input buffer")
	}
	if len(in) == 0 {
		return 0, 0, invalidSequence(OpDecode, "empty input", in)
	}

	b0 := in[0]
	// Fast ASCII path
	if b0 < 0x80 {
		return uint32(b0), 1, nil
	}

	n, ok := ClassifyLeadingByte(b0)
	if !ok {
		return 0, 0, invalidSequence(OpDecode, "invalid leading byte", in)
	}

	// Leading byte keeps 7-n data bits. Bytes that are present are checked
	// before a short input is reported as truncated.
	cp := uint32(b0 & (0xFF >> (n + 1)))
	for i := 1; i < n; i++ {
		if i >= len(in) {
			return 0, 0, invalidSequence(OpDecode, "truncated sequence", in)
		}
		c := in[i]
		if !IsContinuationByte(c) {
			return 0, 0, invalidSequence(OpDecode, "invalid continuation byte", in)
		}
		cp = cp<<6 | uint32(c&continuationBits)
	}

	if minimalLen(cp) != n {
		return 0, 0, invalidSequence(OpDecode, "overlong encoding", in)
	}
	if !IsValidCodepoint(cp) {
		return 0, 0, invalidSequence(OpDecode, "encoded surrogate or out of range", in)
	}
	return cp, n, nil
}
