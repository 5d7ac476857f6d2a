package utf8codec

import "fmt"

// EncodeStream encodes cps into successive positions of out and returns the
// number of bytes written. On the first failing codepoint it stops and
// returns the bytes written so far together with the error; those bytes
// stay in out. The error's Index is the failing codepoint's position and
// Offset is where its encoding would have started.
//
// Capacity is checked against the exact length each codepoint needs, so a
// KindBufferTooSmall error means the next codepoint really does not fit.
func EncodeStream(cps []uint32, out []byte) (int, error) {
	if out == nil {
		return 0, nullPointer(OpEncodeStream, "output buffer")
	}

	written := 0
	for i, cp := range cps {
		// ASCII fast path
		if cp < 0x80 && written < len(out) {
			out[written] = byte(cp)
			written++
			continue
		}
		n, e := encode(cp, out[written:])
		if e != nil {
			e = e.at(OpEncodeStream, written)
			e.Index = i
			return written, e
		}
		written += n
	}
	return written, nil
}

// DecodeStream decodes in into successive positions of out and returns the
// number of codepoints decoded. It stops with KindBufferTooSmall when out is
// full before in is consumed, or with the decoder's error at the first bad
// sequence; either way the count decoded so far is returned and out[:count]
// holds them.
func DecodeStream(in []byte, out []uint32) (int, error) {
	if out == nil {
		return 0, nullPointer(OpDecodeStream, "output buffer")
	}

	count := 0
	for offset := 0; offset < len(in); {
		if count == len(out) {
			return count, &Error{
				Op:     OpDecodeStream,
				Kind:   KindBufferTooSmall,
				Offset: offset,
				Index:  count,
				Detail: fmt.Sprintf("output holds %d codepoints", len(out)),
			}
		}
		cp, n, e := decode(in[offset:])
		if e != nil {
			return count, e.at(OpDecodeStream, offset)
		}
		out[count] = cp
		count++
		offset += n
	}
	return count, nil
}
