package utf8codec

import "iter"

// ForEach calls fn once per codepoint in in, in order. It stops at the first
// invalid sequence and returns its error; fn has already seen every
// codepoint before it.
func ForEach(in []byte, fn func(cp uint32)) error {
	for offset := 0; offset < len(in); {
		cp, n, e := decode(in[offset:])
		if e != nil {
			return e.at(OpDecode, offset)
		}
		fn(cp)
		offset += n
	}
	return nil
}

// Codepoints returns an iterator over the codepoints of in. A malformed
// sequence yields (0, err) once and ends the iteration.
//
//	for cp, err := range utf8codec.Codepoints(buf) {
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
func Codepoints(in []byte) iter.Seq2[uint32, error] {
	return func(yield func(uint32, error) bool) {
		for offset := 0; offset < len(in); {
			cp, n, e := decode(in[offset:])
			if e != nil {
				yield(0, e.at(OpDecode, offset))
				return
			}
			if !yield(cp, nil) {
				return
			}
			offset += n
		}
	}
}
