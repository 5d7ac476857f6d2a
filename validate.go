package utf8codec

// Validate reports whether in is entirely well-formed UTF-8. The returned
// error is the decoder's, with Offset set to where the bad sequence starts.
// An empty or nil buffer is valid.
func Validate(in []byte) error {
	_, err := fold(OpValidate, in)
	return err
}

// CountCodepoints returns the number of codepoints encoded in in, or the
// first decode error. An empty or nil buffer holds zero codepoints.
func CountCodepoints(in []byte) (int, error) {
	count, err := fold(OpCount, in)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// fold walks in one character sequence at a time and returns how many were
// decoded before the end or the first error.
func fold(op Op, in []byte) (int, error) {
	count := 0
	for offset := 0; offset < len(in); {
		// ASCII runs skip the decoder entirely
		if in[offset] < 0x80 {
			offset++
			count++
			continue
		}
		_, n, e := decode(in[offset:])
		if e != nil {
			return count, e.at(op, offset)
		}
		offset += n
		count++
	}
	return count, nil
}
