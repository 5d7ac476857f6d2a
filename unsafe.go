package utf8codec

import "unsafe"

// unsafeStringToBytes converts string to []byte without allocation
// SAFE to use here because the decode side never writes to its input
func unsafeStringToBytes(s string) []byte {
	if s == "" {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// unsafeBytesToString converts []byte to string without allocation
// The caller must not modify b while the string is in use
func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// ValidateString is Validate for a string, without copying it.
func ValidateString(s string) error {
	return Validate(unsafeStringToBytes(s))
}

// CountCodepointsInString is CountCodepoints for a string, without copying it.
func CountCodepointsInString(s string) (int, error) {
	return CountCodepoints(unsafeStringToBytes(s))
}

// DecodeCodepointInString is DecodeCodepoint for a string, without copying
// it. An empty string is a KindInvalidSequence error, never KindNullPointer.
func DecodeCodepointInString(s string) (uint32, int, error) {
	return DecodeCodepoint(unsafeStringToBytes(s))
}

// EncodeToString encodes cps into the caller's buffer and returns the
// written prefix as a string sharing out's memory. out must not be
// modified while the string is in use.
func EncodeToString(cps []uint32, out []byte) (string, error) {
	n, err := EncodeStream(cps, out)
	if err != nil {
		return "", err
	}
	return unsafeBytesToString(out[:n]), nil
}
