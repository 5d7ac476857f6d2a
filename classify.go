package utf8codec

import "math/bits"

const (
	// maxSequenceLen is the longest UTF-8 character sequence
	maxSequenceLen = 4

	// MaxCodepoint is the largest Unicode codepoint
	MaxCodepoint uint32 = 0x10FFFF

	surrogateMin uint32 = 0xD800
	surrogateMax uint32 = 0xDFFF

	continuationMask = 0xC0
	continuationTag  = 0x80
	continuationBits = 0x3F
)

// Leading one-bit count -> sequence length. Index 1 (a continuation byte)
// and 5..8 are not valid leaders.
var leaderLengthLUT = [9]int8{0: 1, 1: -1, 2: 2, 3: 3, 4: 4, 5: -1, 6: -1, 7: -1, 8: -1}

// ClassifyLeadingByte reports how many bytes the UTF-8 sequence started by b
// occupies. ok is false when b cannot start a sequence: a continuation byte
// (10xxxxxx) or a byte with five or more leading one-bits.
func ClassifyLeadingByte(b byte) (n int, ok bool) {
	n = int(leaderLengthLUT[bits.LeadingZeros8(^b)])
	if n < 0 {
		return 0, false
	}
	return n, true
}

// IsContinuationByte reports whether b matches the 10xxxxxx pattern.
func IsContinuationByte(b byte) bool {
	return b&continuationMask == continuationTag
}

// IsValidCodepoint reports whether cp is a Unicode scalar value:
// at most 0x10FFFF and outside the surrogate band.
func IsValidCodepoint(cp uint32) bool {
	return cp <= MaxCodepoint && (cp < surrogateMin || cp > surrogateMax)
}

// minimalLen is the shortest encoding length for cp. Shared by the encoder
// and by the decoder's overlong check.
func minimalLen(cp uint32) int {
	switch {
	case cp <= 0x7F:
		return 1
	case cp <= 0x7FF:
		return 2
	case cp <= 0xFFFF:
		return 3
	default:
		return 4
	}
}
