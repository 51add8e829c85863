package internal

import "math"

// ParseNumber parses a command line number which is hexadecimal when prefixed
// with a lowercase "0x" and decimal otherwise. Parsing stops at the first
// character that is not a digit of the base in use and never fails: an absent
// number yields 0. Hexadecimal results wrap to 32 bits.
func ParseNumber(s string) int {
	if len(s) < 2 || s[:2] != "0x" {
		return Atoi(s)
	}
	var v uint32
	for i := 2; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			break
		}
		v = v<<4 | uint32(d)
	}
	return int(int32(v))
}

// Atoi parses a decimal number the way C's atoi does: leading whitespace and
// a sign are accepted, parsing stops at the first non digit and the
// result is 0 if no digits are present. Out of range values saturate
// before being truncated to 32 bits.
func Atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var v uint64
	overflow := false
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if v > (math.MaxInt64-9)/10 {
			overflow = true
			continue
		}
		v = v*10 + uint64(s[i]-'0')
	}
	var n int64
	switch {
	case overflow && neg:
		n = math.MinInt64
	case overflow:
		n = math.MaxInt64
	case neg:
		n = -int64(v)
	default:
		n = int64(v)
	}
	return int(int32(n))
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}
