package token

// number scans a numeric token at the start of d, excluding any leading
// '-'. It returns the number of bytes consumed and whether the token is a
// float. The float form requires an integer part, a '.', and at least one
// fractional digit; an exponent is a lowercase 'e' followed by an
// optionally '-'-signed digit run (no 'E', no explicit '+').
func number(d []byte) (int, bool) {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false
	}
	f := fract(d[digits:])
	if f == 0 {
		return digits, false
	}
	e := exp(d[digits+f:])
	return digits + f + e, true
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// '.' must be followed by 1 or more digits
		return 0
	}
	return 1 + n
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	if d[0] != 'e' {
		return 0
	}
	i := 1
	if d[1] == '-' {
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
