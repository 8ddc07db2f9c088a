package xmlmap

import "strconv"

// coerce converts a leaf text span into its scalar value: a float64
// when the text is a plain decimal or exponential number, otherwise
// the text itself. The empty string stays an empty string, never zero.
func coerce(s string) any {
	if s == "" || !numeric(s) {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return f
}

// numeric reports whether s is [sign] digits [. digits] [e [sign]
// digits] with at least one digit in the mantissa. It is stricter than
// strconv.ParseFloat, which also accepts hex floats, "Inf", "NaN" and
// underscore separators; none of those count as numbers here.
func numeric(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	digits := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}
