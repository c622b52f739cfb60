package encoder

// needsQuoting reports whether a scalar string value must be quoted when
// emitted into a scope whose active delimiter is delim.
//
// A value needs quotes when its bare form could be misread: as a keyword,
// as a number, as structure (colon, brackets, braces), as a delimiter, or
// when leading/trailing whitespace would be lost.
func needsQuoting(s string, delim byte) bool {
	if len(s) == 0 {
		return true
	}

	switch s {
	case "true", "false", "null":
		return true
	}

	if s[0] == ' ' || s[0] == '\t' || s[len(s)-1] == ' ' || s[len(s)-1] == '\t' {
		return true
	}

	if s[0] == '-' {
		return true
	}

	if isNumericLike(s) {
		return true
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ':', '"', '\\', '[', ']', '{', '}', '\n', '\r', '\t':
			return true
		}
		if c == delim {
			return true
		}
	}

	return false
}

// isNumericLike reports whether s could be confused with a number: an
// optional leading minus, then a digit, then only digits, '.', 'e', 'E',
// '+', or '-'. Leading-zero forms count as numeric-like so they get
// quoted rather than emitted as invalid literals.
func isNumericLike(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i >= len(s) || s[i] < '0' || s[i] > '9' {
		return false
	}
	for ; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			continue
		}
		switch c {
		case '.', 'e', 'E', '+', '-':
			continue
		}
		return false
	}
	return true
}

// keyNeedsQuoting reports whether a key must be quoted. Bare keys match
// [A-Za-z_][A-Za-z0-9_.]*.
func keyNeedsQuoting(key string) bool {
	if len(key) == 0 {
		return true
	}
	c := key[0]
	if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '_') {
		return true
	}
	for i := 1; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '.' {
			continue
		}
		return true
	}
	return false
}

// appendEscaped appends s to buf with TOON escaping applied (without the
// surrounding quotes). Only backslash, double quote, LF, CR, and HTAB are
// escaped; everything else passes through verbatim.
func appendEscaped(buf []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var esc byte
		switch c {
		case '"':
			esc = '"'
		case '\\':
			esc = '\\'
		case '\n':
			esc = 'n'
		case '\r':
			esc = 'r'
		case '\t':
			esc = 't'
		default:
			continue
		}
		buf = append(buf, s[start:i]...)
		buf = append(buf, '\\', esc)
		start = i + 1
	}
	buf = append(buf, s[start:]...)
	return buf
}

// appendString appends the encoded form of a string value, quoting it
// when the active delimiter requires.
func appendString(buf []byte, s string, delim byte) []byte {
	if !needsQuoting(s, delim) {
		return append(buf, s...)
	}
	buf = append(buf, '"')
	buf = appendEscaped(buf, s)
	return append(buf, '"')
}

// appendKey appends the encoded form of a key.
func appendKey(buf []byte, key string) []byte {
	if !keyNeedsQuoting(key) {
		return append(buf, key...)
	}
	buf = append(buf, '"')
	buf = appendEscaped(buf, key)
	return append(buf, '"')
}
