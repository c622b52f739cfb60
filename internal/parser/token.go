package parser

import (
	"strconv"
	"strings"

	"github.com/shapestone/shape-toon/pkg/core"
)

// parsePrimitive turns one scalar token into a value.
//
// Unquoted null/true/false become Null/Bool. A quoted token becomes the
// unescaped String. Every other unquoted token becomes a String; when it
// is numeric-looking it must still be a well-formed number (no leading
// zero, parseable as a float), because the encoder quotes anything that
// merely resembles one.
func parsePrimitive(tok string, line int) (core.Value, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return core.Value{}, &core.ParseError{Message: "empty value", Line: line}
	}

	switch tok {
	case "null":
		return core.NewNull(), nil
	case "true":
		return core.NewBool(true), nil
	case "false":
		return core.NewBool(false), nil
	}

	if tok[0] == '"' {
		s, rest, err := parseQuoted(tok, 0)
		if err != nil {
			return core.Value{}, err
		}
		if strings.TrimSpace(rest) != "" {
			return core.Value{}, &core.ParseError{
				Message: "unexpected text after closing quote",
				Line:    line,
			}
		}
		return core.NewString(s), nil
	}

	if looksNumeric(tok) {
		if err := validateNumeric(tok, line); err != nil {
			return core.Value{}, err
		}
	}
	return core.NewString(tok), nil
}

// looksNumeric mirrors the encoder's numeric-like test: optional minus,
// then a digit, then only digits and . e E + -.
func looksNumeric(s string) bool {
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

// validateNumeric rejects malformed numeric literals: a leading zero
// followed by a digit, or anything strconv cannot parse as a float.
// Valid literals still decode as strings.
func validateNumeric(tok string, line int) error {
	digits := tok
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) >= 2 && digits[0] == '0' && digits[1] >= '0' && digits[1] <= '9' {
		return &core.ParseError{
			Message: "invalid number literal " + strconv.Quote(tok) + ": leading zero",
			Line:    line,
		}
	}
	if _, err := strconv.ParseFloat(tok, 64); err != nil {
		return &core.ParseError{
			Message: "invalid number literal " + strconv.Quote(tok),
			Line:    line,
		}
	}
	return nil
}

// parseQuoted reads a quoted string starting at s[at] (which must be '"')
// and returns the unescaped contents plus the remainder after the closing
// quote. Recognized escapes: \\ \" \n \r \t.
func parseQuoted(s string, at int) (string, string, error) {
	var b strings.Builder
	i := at + 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			return b.String(), s[i+1:], nil
		case '\\':
			if i+1 >= len(s) {
				return "", "", &core.UnterminatedStringError{Position: at}
			}
			esc := s[i+1]
			switch esc {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				return "", "", &core.InvalidEscapeError{
					Sequence: s[i : i+2],
					Position: i,
				}
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", "", &core.UnterminatedStringError{Position: at}
}

// splitDelimited splits s on the delimiter, honoring quoted sections: a
// double quote toggles quoted mode, and a backslash inside quotes
// consumes the following byte verbatim.
func splitDelimited(s string, delim byte) []string {
	var out []string
	var inQuotes bool
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && inQuotes && i+1 < len(s):
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == delim && !inQuotes:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

// parseKey splits a `key: value` line into its key and the trimmed
// remainder after the colon. A leading double quote starts a quoted key;
// otherwise the key is everything up to the first unquoted colon.
func parseKey(content string, lineNum int) (string, string, error) {
	if content != "" && content[0] == '"' {
		key, rest, err := parseQuoted(content, 0)
		if err != nil {
			return "", "", err
		}
		rest = strings.TrimLeft(rest, " ")
		if rest == "" || rest[0] != ':' {
			return "", "", &core.MissingColonError{Line: lineNum}
		}
		return key, strings.TrimSpace(rest[1:]), nil
	}

	idx := indexUnquoted(content, ':')
	if idx < 0 {
		return "", "", &core.MissingColonError{Line: lineNum}
	}
	key := strings.TrimSpace(content[:idx])
	if key == "" {
		return "", "", &core.ParseError{Message: "empty key", Line: lineNum}
	}
	return key, strings.TrimSpace(content[idx+1:]), nil
}

// indexUnquoted returns the index of the first occurrence of target
// outside quoted sections, or -1.
func indexUnquoted(s string, target byte) int {
	var inQuotes bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && inQuotes && i+1 < len(s):
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == target && !inQuotes:
			return i
		}
	}
	return -1
}
