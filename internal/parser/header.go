package parser

import (
	"strings"

	"github.com/shapestone/shape-toon/pkg/core"
)

// header is a parsed array header line.
type header struct {
	key    string   // "" for keyless headers
	n      int      // declared length
	delim  byte     // scope delimiter; comma unless the bracket says otherwise
	marker bool     // '#' length marker present
	fields []string // tabular field names; nil when absent
	inline string   // trimmed text after the colon; "" when absent
	line   int
}

// tryParseHeader attempts to read content as an array header.
//
// The returned bool reports whether the line is header-shaped at all (an
// unquoted '[' appears before any unquoted ':'). A header-shaped line
// that fails the grammar returns an InvalidHeaderError rather than
// falling back, so malformed headers never silently decode as key-value
// lines.
func tryParseHeader(content string, lineNum int) (header, bool, error) {
	h := header{delim: ',', line: lineNum}

	rest := content
	if rest != "" && rest[0] == '"' {
		key, after, err := parseQuoted(rest, 0)
		if err != nil {
			return h, false, nil
		}
		if after == "" || after[0] != '[' {
			return h, false, nil
		}
		h.key = key
		rest = after
	} else {
		bracket := indexUnquoted(rest, '[')
		if bracket < 0 {
			return h, false, nil
		}
		if colon := indexUnquoted(rest, ':'); colon >= 0 && colon < bracket {
			return h, false, nil
		}
		h.key = strings.TrimSpace(rest[:bracket])
		rest = rest[bracket:]
	}

	// rest starts at '['.
	i := 1
	if i < len(rest) && rest[i] == '#' {
		h.marker = true
		i++
	}
	start := i
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		h.n = h.n*10 + int(rest[i]-'0')
		i++
	}
	if i == start {
		return h, false, &core.InvalidHeaderError{Message: "missing length", Line: lineNum}
	}
	if i < len(rest) && (rest[i] == '\t' || rest[i] == '|') {
		h.delim = rest[i]
		i++
	}
	if i >= len(rest) || rest[i] != ']' {
		return h, false, &core.InvalidHeaderError{Message: "missing ']'", Line: lineNum}
	}
	i++

	if i < len(rest) && rest[i] == '{' {
		end := strings.IndexByte(rest[i:], '}')
		if end < 0 {
			return h, false, &core.InvalidHeaderError{Message: "missing '}'", Line: lineNum}
		}
		fields, err := parseFieldList(rest[i+1:i+end], h.delim, lineNum)
		if err != nil {
			return h, false, err
		}
		h.fields = fields
		i += end + 1
	}

	if i >= len(rest) || rest[i] != ':' {
		return h, false, &core.InvalidHeaderError{Message: "missing ':'", Line: lineNum}
	}
	h.inline = strings.TrimSpace(rest[i+1:])
	if h.inline != "" && h.fields != nil {
		return h, false, &core.InvalidHeaderError{
			Message: "inline values after a field list",
			Line:    lineNum,
		}
	}
	return h, true, nil
}

// parseFieldList splits a tabular field list on the scope delimiter and
// unquotes each name.
func parseFieldList(list string, delim byte, lineNum int) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, &core.InvalidHeaderError{Message: "empty field list", Line: lineNum}
	}
	parts := splitDelimited(list, delim)
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, &core.InvalidHeaderError{Message: "empty field name", Line: lineNum}
		}
		if part[0] == '"' {
			name, after, err := parseQuoted(part, 0)
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(after) != "" {
				return nil, &core.InvalidHeaderError{
					Message: "unexpected text after quoted field name",
					Line:    lineNum,
				}
			}
			fields = append(fields, name)
			continue
		}
		fields = append(fields, part)
	}
	return fields, nil
}
