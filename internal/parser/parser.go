// Package parser implements the TOON decoder: a cursor-driven recursive
// descent over scanned lines, with no backtracking beyond one-line
// lookahead.
//
// The decoder reconstructs values with the format's deliberate asymmetry:
// unquoted scalars decode as strings (never numbers), while unquoted
// null/true/false decode as Null and Bool. Strict mode additionally
// enforces declared array lengths, tabular row widths, and exact indent
// multiples.
package parser

import (
	"fmt"

	"github.com/shapestone/shape-toon/pkg/core"
)

// Options carries the resolved decoding configuration.
type Options struct {
	IndentSize int
	Strict     bool
}

// Decode parses a complete TOON document.
func Decode(input string, opts Options) (core.Value, error) {
	if opts.IndentSize <= 0 {
		opts.IndentSize = 2
	}

	lines, err := Scan(input, opts.IndentSize, opts.Strict)
	if err != nil {
		return core.Value{}, err
	}
	if len(lines) == 0 {
		return core.Value{}, core.ErrEmptyInput
	}

	d := &decoder{cursor: NewCursor(lines), opts: opts}

	v, err := d.decodeRoot(lines)
	if err != nil {
		return core.Value{}, err
	}

	if stray := d.cursor.Peek(); stray != nil {
		return core.Value{}, &core.ParseError{
			Message: "unexpected content after document",
			Line:    stray.Num,
		}
	}
	return v, nil
}

type decoder struct {
	cursor *Cursor
	opts   Options
}

// decodeRoot dispatches on the document's root form: a keyless array
// header starts a root array, a single line with no unquoted colon is a
// root primitive, and everything else is a root object.
func (d *decoder) decodeRoot(lines []Line) (core.Value, error) {
	first := lines[0]

	h, ok, err := tryParseHeader(first.Content, first.Num)
	if err != nil {
		return core.Value{}, err
	}
	if ok && h.key == "" {
		if first.Depth != 0 {
			return core.Value{}, &core.StructureError{
				Message: "root array header must not be indented",
				Line:    first.Num,
			}
		}
		d.cursor.Advance()
		return d.decodeArrayBody(h, 1)
	}

	if len(lines) == 1 && !ok && indexUnquoted(first.Content, ':') < 0 {
		d.cursor.Advance()
		return parsePrimitive(first.Content, first.Num)
	}

	return d.decodeObject(0)
}

// decodeObject consumes successive lines at exactly the given depth and
// builds an object from them. Duplicate keys are kept in order. The
// caller is left positioned at the first line above this depth.
func (d *decoder) decodeObject(depth int) (core.Value, error) {
	fields := []core.Field{}
	for {
		line := d.cursor.Peek()
		if line == nil || line.Depth < depth {
			return core.NewObject(fields...), nil
		}
		if line.Depth > depth {
			return core.Value{}, &core.StructureError{
				Message: "unexpected indent",
				Line:    line.Num,
			}
		}

		f, err := d.decodeField(line, depth)
		if err != nil {
			return core.Value{}, err
		}
		fields = append(fields, f)
	}
}

// decodeField consumes one object entry: a keyed array header, a bare
// `key:` introducing a nested object, or a `key: value` pair.
func (d *decoder) decodeField(line *Line, depth int) (core.Field, error) {
	h, ok, err := tryParseHeader(line.Content, line.Num)
	if err != nil {
		return core.Field{}, err
	}
	if ok {
		if h.key == "" {
			return core.Field{}, &core.InvalidHeaderError{
				Message: "array header inside an object requires a key",
				Line:    line.Num,
			}
		}
		d.cursor.Advance()
		v, err := d.decodeArrayBody(h, depth+1)
		if err != nil {
			return core.Field{}, err
		}
		return core.NewField(h.key, v), nil
	}

	key, rest, err := parseKey(line.Content, line.Num)
	if err != nil {
		return core.Field{}, err
	}
	d.cursor.Advance()

	if rest == "" {
		next := d.cursor.Peek()
		if next == nil || next.Depth <= depth {
			return core.NewField(key, core.NewObject()), nil
		}
		v, err := d.decodeObject(depth + 1)
		if err != nil {
			return core.Field{}, err
		}
		return core.NewField(key, v), nil
	}

	v, err := parsePrimitive(rest, line.Num)
	if err != nil {
		return core.Field{}, err
	}
	return core.NewField(key, v), nil
}

// decodeArrayBody reconstructs an array from its parsed header. bodyDepth
// is where the array's rows or list items live (one past the header's
// depth, or two past the hyphen for headers fused onto a list item line).
func (d *decoder) decodeArrayBody(h header, bodyDepth int) (core.Value, error) {
	if h.inline != "" {
		return d.decodeInline(h)
	}
	if h.fields != nil {
		return d.decodeTabular(h, bodyDepth)
	}
	return d.decodeList(h, bodyDepth)
}

// decodeInline parses the delimited values following the header colon.
func (d *decoder) decodeInline(h header) (core.Value, error) {
	tokens := splitDelimited(h.inline, h.delim)
	if d.opts.Strict && len(tokens) != h.n {
		if len(tokens) == 1 && h.n > 1 && hasForeignDelimiter(h.inline, h.delim) {
			return core.Value{}, &core.DelimiterMismatchError{
				Expected: delimName(h.delim),
				Line:     h.line,
			}
		}
		return core.Value{}, &core.CountMismatchError{
			Expected: h.n,
			Actual:   len(tokens),
			Context:  "inline array",
		}
	}

	items := make([]core.Value, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parsePrimitive(tok, h.line)
		if err != nil {
			return core.Value{}, err
		}
		items = append(items, v)
	}
	return core.NewArray(items...), nil
}

// decodeTabular collects delimited rows at bodyDepth and zips each with
// the header's field names. A row can never be key-shaped or look like a
// list item (such cells would have been quoted), so the first line that
// does ends the body.
func (d *decoder) decodeTabular(h header, bodyDepth int) (core.Value, error) {
	items := make([]core.Value, 0, h.n)
	for {
		line := d.cursor.Peek()
		if line == nil || line.Depth < bodyDepth {
			break
		}
		if line.Depth > bodyDepth {
			return core.Value{}, &core.StructureError{
				Message: "unexpected indent in tabular array body",
				Line:    line.Num,
			}
		}
		// Rows never look like list items or key lines: a cell whose text
		// starts with a hyphen or contains a colon is quoted on encode.
		// A bare leading '-' still occurs in negative numbers, so only a
		// hyphen-space (or lone hyphen) ends the body.
		if line.Content == "-" || hasPrefixDash(line.Content) || indexUnquoted(line.Content, ':') >= 0 {
			break
		}
		d.cursor.Advance()

		row, err := d.decodeRow(line, h)
		if err != nil {
			return core.Value{}, err
		}
		items = append(items, row)
	}

	if d.opts.Strict && len(items) != h.n {
		return core.Value{}, &core.CountMismatchError{
			Expected: h.n,
			Actual:   len(items),
			Context:  "tabular rows",
		}
	}
	return core.NewArray(items...), nil
}

func (d *decoder) decodeRow(line *Line, h header) (core.Value, error) {
	cells := splitDelimited(line.Content, h.delim)
	if d.opts.Strict && len(cells) != len(h.fields) {
		if len(cells) == 1 && len(h.fields) > 1 && hasForeignDelimiter(line.Content, h.delim) {
			return core.Value{}, &core.DelimiterMismatchError{
				Expected: delimName(h.delim),
				Line:     line.Num,
			}
		}
		return core.Value{}, &core.ValidationError{
			Message: fmt.Sprintf("row at line %d has %d values, header declares %d fields",
				line.Num, len(cells), len(h.fields)),
		}
	}

	n := len(cells)
	if n > len(h.fields) {
		n = len(h.fields)
	}
	fields := make([]core.Field, 0, n)
	for i := 0; i < n; i++ {
		v, err := parsePrimitive(cells[i], line.Num)
		if err != nil {
			return core.Value{}, err
		}
		fields = append(fields, core.NewField(h.fields[i], v))
	}
	return core.NewObject(fields...), nil
}

// decodeList collects `- ` items at bodyDepth.
func (d *decoder) decodeList(h header, bodyDepth int) (core.Value, error) {
	items := make([]core.Value, 0, h.n)
	for {
		line := d.cursor.Peek()
		if line == nil || line.Depth < bodyDepth {
			break
		}
		if line.Depth > bodyDepth {
			return core.Value{}, &core.StructureError{
				Message: "unexpected indent in list array body",
				Line:    line.Num,
			}
		}
		if line.Content[0] != '-' {
			break
		}
		if line.Content != "-" && !hasPrefixDash(line.Content) {
			return core.Value{}, &core.ParseError{
				Message: "list item hyphen must be followed by a space",
				Line:    line.Num,
			}
		}
		d.cursor.Advance()

		item, err := d.decodeListItem(line, bodyDepth)
		if err != nil {
			return core.Value{}, err
		}
		items = append(items, item)
	}

	if d.opts.Strict && len(items) != h.n {
		return core.Value{}, &core.CountMismatchError{
			Expected: h.n,
			Actual:   len(items),
			Context:  "list items",
		}
	}
	return core.NewArray(items...), nil
}

func hasPrefixDash(content string) bool {
	return len(content) >= 2 && content[0] == '-' && content[1] == ' '
}

// decodeListItem parses the content after a list item's hyphen. itemDepth
// is the hyphen line's depth.
//
// An array header starts a nested array (body two levels below the
// hyphen, the same level a nested first-field object body uses). An
// unquoted colon starts an object whose first field rides the hyphen
// line, with sibling fields one level down and a nested first-field
// object body two levels down. A bare hyphen introduces a complex array
// one level down. Anything else is a primitive.
func (d *decoder) decodeListItem(line *Line, itemDepth int) (core.Value, error) {
	content := ""
	if line.Content != "-" {
		content = line.Content[2:]
	}

	if content == "" {
		return d.decodeBareItem(line, itemDepth)
	}

	h, ok, err := tryParseHeader(content, line.Num)
	if err != nil {
		return core.Value{}, err
	}
	if ok {
		v, err := d.decodeArrayBody(h, itemDepth+2)
		if err != nil {
			return core.Value{}, err
		}
		if h.key == "" {
			return v, nil
		}
		return d.decodeItemFields(core.NewField(h.key, v), itemDepth)
	}

	if indexUnquoted(content, ':') >= 0 {
		key, rest, err := parseKey(content, line.Num)
		if err != nil {
			return core.Value{}, err
		}

		var first core.Field
		if rest == "" {
			next := d.cursor.Peek()
			if next != nil && next.Depth == itemDepth+2 {
				nested, err := d.decodeObject(itemDepth + 2)
				if err != nil {
					return core.Value{}, err
				}
				first = core.NewField(key, nested)
			} else {
				first = core.NewField(key, core.NewObject())
			}
		} else {
			v, err := parsePrimitive(rest, line.Num)
			if err != nil {
				return core.Value{}, err
			}
			first = core.NewField(key, v)
		}
		return d.decodeItemFields(first, itemDepth)
	}

	return parsePrimitive(content, line.Num)
}

// decodeBareItem handles a lone hyphen: a complex array whose header sits
// one level below, or an empty object when nothing deeper follows.
func (d *decoder) decodeBareItem(line *Line, itemDepth int) (core.Value, error) {
	next := d.cursor.Peek()
	if next == nil || next.Depth <= itemDepth {
		return core.NewObject(), nil
	}
	if next.Depth != itemDepth+1 {
		return core.Value{}, &core.StructureError{
			Message: "unexpected indent after list item hyphen",
			Line:    next.Num,
		}
	}

	h, ok, err := tryParseHeader(next.Content, next.Num)
	if err != nil {
		return core.Value{}, err
	}
	if ok && h.key == "" {
		d.cursor.Advance()
		return d.decodeArrayBody(h, itemDepth+2)
	}
	return d.decodeObject(itemDepth + 1)
}

// decodeItemFields appends the item object's sibling fields, which live
// one level below the hyphen line.
func (d *decoder) decodeItemFields(first core.Field, itemDepth int) (core.Value, error) {
	fields := []core.Field{first}
	for {
		line := d.cursor.Peek()
		if line == nil || line.Depth != itemDepth+1 {
			break
		}
		f, err := d.decodeField(line, itemDepth+1)
		if err != nil {
			return core.Value{}, err
		}
		fields = append(fields, f)
	}
	return core.NewObject(fields...), nil
}

// hasForeignDelimiter reports whether content contains one of the other
// known delimiters outside quotes, used to turn an otherwise opaque count
// failure into a delimiter mismatch diagnosis.
func hasForeignDelimiter(content string, expected byte) bool {
	for _, d := range []byte{',', '\t', '|'} {
		if d == expected {
			continue
		}
		if indexUnquoted(content, d) >= 0 {
			return true
		}
	}
	return false
}

func delimName(d byte) string {
	switch d {
	case '\t':
		return "\t"
	case '|':
		return "|"
	default:
		return ","
	}
}
