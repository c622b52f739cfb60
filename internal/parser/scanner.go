package parser

import (
	"strings"

	"github.com/shapestone/shape-toon/pkg/core"
)

// Line is one significant input line with its indentation resolved.
type Line struct {
	Raw     string // full line text
	Content string // text with leading spaces stripped
	Indent  int    // leading-space count
	Depth   int    // Indent / indentSize
	Num     int    // one-indexed line number in the original input
}

// Scan splits input on LF, drops all-whitespace lines, and computes each
// remaining line's indent and depth. Indentation is ASCII spaces only; a
// tab is never an indent character, so content starts at the first
// non-space byte. In strict mode an indent that is not an exact multiple
// of indentSize is an IndentationError; otherwise depth floor-divides.
func Scan(input string, indentSize int, strict bool) ([]Line, error) {
	var lines []Line
	for i, raw := range strings.Split(input, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		indent := 0
		for indent < len(raw) && raw[indent] == ' ' {
			indent++
		}
		if strict && indent%indentSize != 0 {
			return nil, &core.IndentationError{
				Message: "indent is not a multiple of the indent size",
				Line:    i + 1,
			}
		}
		lines = append(lines, Line{
			Raw:     raw,
			Content: raw[indent:],
			Indent:  indent,
			Depth:   indent / indentSize,
			Num:     i + 1,
		})
	}
	return lines, nil
}

// Cursor is a forward iterator over scanned lines.
type Cursor struct {
	lines []Line
	pos   int
}

// NewCursor returns a cursor positioned at the first line.
func NewCursor(lines []Line) *Cursor {
	return &Cursor{lines: lines}
}

// Peek returns the current line without advancing, or nil when exhausted.
func (c *Cursor) Peek() *Line {
	if c.pos >= len(c.lines) {
		return nil
	}
	return &c.lines[c.pos]
}

// Advance returns the current line and moves past it.
func (c *Cursor) Advance() *Line {
	l := c.Peek()
	if l != nil {
		c.pos++
	}
	return l
}

// PeekAhead returns the line k positions past the current one without
// advancing. PeekAhead(0) is Peek.
func (c *Cursor) PeekAhead(k int) *Line {
	if c.pos+k >= len(c.lines) {
		return nil
	}
	return &c.lines[c.pos+k]
}
