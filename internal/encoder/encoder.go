// Package encoder emits the textual TOON form of a value tree.
//
// Encoding walks the tree once. Objects emit one `key: value` line per
// field, arrays pick one of five surface forms (empty, inline, array of
// primitive arrays, tabular, expanded list), and scalars are rendered
// with quoting decided against the scope's active delimiter. The encoder
// cannot fail for well-formed values; an internal shape violation is a
// programmer error and panics.
package encoder

import (
	"fmt"

	"github.com/shapestone/shape-toon/pkg/core"
)

// Options carries the resolved encoding configuration.
type Options struct {
	IndentSize   int
	Delimiter    byte // ',', '\t', or '|'
	LengthMarker bool
}

// Encode renders a value tree as TOON text.
func Encode(v core.Value, opts Options) string {
	if opts.IndentSize <= 0 {
		opts.IndentSize = 2
	}
	switch opts.Delimiter {
	case ',', '\t', '|':
	default:
		opts.Delimiter = ','
	}

	e := &encoder{opts: opts, w: newLineWriter(opts.IndentSize)}

	switch v.Kind() {
	case core.KindObject:
		e.encodeFields(v.Fields(), 0)
	case core.KindArray:
		e.encodeArray("", v, 0)
	default:
		// Root primitive: a single line with no key.
		return string(e.appendScalar(nil, v))
	}
	return e.w.finish()
}

type encoder struct {
	opts Options
	w    *lineWriter
}

// appendScalar renders one primitive value into buf.
func (e *encoder) appendScalar(buf []byte, v core.Value) []byte {
	switch v.Kind() {
	case core.KindNull:
		return append(buf, "null"...)
	case core.KindBool:
		if v.Bool() {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case core.KindNumber:
		return append(buf, core.FormatNumber(v.Number())...)
	case core.KindString:
		return appendString(buf, v.String(), e.opts.Delimiter)
	default:
		panic(fmt.Sprintf("toon: internal error: %s value in primitive position", v.Kind()))
	}
}

// encodeFields emits an object's fields at the given depth.
func (e *encoder) encodeFields(fields []core.Field, depth int) {
	for _, f := range fields {
		e.encodeField(f, depth)
	}
}

func (e *encoder) encodeField(f core.Field, depth int) {
	switch f.Value.Kind() {
	case core.KindObject:
		var buf []byte
		buf = appendKey(buf, f.Key)
		buf = append(buf, ':')
		e.w.pushBytes(depth, buf)
		e.encodeFields(f.Value.Fields(), depth+1)
	case core.KindArray:
		e.encodeArray(f.Key, f.Value, depth)
	default:
		var buf []byte
		buf = appendKey(buf, f.Key)
		buf = append(buf, ':', ' ')
		buf = e.appendScalar(buf, f.Value)
		e.w.pushBytes(depth, buf)
	}
}

// encodeArray emits an array (with an optional key) at the given depth,
// dispatching on the detected shape.
func (e *encoder) encodeArray(key string, v core.Value, depth int) {
	items := v.Items()
	switch detectShape(items) {
	case shapeEmpty:
		e.w.pushBytes(depth, appendHeader(nil, key, 0, e.opts, nil))

	case shapeInline:
		e.w.pushBytes(depth, e.appendInlineArray(nil, key, items))

	case shapeNestedPrimitive:
		e.w.pushBytes(depth, appendHeader(nil, key, len(items), e.opts, nil))
		for _, inner := range items {
			buf := []byte{'-', ' '}
			buf = e.appendInlineArray(buf, "", inner.Items())
			e.w.pushBytes(depth+1, buf)
		}

	case shapeTabular:
		fields, _ := tabularFields(items)
		e.w.pushBytes(depth, appendHeader(nil, key, len(items), e.opts, fields))
		for _, row := range items {
			var buf []byte
			for i, name := range fields {
				if i > 0 {
					buf = append(buf, e.opts.Delimiter)
				}
				cell, _ := row.Get(name)
				buf = e.appendScalar(buf, cell)
			}
			e.w.pushBytes(depth+1, buf)
		}

	case shapeList:
		e.w.pushBytes(depth, appendHeader(nil, key, len(items), e.opts, nil))
		for _, item := range items {
			e.encodeListItem(item, depth+1)
		}
	}
}

// appendInlineArray renders `key[N]: v1<delim>v2…` into buf. An empty
// array renders as the bare header `key[0]:`.
func (e *encoder) appendInlineArray(buf []byte, key string, items []core.Value) []byte {
	buf = appendHeader(buf, key, len(items), e.opts, nil)
	if len(items) == 0 {
		return buf
	}
	buf = append(buf, ' ')
	for i, it := range items {
		if i > 0 {
			buf = append(buf, e.opts.Delimiter)
		}
		buf = e.appendScalar(buf, it)
	}
	return buf
}

// encodeListItem emits one expanded-list element at the given depth.
//
// Primitives ride the hyphen line. All-primitive arrays inline on the
// hyphen. Other arrays get a bare hyphen with the array header and body
// one level deeper. Objects put their first field on the hyphen line and
// the remaining fields one level deeper.
func (e *encoder) encodeListItem(item core.Value, depth int) {
	switch item.Kind() {
	case core.KindArray:
		if allPrimitive(item.Items()) {
			buf := []byte{'-', ' '}
			buf = e.appendInlineArray(buf, "", item.Items())
			e.w.pushBytes(depth, buf)
			return
		}
		e.w.push(depth, "-")
		e.encodeArray("", item, depth+1)

	case core.KindObject:
		fields := item.Fields()
		if len(fields) == 0 {
			e.w.push(depth, "-")
			return
		}
		e.encodeFirstField(fields[0], depth)
		e.encodeFields(fields[1:], depth+1)

	default:
		buf := []byte{'-', ' '}
		buf = e.appendScalar(buf, item)
		e.w.pushBytes(depth, buf)
	}
}

// encodeFirstField emits an object item's first field on the hyphen line.
// A nested object value keeps its body two levels below the hyphen so it
// cannot collide with the item's sibling fields.
func (e *encoder) encodeFirstField(f core.Field, depth int) {
	switch f.Value.Kind() {
	case core.KindObject:
		buf := []byte{'-', ' '}
		buf = appendKey(buf, f.Key)
		buf = append(buf, ':')
		e.w.pushBytes(depth, buf)
		e.encodeFields(f.Value.Fields(), depth+2)

	case core.KindArray:
		e.encodeFirstFieldArray(f.Key, f.Value, depth)

	default:
		buf := []byte{'-', ' '}
		buf = appendKey(buf, f.Key)
		buf = append(buf, ':', ' ')
		buf = e.appendScalar(buf, f.Value)
		e.w.pushBytes(depth, buf)
	}
}

// encodeFirstFieldArray is encodeArray with the header fused onto the
// hyphen line; any body lands two levels below the hyphen.
func (e *encoder) encodeFirstFieldArray(key string, v core.Value, depth int) {
	items := v.Items()
	hyphen := []byte{'-', ' '}

	switch detectShape(items) {
	case shapeEmpty:
		e.w.pushBytes(depth, appendHeader(hyphen, key, 0, e.opts, nil))

	case shapeInline:
		e.w.pushBytes(depth, e.appendInlineArray(hyphen, key, items))

	case shapeNestedPrimitive:
		e.w.pushBytes(depth, appendHeader(hyphen, key, len(items), e.opts, nil))
		for _, inner := range items {
			buf := []byte{'-', ' '}
			buf = e.appendInlineArray(buf, "", inner.Items())
			e.w.pushBytes(depth+2, buf)
		}

	case shapeTabular:
		fields, _ := tabularFields(items)
		e.w.pushBytes(depth, appendHeader(hyphen, key, len(items), e.opts, fields))
		for _, row := range items {
			var buf []byte
			for i, name := range fields {
				if i > 0 {
					buf = append(buf, e.opts.Delimiter)
				}
				cell, _ := row.Get(name)
				buf = e.appendScalar(buf, cell)
			}
			e.w.pushBytes(depth+2, buf)
		}

	case shapeList:
		e.w.pushBytes(depth, appendHeader(hyphen, key, len(items), e.opts, nil))
		for _, item := range items {
			e.encodeListItem(item, depth+2)
		}
	}
}
