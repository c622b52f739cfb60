package encoder

import (
	"strconv"

	"github.com/shapestone/shape-toon/pkg/core"
)

// arrayShape is the surface form chosen for one array.
type arrayShape int

const (
	shapeEmpty arrayShape = iota
	shapeInline
	shapeNestedPrimitive // array of all-primitive arrays
	shapeTabular
	shapeList
)

// detectShape picks the surface form for an array. Shapes are checked in
// declaration order and the first match wins; the decision looks only at
// the array's direct children.
func detectShape(items []core.Value) arrayShape {
	if len(items) == 0 {
		return shapeEmpty
	}
	if allPrimitive(items) {
		return shapeInline
	}
	if allPrimitiveArrays(items) {
		return shapeNestedPrimitive
	}
	if _, ok := tabularFields(items); ok {
		return shapeTabular
	}
	return shapeList
}

func allPrimitive(items []core.Value) bool {
	for _, it := range items {
		if !it.IsPrimitive() {
			return false
		}
	}
	return true
}

func allPrimitiveArrays(items []core.Value) bool {
	for _, it := range items {
		if it.Kind() != core.KindArray {
			return false
		}
		if !allPrimitive(it.Items()) {
			return false
		}
	}
	return true
}

// tabularFields reports whether every element is an object over the same
// key set with only primitive values, returning the column order (the
// first element's key order). Objects with no fields never qualify: an
// empty field list has no header form, so such arrays fall back to the
// expanded list.
func tabularFields(items []core.Value) ([]string, bool) {
	first := items[0]
	if first.Kind() != core.KindObject || len(first.Fields()) == 0 {
		return nil, false
	}
	fields := make([]string, 0, len(first.Fields()))
	seen := make(map[string]struct{}, len(first.Fields()))
	for _, f := range first.Fields() {
		if _, dup := seen[f.Key]; dup {
			// Duplicate keys cannot map onto columns.
			return nil, false
		}
		seen[f.Key] = struct{}{}
		fields = append(fields, f.Key)
	}

	for _, it := range items {
		if it.Kind() != core.KindObject {
			return nil, false
		}
		fs := it.Fields()
		if len(fs) != len(fields) {
			return nil, false
		}
		rowSeen := make(map[string]struct{}, len(fs))
		for _, f := range fs {
			if !f.Value.IsPrimitive() {
				return nil, false
			}
			if _, ok := seen[f.Key]; !ok {
				return nil, false
			}
			if _, dup := rowSeen[f.Key]; dup {
				return nil, false
			}
			rowSeen[f.Key] = struct{}{}
		}
	}
	return fields, true
}

// appendHeader appends an array header: key?, '[', optional '#' marker,
// length, the delimiter symbol for tab and pipe scopes, ']', an optional
// field list for tabular arrays, and the closing ':'.
func appendHeader(buf []byte, key string, n int, opts Options, fields []string) []byte {
	if key != "" {
		buf = appendKey(buf, key)
	}
	buf = append(buf, '[')
	if opts.LengthMarker {
		buf = append(buf, '#')
	}
	buf = strconv.AppendInt(buf, int64(n), 10)
	switch opts.Delimiter {
	case '\t', '|':
		buf = append(buf, opts.Delimiter)
	}
	buf = append(buf, ']')
	if fields != nil {
		buf = append(buf, '{')
		for i, f := range fields {
			if i > 0 {
				buf = append(buf, opts.Delimiter)
			}
			// Field names follow key quoting; a bare key can never
			// contain a delimiter, so the list always splits cleanly.
			buf = appendKey(buf, f)
		}
		buf = append(buf, '}')
	}
	return append(buf, ':')
}
