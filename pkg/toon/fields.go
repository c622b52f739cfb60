package toon

import (
	"reflect"
	"strings"
)

// fieldInfo contains information about a struct field for marshaling and
// unmarshaling.
type fieldInfo struct {
	name      string
	skip      bool
	omitEmpty bool
}

// getFieldInfo extracts field information from a struct field's `toon`
// tag.
func getFieldInfo(field reflect.StructField) fieldInfo {
	tag := field.Tag.Get("toon")

	// No tag - use lowercase field name
	if tag == "" {
		return fieldInfo{
			name: strings.ToLower(field.Name),
		}
	}

	parts := strings.Split(tag, ",")
	name := parts[0]

	// "-" skips the field entirely
	if name == "-" {
		return fieldInfo{skip: true}
	}

	if name == "" {
		name = field.Name
	}

	omitEmpty := false
	for i := 1; i < len(parts); i++ {
		if parts[i] == "omitempty" {
			omitEmpty = true
		}
	}

	return fieldInfo{
		name:      name,
		omitEmpty: omitEmpty,
	}
}

// isEmptyValue checks if a reflect.Value is considered empty for
// omitempty purposes.
func isEmptyValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return rv.IsNil()
	}
	return false
}
