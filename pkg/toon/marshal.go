package toon

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/shapestone/shape-toon/pkg/core"
)

// Marshal returns the TOON encoding of v.
//
// Marshal traverses the value v recursively, building a value tree, then
// encodes it. Array shaping (inline, tabular, expanded list) is decided
// per array from the finished tree, which is why marshaling cannot
// stream.
//
// If an encountered value implements the Marshaler interface, Marshal
// calls its MarshalTOON method and marshals the result in its place.
//
// Otherwise, Marshal uses the following type-dependent default
// encodings:
//
// Boolean values encode as TOON booleans (true/false). Integer and
// floating point values encode as TOON numbers. String values encode as
// TOON strings, quoted when their bare form would be ambiguous.
//
// Struct values encode as TOON objects in field declaration order. The
// encoding of each struct field can be customized by the format string
// stored under the "toon" key in the struct field's tag: the field name,
// optionally followed by ",omitempty". A tag of "-" omits the field.
//
// Map values encode as TOON objects; the key type must be a string and
// keys are sorted for deterministic output. Slice and array values
// encode as TOON arrays, except that a nil slice encodes as null.
// Pointer and interface values encode as the value pointed to, or null
// when nil.
//
// Channel, complex, and function values cannot be encoded. Attempting to
// encode such a value causes Marshal to return an error.
//
// TOON cannot represent cyclic data structures and Marshal does not
// handle them; passing cyclic structures will not return.
//
// Example:
//
//	type User struct {
//	    Name string `toon:"name"`
//	    Age  int    `toon:"age"`
//	}
//	data, err := toon.Marshal([]User{{"Alice", 30}, {"Bob", 25}})
//	// data is []byte("[2]{name,age}:\n  Alice,30\n  Bob,25")
func Marshal(v interface{}, opts ...Option) ([]byte, error) {
	options := DefaultEncodeOptions()
	for _, opt := range opts {
		opt(&options)
	}

	val, err := marshalValue(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return []byte(EncodeWithOptions(val, options)), nil
}

// Marshaler is the interface implemented by types that can substitute a
// marshalable value for themselves. The returned value is marshaled in
// place of the receiver.
type Marshaler interface {
	MarshalTOON() (interface{}, error)
}

var marshalerType = reflect.TypeOf((*Marshaler)(nil)).Elem()

// marshalValue converts a reflect.Value into a value tree node.
func marshalValue(rv reflect.Value) (core.Value, error) {
	if !rv.IsValid() {
		return core.NewNull(), nil
	}

	if rv.Kind() == reflect.Interface && rv.IsNil() {
		return core.NewNull(), nil
	}

	if rv.Type().Implements(marshalerType) {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return core.NewNull(), nil
		}
		sub, err := rv.Interface().(Marshaler).MarshalTOON()
		if err != nil {
			return core.Value{}, err
		}
		return marshalValue(reflect.ValueOf(sub))
	}
	if rv.Kind() != reflect.Ptr && rv.CanAddr() && reflect.PointerTo(rv.Type()).Implements(marshalerType) {
		sub, err := rv.Addr().Interface().(Marshaler).MarshalTOON()
		if err != nil {
			return core.Value{}, err
		}
		return marshalValue(reflect.ValueOf(sub))
	}

	switch rv.Kind() {
	case reflect.Interface:
		return marshalValue(rv.Elem())

	case reflect.Ptr:
		if rv.IsNil() {
			return core.NewNull(), nil
		}
		return marshalValue(rv.Elem())

	case reflect.String:
		return core.NewString(rv.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return core.NewNumber(float64(rv.Int())), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return core.NewNumber(float64(rv.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return core.NewNumber(rv.Float()), nil

	case reflect.Bool:
		return core.NewBool(rv.Bool()), nil

	case reflect.Struct:
		return marshalStruct(rv)

	case reflect.Map:
		return marshalMap(rv)

	case reflect.Slice, reflect.Array:
		return marshalSlice(rv)

	default:
		return core.Value{}, fmt.Errorf("toon: unsupported type %s", rv.Type())
	}
}

// marshalStruct converts a struct to an object in field declaration
// order.
func marshalStruct(rv reflect.Value) (core.Value, error) {
	structType := rv.Type()
	fields := make([]core.Field, 0, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		// Skip unexported fields
		if field.PkgPath != "" {
			continue
		}

		info := getFieldInfo(field)
		if info.skip {
			continue
		}

		fieldVal := rv.Field(i)
		if info.omitEmpty && isEmptyValue(fieldVal) {
			continue
		}

		val, err := marshalValue(fieldVal)
		if err != nil {
			return core.Value{}, err
		}
		fields = append(fields, core.NewField(info.name, val))
	}

	return core.NewObject(fields...), nil
}

// marshalMap converts a string-keyed map to an object with sorted keys.
func marshalMap(rv reflect.Value) (core.Value, error) {
	if rv.IsNil() {
		return core.NewNull(), nil
	}

	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return core.Value{}, fmt.Errorf("toon: unsupported map key type %s", mapType.Key())
	}

	keys := rv.MapKeys()
	strKeys := make([]string, len(keys))
	for i, key := range keys {
		strKeys[i] = key.String()
	}
	sort.Strings(strKeys)

	fields := make([]core.Field, 0, len(strKeys))
	for _, keyStr := range strKeys {
		val, err := marshalValue(rv.MapIndex(reflect.ValueOf(keyStr).Convert(mapType.Key())))
		if err != nil {
			return core.Value{}, err
		}
		fields = append(fields, core.NewField(keyStr, val))
	}
	return core.NewObject(fields...), nil
}

// marshalSlice converts a slice or array to an array value. Nil slices
// encode as null.
func marshalSlice(rv reflect.Value) (core.Value, error) {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return core.NewNull(), nil
	}

	length := rv.Len()
	items := make([]core.Value, 0, length)
	for i := 0; i < length; i++ {
		val, err := marshalValue(rv.Index(i))
		if err != nil {
			return core.Value{}, err
		}
		items = append(items, val)
	}
	return core.NewArray(items...), nil
}
