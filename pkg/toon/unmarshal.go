package toon

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/shapestone/shape-toon/pkg/core"
)

// Unmarshal parses the TOON-encoded data and stores the result in the
// value pointed to by v.
//
// Unmarshal uses the inverse of the encodings that Marshal uses,
// allocating maps, slices, and pointers as necessary, with the following
// additional rules:
//
// To unmarshal TOON into a pointer, Unmarshal first handles the case of
// the TOON value null by setting the pointer to nil. Otherwise it
// unmarshals into the value pointed at, allocating it when the pointer
// is nil.
//
// To unmarshal TOON into a struct, Unmarshal matches incoming object
// keys to the keys used by Marshal (the struct field's tag name or
// lowercased field name), preferring an exact match but also accepting a
// case-insensitive one. Only exported fields are set.
//
// To unmarshal TOON into an interface value, Unmarshal stores the native
// form produced by ToInterface.
//
// Because decoded TOON scalars are strings unless quoted semantics say
// otherwise, numeric and boolean targets coerce: a string "30" fills an
// int field, a string "true" fills a bool field. Coercion failures
// report the offending value and target type.
//
// If the data is not valid TOON, Unmarshal returns the decode error.
//
// Example:
//
//	type Config struct {
//	    Name string `toon:"name"`
//	    Port int    `toon:"port"`
//	}
//	var cfg Config
//	err := toon.Unmarshal([]byte("name: server\nport: 8080"), &cfg)
func Unmarshal(data []byte, v interface{}) error {
	val, err := Decode(string(data))
	if err != nil {
		return err
	}
	return unmarshalFromValue(val, v)
}

// Unmarshaler is the interface implemented by types that can unmarshal a
// TOON description of themselves. The input is the re-encoded TOON of
// the subtree being unmarshaled.
type Unmarshaler interface {
	UnmarshalTOON([]byte) error
}

var unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()

func unmarshalFromValue(val core.Value, v interface{}) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || v == nil {
		return errors.New("toon: Unmarshal(nil)")
	}
	if rv.Kind() != reflect.Ptr {
		return errors.New("toon: Unmarshal(non-pointer " + rv.Type().String() + ")")
	}
	if rv.IsNil() {
		return errors.New("toon: Unmarshal(nil " + rv.Type().String() + ")")
	}

	return unmarshalValue(val, rv.Elem())
}

// unmarshalValue populates rv from a value tree node.
func unmarshalValue(val core.Value, rv reflect.Value) error {
	if rv.CanAddr() && rv.Addr().Type().Implements(unmarshalerType) {
		return rv.Addr().Interface().(Unmarshaler).UnmarshalTOON([]byte(Encode(val)))
	}

	if val.Kind() == core.KindNull {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}

	if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
		rv.Set(reflect.ValueOf(ToInterface(val)))
		return nil
	}

	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return unmarshalValue(val, rv.Elem())
	}

	switch val.Kind() {
	case core.KindBool, core.KindNumber, core.KindString:
		return unmarshalScalar(val, rv)
	case core.KindArray:
		return unmarshalArray(val, rv)
	case core.KindObject:
		return unmarshalObject(val, rv)
	default:
		return fmt.Errorf("toon: unsupported value kind %s", val.Kind())
	}
}

// unmarshalScalar fills a scalar target, coercing decoded strings into
// numeric and boolean targets.
func unmarshalScalar(val core.Value, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.String:
		if val.Kind() == core.KindString {
			rv.SetString(val.String())
			return nil
		}
		return fmt.Errorf("toon: cannot unmarshal %s into Go value of type string", val.Kind())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, err := scalarNumber(val, rv.Type())
		if err != nil {
			return err
		}
		i := int64(f)
		if float64(i) != f || rv.OverflowInt(i) {
			return fmt.Errorf("toon: value %v overflows %s", f, rv.Type())
		}
		rv.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, err := scalarNumber(val, rv.Type())
		if err != nil {
			return err
		}
		if f < 0 {
			return fmt.Errorf("toon: value %v overflows %s", f, rv.Type())
		}
		u := uint64(f)
		if float64(u) != f || rv.OverflowUint(u) {
			return fmt.Errorf("toon: value %v overflows %s", f, rv.Type())
		}
		rv.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := scalarNumber(val, rv.Type())
		if err != nil {
			return err
		}
		if rv.OverflowFloat(f) {
			return fmt.Errorf("toon: value %v overflows %s", f, rv.Type())
		}
		rv.SetFloat(f)
		return nil

	case reflect.Bool:
		switch val.Kind() {
		case core.KindBool:
			rv.SetBool(val.Bool())
			return nil
		case core.KindString:
			switch val.String() {
			case "true":
				rv.SetBool(true)
				return nil
			case "false":
				rv.SetBool(false)
				return nil
			}
			return fmt.Errorf("toon: cannot unmarshal %q into Go value of type bool", val.String())
		}
		return fmt.Errorf("toon: cannot unmarshal %s into Go value of type bool", val.Kind())

	default:
		return fmt.Errorf("toon: cannot unmarshal %s into Go value of type %s", val.Kind(), rv.Type())
	}
}

// scalarNumber extracts a float from a number value or a numeric string.
func scalarNumber(val core.Value, target reflect.Type) (float64, error) {
	switch val.Kind() {
	case core.KindNumber:
		return val.Number(), nil
	case core.KindString:
		f, err := strconv.ParseFloat(val.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("toon: cannot unmarshal %q into Go value of type %s", val.String(), target)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("toon: cannot unmarshal %s into Go value of type %s", val.Kind(), target)
	}
}

// unmarshalArray fills a slice or array target.
func unmarshalArray(val core.Value, rv reflect.Value) error {
	items := val.Items()

	switch rv.Kind() {
	case reflect.Slice:
		slice := reflect.MakeSlice(rv.Type(), len(items), len(items))
		for i, item := range items {
			if err := unmarshalValue(item, slice.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(slice)
		return nil

	case reflect.Array:
		if len(items) > rv.Len() {
			return fmt.Errorf("toon: array length %d exceeds target array length %d", len(items), rv.Len())
		}
		for i, item := range items {
			if err := unmarshalValue(item, rv.Index(i)); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("toon: cannot unmarshal array into Go value of type %s", rv.Type())
	}
}

// unmarshalObject fills a struct or map target.
func unmarshalObject(val core.Value, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Struct:
		return unmarshalStruct(val, rv)
	case reflect.Map:
		return unmarshalMap(val, rv)
	default:
		return fmt.Errorf("toon: cannot unmarshal object into Go value of type %s", rv.Type())
	}
}

func unmarshalStruct(val core.Value, rv reflect.Value) error {
	structType := rv.Type()

	// Build a map of TOON field names to struct field indices
	fieldMap := make(map[string]int)
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" {
			continue
		}
		info := getFieldInfo(field)
		if info.skip {
			continue
		}
		fieldMap[info.name] = i
	}

	for _, f := range val.Fields() {
		fieldIdx, ok := fieldMap[f.Key]
		if !ok {
			// Case-insensitive fallback
			for name, idx := range fieldMap {
				if strings.EqualFold(name, f.Key) {
					fieldIdx, ok = idx, true
					break
				}
			}
		}
		if !ok {
			continue
		}
		if err := unmarshalValue(f.Value, rv.Field(fieldIdx)); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalMap(val core.Value, rv reflect.Value) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("toon: unsupported map key type %s", mapType.Key())
	}

	if rv.IsNil() {
		rv.Set(reflect.MakeMap(mapType))
	}

	valueType := mapType.Elem()
	for _, f := range val.Fields() {
		elemVal := reflect.New(valueType).Elem()
		if err := unmarshalValue(f.Value, elemVal); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(f.Key).Convert(mapType.Key()), elemVal)
	}
	return nil
}
