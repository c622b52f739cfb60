// Package toon provides conversion between value trees and Go native types.
package toon

import (
	"fmt"
	"sort"

	"github.com/shapestone/shape-toon/pkg/core"
)

// ToInterface converts a value tree to native Go types.
//
// Converts:
//   - null → nil
//   - bool → bool
//   - number → float64
//   - string → string
//   - array → []interface{}
//   - object → map[string]interface{} (duplicate keys: last wins)
//
// This function recursively processes nested structures. Field order is
// lost at the map bridge; use the core.Value tree directly when order
// matters.
//
// Example:
//
//	v, _ := toon.Decode("name: Alice\ntags[2]: go,toon")
//	data := toon.ToInterface(v)
//	// data is map[string]interface{}{"name":"Alice", "tags":[]interface{}{"go","toon"}}
func ToInterface(v core.Value) interface{} {
	switch v.Kind() {
	case core.KindNull:
		return nil
	case core.KindBool:
		return v.Bool()
	case core.KindNumber:
		return v.Number()
	case core.KindString:
		return v.String()
	case core.KindArray:
		items := v.Items()
		arr := make([]interface{}, len(items))
		for i, it := range items {
			arr[i] = ToInterface(it)
		}
		return arr
	case core.KindObject:
		fields := v.Fields()
		m := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			m[f.Key] = ToInterface(f.Value)
		}
		return m
	default:
		return nil
	}
}

// FromInterface converts native Go types to a value tree.
//
// Converts:
//   - nil → null
//   - string → string
//   - bool → bool
//   - int, int64, int32, ... and float64, float32 → number
//   - []interface{} → array
//   - map[string]interface{} → object (keys sorted for determinism)
//   - core.Value → passed through unchanged
//
// For arbitrary structs and typed slices or maps, use Marshal instead;
// this bridge covers the shapes produced by generic decoders.
func FromInterface(v interface{}) (core.Value, error) {
	if v == nil {
		return core.NewNull(), nil
	}

	switch val := v.(type) {
	case core.Value:
		return val, nil

	case string:
		return core.NewString(val), nil

	case bool:
		return core.NewBool(val), nil

	case int:
		return core.NewNumber(float64(val)), nil
	case int64:
		return core.NewNumber(float64(val)), nil
	case int32:
		return core.NewNumber(float64(val)), nil
	case int16:
		return core.NewNumber(float64(val)), nil
	case int8:
		return core.NewNumber(float64(val)), nil

	case uint:
		return core.NewNumber(float64(val)), nil
	case uint64:
		return core.NewNumber(float64(val)), nil
	case uint32:
		return core.NewNumber(float64(val)), nil
	case uint16:
		return core.NewNumber(float64(val)), nil
	case uint8:
		return core.NewNumber(float64(val)), nil

	case float64:
		return core.NewNumber(val), nil
	case float32:
		return core.NewNumber(float64(val)), nil

	case []interface{}:
		items := make([]core.Value, len(val))
		for i, item := range val {
			itemVal, err := FromInterface(item)
			if err != nil {
				return core.Value{}, fmt.Errorf("array element %d: %w", i, err)
			}
			items[i] = itemVal
		}
		return core.NewArray(items...), nil

	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for key := range val {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fields := make([]core.Field, 0, len(val))
		for _, key := range keys {
			fieldVal, err := FromInterface(val[key])
			if err != nil {
				return core.Value{}, fmt.Errorf("object field %s: %w", key, err)
			}
			fields = append(fields, core.NewField(key, fieldVal))
		}
		return core.NewObject(fields...), nil

	default:
		return core.Value{}, fmt.Errorf("toon: unsupported type: %T", v)
	}
}
