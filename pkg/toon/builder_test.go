package toon

import (
	"testing"

	"github.com/shapestone/shape-toon/pkg/core"
)

func TestBuilder_Object(t *testing.T) {
	doc := NewDocument()
	doc.Object().
		Set("name", "Alice").
		Set("age", 30).
		SetObject("address", func(b *ObjectBuilder) {
			b.Set("city", "NYC")
			b.Set("zip", "10001")
		})

	want := "name: Alice\nage: 30\naddress:\n  city: NYC\n  zip: \"10001\""
	if got := doc.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestBuilder_Array(t *testing.T) {
	doc := NewDocument()
	doc.Array().
		Add("item1").
		Add(42).
		AddObject(func(b *ObjectBuilder) {
			b.Set("key", "value")
		})

	want := "[3]:\n  - item1\n  - 42\n  - key: value"
	if got := doc.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestBuilder_NestedArrays(t *testing.T) {
	doc := NewDocument()
	doc.Object().SetArray("grid", func(b *ArrayBuilder) {
		b.AddArray(func(inner *ArrayBuilder) {
			inner.Add(1).Add(2)
		})
		b.AddArray(func(inner *ArrayBuilder) {
			inner.Add(3)
		})
	})

	want := "grid[2]:\n  - [2]: 1,2\n  - [1]: 3"
	if got := doc.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestBuilder_ScalarRoot(t *testing.T) {
	if got := NewDocument().Value("hello").Encode(); got != "hello" {
		t.Errorf("Encode() = %q, want hello", got)
	}
	if got := NewDocument().Encode(); got != "null" {
		t.Errorf("Encode() of empty document = %q, want null", got)
	}
}

func TestBuilder_InsertionOrderPreserved(t *testing.T) {
	obj := NewObject().
		Set("zebra", 1).
		Set("apple", 2).
		Build()

	fields := obj.Fields()
	if fields[0].Key != "zebra" || fields[1].Key != "apple" {
		t.Errorf("fields = %+v, want insertion order preserved", fields)
	}
}

func TestBuilder_SetValue(t *testing.T) {
	obj := NewObject().
		SetValue("raw", core.NewNumber(1.5)).
		Build()

	v, ok := obj.Get("raw")
	if !ok || v.Number() != 1.5 {
		t.Errorf("Get(raw) = %+v, want 1.5", v)
	}
}

func TestBuilder_EncodeWithOptions(t *testing.T) {
	doc := NewDocument()
	doc.Array().Add(1).Add(2)

	out := doc.EncodeWithOptions(EncodeOptions{IndentSize: 2, Delimiter: Pipe})
	if want := "[2|]: 1|2"; out != want {
		t.Errorf("EncodeWithOptions() = %q, want %q", out, want)
	}
}
