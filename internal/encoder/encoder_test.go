package encoder

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-toon/pkg/core"
)

func defaults() Options {
	return Options{IndentSize: 2, Delimiter: ','}
}

func obj(fields ...core.Field) core.Value { return core.NewObject(fields...) }
func arr(items ...core.Value) core.Value  { return core.NewArray(items...) }
func f(key string, v core.Value) core.Field {
	return core.NewField(key, v)
}

func TestEncode_FlatObject(t *testing.T) {
	v := obj(
		f("name", core.NewString("Alice")),
		f("age", core.NewNumber(30)),
	)
	want := "name: Alice\nage: 30"
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_NestedObject(t *testing.T) {
	v := obj(
		f("address", obj(
			f("city", core.NewString("NYC")),
			f("zip", core.NewString("10001")),
		)),
	)
	want := "address:\n  city: NYC\n  zip: \"10001\""
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_RootPrimitives(t *testing.T) {
	tests := []struct {
		name string
		v    core.Value
		want string
	}{
		{"null", core.NewNull(), "null"},
		{"true", core.NewBool(true), "true"},
		{"false", core.NewBool(false), "false"},
		{"integral number", core.NewNumber(42), "42"},
		{"negative zero", core.NewNumber(negZero()), "0"},
		{"fractional number", core.NewNumber(3.25), "3.25"},
		{"bare string", core.NewString("hello"), "hello"},
		{"quoted string", core.NewString("true"), `"true"`},
		{"empty string", core.NewString(""), `""`},
		{"numeric string", core.NewString("30"), `"30"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.v, defaults()); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func negZero() float64 {
	z := 0.0
	return -z
}

func TestEncode_EmptyRoots(t *testing.T) {
	if got := Encode(obj(), defaults()); got != "" {
		t.Errorf("Encode(empty object) = %q, want empty string", got)
	}
	if got := Encode(arr(), defaults()); got != "[0]:" {
		t.Errorf("Encode(empty array) = %q, want %q", got, "[0]:")
	}
}

func TestEncode_InlineArray(t *testing.T) {
	v := obj(f("tags", arr(core.NewString("go"), core.NewString("toon"), core.NewNull())))
	want := "tags[3]: go,toon,null"
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_InlineArray_DelimiterQuoting(t *testing.T) {
	v := arr(core.NewString("a,b"), core.NewString("c"))

	if got, want := Encode(v, defaults()), "[2]: \"a,b\",c"; got != want {
		t.Errorf("comma scope: Encode() = %q, want %q", got, want)
	}

	pipe := Options{IndentSize: 2, Delimiter: '|'}
	if got, want := Encode(v, pipe), "[2|]: a,b|c"; got != want {
		t.Errorf("pipe scope: Encode() = %q, want %q", got, want)
	}
}

func TestEncode_TabDelimiter(t *testing.T) {
	v := arr(core.NewNumber(1), core.NewNumber(2), core.NewNumber(3))
	opts := Options{IndentSize: 2, Delimiter: '\t'}
	want := "[3\t]: 1\t2\t3"
	if got := Encode(v, opts); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_LengthMarker(t *testing.T) {
	v := arr(core.NewNumber(1), core.NewNumber(2))
	opts := Options{IndentSize: 2, Delimiter: ',', LengthMarker: true}
	want := "[#2]: 1,2"
	if got := Encode(v, opts); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_Tabular(t *testing.T) {
	v := arr(
		obj(f("name", core.NewString("Alice")), f("age", core.NewNumber(30))),
		obj(f("name", core.NewString("Bob")), f("age", core.NewNumber(25))),
	)
	want := "[2]{name,age}:\n  Alice,30\n  Bob,25"
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_Tabular_NullCells(t *testing.T) {
	v := arr(
		obj(f("a", core.NewNull()), f("b", core.NewNumber(1))),
		obj(f("a", core.NewNumber(2)), f("b", core.NewNull())),
	)
	want := "[2]{a,b}:\n  null,1\n  2,null"
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_ArrayOfPrimitiveArrays(t *testing.T) {
	v := arr(
		arr(core.NewNumber(1), core.NewNumber(2)),
		arr(core.NewNumber(3)),
		arr(),
	)
	want := "[3]:\n  - [2]: 1,2\n  - [1]: 3\n  - [0]:"
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_ExpandedList_Mixed(t *testing.T) {
	v := arr(
		core.NewString("item1"),
		core.NewNumber(42),
		obj(f("key", core.NewString("value"))),
	)
	want := "[3]:\n  - item1\n  - 42\n  - key: value"
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_ListItem_ObjectWithSiblings(t *testing.T) {
	v := arr(
		obj(
			f("id", core.NewNumber(1)),
			f("name", core.NewString("x")),
			f("meta", obj(f("k", core.NewString("v")))),
		),
	)
	want := strings.Join([]string{
		"[1]:",
		"  - id: 1",
		"    name: x",
		"    meta:",
		"      k: v",
	}, "\n")
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_ListItem_FirstFieldObject(t *testing.T) {
	v := arr(
		obj(
			f("meta", obj(f("k", core.NewString("v")))),
			f("name", core.NewString("x")),
		),
	)
	want := strings.Join([]string{
		"[1]:",
		"  - meta:",
		"      k: v",
		"    name: x",
	}, "\n")
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_ListItem_FirstFieldInlineArray(t *testing.T) {
	v := arr(
		obj(
			f("tags", arr(core.NewString("a"), core.NewString("b"))),
			f("name", core.NewString("x")),
		),
	)
	want := strings.Join([]string{
		"[1]:",
		"  - tags[2]: a,b",
		"    name: x",
	}, "\n")
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_ListItem_FirstFieldTabular(t *testing.T) {
	v := arr(
		obj(
			f("rows", arr(
				obj(f("a", core.NewNumber(1)), f("b", core.NewNumber(2))),
			)),
			f("name", core.NewString("x")),
		),
	)
	want := strings.Join([]string{
		"[1]:",
		"  - rows[1]{a,b}:",
		"      1,2",
		"    name: x",
	}, "\n")
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_ListItem_ComplexArray(t *testing.T) {
	v := arr(
		arr(obj(f("a", core.NewNumber(1)))),
	)
	want := strings.Join([]string{
		"[1]:",
		"  -",
		"    [1]{a}:",
		"      1",
	}, "\n")
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_ListItem_EmptyObject(t *testing.T) {
	v := arr(obj())
	want := "[1]:\n  -"
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_QuotedKeys(t *testing.T) {
	v := obj(
		f("my key", core.NewString("v")),
		f("9lives", core.NewNumber(9)),
	)
	want := "\"my key\": v\n\"9lives\": 9"
	if got := Encode(v, defaults()); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_IndentMultiple(t *testing.T) {
	v := obj(f("a", obj(f("b", obj(f("c", core.NewNumber(1)))))))
	out := Encode(v, Options{IndentSize: 4, Delimiter: ','})
	for _, line := range strings.Split(out, "\n") {
		indent := 0
		for indent < len(line) && line[indent] == ' ' {
			indent++
		}
		if indent%4 != 0 {
			t.Errorf("line %q has indent %d, not a multiple of 4", line, indent)
		}
	}
}

func TestEncode_ShapeIndependentOfDepth(t *testing.T) {
	table := arr(
		obj(f("a", core.NewNumber(1)), f("b", core.NewNumber(2))),
		obj(f("a", core.NewNumber(3)), f("b", core.NewNumber(4))),
	)

	atRoot := Encode(table, defaults())
	nested := Encode(obj(f("outer", obj(f("inner", table)))), defaults())

	if !strings.Contains(atRoot, "{a,b}:") {
		t.Fatalf("root encoding lost tabular shape: %q", atRoot)
	}
	if !strings.Contains(nested, "inner[2]{a,b}:") {
		t.Errorf("nested encoding changed shape: %q", nested)
	}
}

func TestEncode_PanicsOnInternalMisuse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-primitive in primitive position")
		}
	}()
	e := &encoder{opts: defaults()}
	e.appendScalar(nil, core.NewObject())
}
