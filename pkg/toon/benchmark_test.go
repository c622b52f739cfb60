package toon

import (
	"testing"

	"github.com/shapestone/shape-toon/pkg/core"
)

var benchTable = core.NewArray(
	core.NewObject(
		core.NewField("id", core.NewNumber(1)),
		core.NewField("name", core.NewString("Alice")),
		core.NewField("role", core.NewString("admin")),
	),
	core.NewObject(
		core.NewField("id", core.NewNumber(2)),
		core.NewField("name", core.NewString("Bob")),
		core.NewField("role", core.NewString("user")),
	),
	core.NewObject(
		core.NewField("id", core.NewNumber(3)),
		core.NewField("name", core.NewString("Carol")),
		core.NewField("role", core.NewString("user")),
	),
)

var benchDoc = Encode(core.NewObject(
	core.NewField("users", benchTable),
	core.NewField("total", core.NewNumber(3)),
	core.NewField("meta", core.NewObject(
		core.NewField("source", core.NewString("bench")),
	)),
))

func BenchmarkEncode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Encode(benchTable)
	}
}

func BenchmarkDecode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(benchDoc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal(b *testing.B) {
	type user struct {
		ID   int    `toon:"id"`
		Name string `toon:"name"`
		Role string `toon:"role"`
	}
	users := []user{
		{1, "Alice", "admin"},
		{2, "Bob", "user"},
		{3, "Carol", "user"},
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(users); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	data := []byte(benchDoc)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out map[string]interface{}
		if err := Unmarshal(data, &out); err != nil {
			b.Fatal(err)
		}
	}
}
