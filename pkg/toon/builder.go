package toon

import (
	"github.com/shapestone/shape-toon/pkg/core"
)

// Document provides a fluent API for building TOON documents.
//
// Object and Array hand back live builders; Build resolves them at call
// time so the fluent chain can keep appending after the root method
// returns.
type Document struct {
	root        core.Value
	rootBuilder *ObjectBuilder
	rootArray   *ArrayBuilder
}

// NewDocument creates a new TOON document builder. The zero document
// encodes a null root.
func NewDocument() *Document {
	return &Document{root: core.NewNull()}
}

// Object creates an object as the root and returns its builder.
func (d *Document) Object() *ObjectBuilder {
	builder := NewObject()
	d.rootBuilder = builder
	return builder
}

// Array creates an array as the root and returns its builder.
func (d *Document) Array() *ArrayBuilder {
	builder := NewArray()
	d.rootArray = builder
	return builder
}

// Value sets a scalar root from a native Go value. Unsupported types
// leave the root null.
func (d *Document) Value(v interface{}) *Document {
	val, err := FromInterface(v)
	if err == nil {
		d.root = val
	}
	return d
}

// Build returns the document's root value.
func (d *Document) Build() core.Value {
	if d.rootBuilder != nil {
		return d.rootBuilder.Build()
	}
	if d.rootArray != nil {
		return d.rootArray.Build()
	}
	return d.root
}

// Encode renders the document with the default options.
func (d *Document) Encode() string {
	return Encode(d.Build())
}

// EncodeWithOptions renders the document with the given options.
func (d *Document) EncodeWithOptions(opts EncodeOptions) string {
	return EncodeWithOptions(d.Build(), opts)
}

// ObjectBuilder provides a fluent API for building objects. Field order
// follows call order, and repeated Set calls append rather than replace.
type ObjectBuilder struct {
	fields []core.Field
}

// NewObject creates a new object builder.
func NewObject() *ObjectBuilder {
	return &ObjectBuilder{}
}

// Set appends a key-value pair from a native Go value. Unsupported
// types are recorded as null.
func (b *ObjectBuilder) Set(key string, value interface{}) *ObjectBuilder {
	val, err := FromInterface(value)
	if err != nil {
		val = core.NewNull()
	}
	b.fields = append(b.fields, core.NewField(key, val))
	return b
}

// SetValue appends a key with an already-built value.
func (b *ObjectBuilder) SetValue(key string, value core.Value) *ObjectBuilder {
	b.fields = append(b.fields, core.NewField(key, value))
	return b
}

// SetObject appends a nested object built by fn.
func (b *ObjectBuilder) SetObject(key string, fn func(*ObjectBuilder)) *ObjectBuilder {
	nested := NewObject()
	fn(nested)
	b.fields = append(b.fields, core.NewField(key, nested.Build()))
	return b
}

// SetArray appends a nested array built by fn.
func (b *ObjectBuilder) SetArray(key string, fn func(*ArrayBuilder)) *ObjectBuilder {
	nested := NewArray()
	fn(nested)
	b.fields = append(b.fields, core.NewField(key, nested.Build()))
	return b
}

// Build returns the object value.
func (b *ObjectBuilder) Build() core.Value {
	return core.NewObject(b.fields...)
}

// ArrayBuilder provides a fluent API for building arrays.
type ArrayBuilder struct {
	items []core.Value
}

// NewArray creates a new array builder.
func NewArray() *ArrayBuilder {
	return &ArrayBuilder{}
}

// Add appends a native Go value. Unsupported types are recorded as
// null.
func (b *ArrayBuilder) Add(value interface{}) *ArrayBuilder {
	val, err := FromInterface(value)
	if err != nil {
		val = core.NewNull()
	}
	b.items = append(b.items, val)
	return b
}

// AddValue appends an already-built value.
func (b *ArrayBuilder) AddValue(value core.Value) *ArrayBuilder {
	b.items = append(b.items, value)
	return b
}

// AddObject appends a nested object built by fn.
func (b *ArrayBuilder) AddObject(fn func(*ObjectBuilder)) *ArrayBuilder {
	nested := NewObject()
	fn(nested)
	b.items = append(b.items, nested.Build())
	return b
}

// AddArray appends a nested array built by fn.
func (b *ArrayBuilder) AddArray(fn func(*ArrayBuilder)) *ArrayBuilder {
	nested := NewArray()
	fn(nested)
	b.items = append(b.items, nested.Build())
	return b
}

// Build returns the array value.
func (b *ArrayBuilder) Build() core.Value {
	return core.NewArray(b.items...)
}
