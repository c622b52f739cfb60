// Package toon encodes and decodes TOON (Token-Oriented Object
// Notation), a compact indentation-based textual serialization of
// JSON-equivalent data designed to reduce token usage in LLM prompts
// while staying human-readable.
//
// # Value model
//
// Documents are trees of core.Value nodes: null, bool, number, string,
// array, and ordered object. Decoding deliberately reads every unquoted
// scalar as a string (never a number), so numbers survive prompts
// textually; unquoted true/false/null still decode to their typed forms.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call works on its own state; nothing is shared or
// retained between calls.
//
//	// ✅ SAFE: Concurrent use
//	go func() { toon.Decode(input1) }()
//	go func() { toon.Decode(input2) }()
//	go func() { toon.Marshal(v) }()
//
// # APIs
//
// Three layers are provided:
//
//   - Encode / Decode (+WithOptions) - convert between core.Value trees
//     and TOON text
//   - Marshal / Unmarshal - convert Go values directly, driven by
//     reflection and `toon` struct tags
//   - FromInterface / ToInterface and the builders - bridge generic Go
//     data and core.Value trees
//
// Example:
//
//	doc := core.NewObject(
//	    core.NewField("name", core.NewString("Alice")),
//	    core.NewField("age", core.NewNumber(30)),
//	)
//	out := toon.Encode(doc)
//	// out == "name: Alice\nage: 30"
package toon

import (
	"io"

	"github.com/shapestone/shape-toon/internal/encoder"
	"github.com/shapestone/shape-toon/internal/parser"
	"github.com/shapestone/shape-toon/pkg/core"
)

// Encode renders a value tree as TOON text using the default options
// (two-space indent, comma delimiter, no length markers).
//
// Encoding cannot fail for well-formed values; passing a tree that
// violates the value model's invariants is a programmer error and
// panics.
func Encode(v core.Value) string {
	return EncodeWithOptions(v, DefaultEncodeOptions())
}

// EncodeWithOptions renders a value tree as TOON text.
//
// Output uses LF line terminators, carries no trailing newline, and
// indents with ASCII spaces only. An empty object encodes to the empty
// string; an empty array encodes to "[0]:".
func EncodeWithOptions(v core.Value, opts EncodeOptions) string {
	return encoder.Encode(v, encoder.Options{
		IndentSize:   opts.IndentSize,
		Delimiter:    opts.Delimiter.symbol(),
		LengthMarker: opts.LengthMarker == LengthMarkerHash,
	})
}

// Decode parses TOON text into a value tree using the default options
// (two-space indent, strict mode).
//
// The first error encountered is returned and parsing stops; no partial
// value is produced. Input with no non-blank line fails with
// core.ErrEmptyInput.
func Decode(input string) (core.Value, error) {
	return DecodeWithOptions(input, DefaultDecodeOptions())
}

// DecodeWithOptions parses TOON text into a value tree.
//
// In strict mode declared array lengths must match observed counts,
// tabular rows must match the header's field list width, and every
// line's indent must be an exact multiple of the indent size. Outside
// strict mode those checks are skipped and fractional indents
// floor-divide to a depth.
func DecodeWithOptions(input string, opts DecodeOptions) (core.Value, error) {
	return parser.Decode(input, parser.Options{
		IndentSize: opts.IndentSize,
		Strict:     opts.Strict,
	})
}

// DecodeFrom reads r to EOF and decodes the result with the default
// options. It is a convenience for file and network sources; the input
// is buffered fully before parsing.
func DecodeFrom(r io.Reader) (core.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Value{}, err
	}
	return Decode(string(data))
}

// Validate checks whether input is a well-formed TOON document under the
// default (strict) decode options, discarding the parsed value.
//
// Returns nil when the input is valid, or the decode error describing
// the first problem found.
func Validate(input string) error {
	_, err := Decode(input)
	return err
}
