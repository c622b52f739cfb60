package toon

// Delimiter selects the separator used for inline array values, tabular
// field lists, and tabular rows.
type Delimiter int

const (
	// Comma is the default delimiter. It carries no symbol inside the
	// array header brackets.
	Comma Delimiter = iota
	// Tab writes a horizontal tab between values and echoes it inside
	// the header brackets.
	Tab
	// Pipe writes '|' between values and echoes it inside the header
	// brackets.
	Pipe
)

// symbol returns the delimiter byte used on the wire.
func (d Delimiter) symbol() byte {
	switch d {
	case Tab:
		return '\t'
	case Pipe:
		return '|'
	default:
		return ','
	}
}

// LengthMarker controls the optional '#' prefix before array lengths.
type LengthMarker int

const (
	// LengthMarkerNone writes headers as [N].
	LengthMarkerNone LengthMarker = iota
	// LengthMarkerHash writes headers as [#N].
	LengthMarkerHash
)

// EncodeOptions configures Encode. The zero value is usable and equals
// DefaultEncodeOptions apart from IndentSize, which falls back to 2 when
// not positive.
type EncodeOptions struct {
	// IndentSize is the number of spaces per depth level. Default 2.
	IndentSize int
	// Delimiter separates inline values, tabular fields, and row cells.
	// Default Comma.
	Delimiter Delimiter
	// LengthMarker selects whether array lengths carry a '#' prefix.
	// Default LengthMarkerNone.
	LengthMarker LengthMarker
}

// DefaultEncodeOptions returns the documented encoding defaults.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{IndentSize: 2, Delimiter: Comma, LengthMarker: LengthMarkerNone}
}

// DecodeOptions configures Decode.
type DecodeOptions struct {
	// IndentSize is the number of spaces per depth level. Default 2.
	IndentSize int
	// Strict enforces declared array lengths, tabular row widths, and
	// exact indent multiples. Default true.
	Strict bool
}

// DefaultDecodeOptions returns the documented decoding defaults.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{IndentSize: 2, Strict: true}
}

// Option customizes Marshal output.
type Option func(*EncodeOptions)

// WithIndentSize sets the number of spaces per depth level.
func WithIndentSize(n int) Option {
	return func(o *EncodeOptions) { o.IndentSize = n }
}

// WithDelimiter selects the delimiter for inline values and tabular rows.
func WithDelimiter(d Delimiter) Option {
	return func(o *EncodeOptions) { o.Delimiter = d }
}

// WithLengthMarkers toggles the '#' length marker in array headers.
func WithLengthMarkers(on bool) Option {
	return func(o *EncodeOptions) {
		if on {
			o.LengthMarker = LengthMarkerHash
		} else {
			o.LengthMarker = LengthMarkerNone
		}
	}
}
