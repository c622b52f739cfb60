package core

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"parse error with position",
			&ParseError{Message: "bad token", Line: 3, Column: 7},
			"toon: bad token at line 3, column 7",
		},
		{
			"parse error line only",
			&ParseError{Message: "bad token", Line: 3},
			"toon: bad token at line 3",
		},
		{
			"validation error",
			&ValidationError{Message: "row width"},
			"toon: row width",
		},
		{
			"count mismatch",
			&CountMismatchError{Expected: 5, Actual: 3, Context: "inline array"},
			"toon: inline array: expected 5 values, got 3",
		},
		{
			"indentation",
			&IndentationError{Message: "odd indent", Line: 2},
			"toon: odd indent at line 2",
		},
		{
			"missing colon",
			&MissingColonError{Line: 4},
			"toon: missing colon after key at line 4",
		},
		{
			"invalid header",
			&InvalidHeaderError{Message: "missing ']'", Line: 1},
			"toon: invalid array header: missing ']' at line 1",
		},
		{
			"delimiter mismatch",
			&DelimiterMismatchError{Expected: "|", Line: 1},
			`toon: delimiter mismatch: expected "|" at line 1`,
		},
		{
			"invalid escape",
			&InvalidEscapeError{Sequence: `\q`, Position: 3},
			`toon: invalid escape "\\q" at position 3`,
		},
		{
			"unterminated string",
			&UnterminatedStringError{Position: 0},
			"toon: unterminated string at position 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrEmptyInput(t *testing.T) {
	if !errors.Is(ErrEmptyInput, ErrEmptyInput) {
		t.Fatal("ErrEmptyInput must match itself")
	}
	if !strings.HasPrefix(ErrEmptyInput.Error(), "toon: ") {
		t.Errorf("ErrEmptyInput message %q lacks toon: prefix", ErrEmptyInput.Error())
	}
}
