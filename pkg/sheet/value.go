package sheet

import "github.com/vinodismyname/gridsheet/pkg/formula"

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	KindText ValueKind = iota
	KindNumber
	KindError
)

// Value is the observable result of a cell: a number, a text, or a formula
// evaluation error. Empty cells observe as the empty text.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	err  *formula.Error
}

// NumberValue wraps a numeric result.
func NumberValue(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// TextValue wraps a textual result.
func TextValue(s string) Value {
	return Value{kind: KindText, str: s}
}

// ErrorValue wraps a formula evaluation error.
func ErrorValue(err *formula.Error) Value {
	return Value{kind: KindError, err: err}
}

// Kind reports which variant the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Number returns the numeric result; zero for other kinds.
func (v Value) Number() float64 { return v.num }

// Text returns the textual result; empty for other kinds.
func (v Value) Text() string { return v.str }

// Err returns the evaluation error; nil for other kinds.
func (v Value) Err() *formula.Error { return v.err }

// String renders the value the way printed output expects: numbers in
// their canonical form, errors by symbol, texts verbatim.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return formula.FormatNumber(v.num)
	case KindError:
		return v.err.Error()
	default:
		return v.str
	}
}
