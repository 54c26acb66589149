package sheet

import "fmt"

// Code is a canonical edit-rejection code. These are distinct from formula
// evaluation errors, which are values that flow through cell results.
type Code string

const (
	// CodeInvalidPosition rejects operations on positions outside the grid.
	CodeInvalidPosition Code = "INVALID_POSITION"
	// CodeFormulaParse rejects edits whose expression failed to compile.
	CodeFormulaParse Code = "FORMULA_PARSE"
	// CodeCircularReference rejects edits that would close a reference cycle.
	CodeCircularReference Code = "CIRCULAR_REFERENCE"
)

// catalog maps codes to their standard messages. Messages can be overridden
// per error with more specific detail.
var catalog = map[Code]string{
	CodeInvalidPosition:   "position outside grid bounds",
	CodeFormulaParse:      "expression failed to parse",
	CodeCircularReference: "edit would create a reference cycle",
}

// Error is a rejected sheet operation. No cell's content, edges, or memo
// change when one is returned; empty cells materialized before the
// rejection remain.
type Error struct {
	Code Code
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("%s: %s", e.Code, catalog[e.Code])
	}
	return fmt.Sprintf("%s: %s", e.Code, e.msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is matches errors by code so callers can test against the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidPosition   = &Error{Code: CodeInvalidPosition}
	ErrFormulaParse      = &Error{Code: CodeFormulaParse}
	ErrCircularReference = &Error{Code: CodeCircularReference}
)

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, msg: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, msg: fmt.Sprintf(format, args...), err: err}
}
