// Package formula compiles spreadsheet expressions into an opaque form that
// can be evaluated against a cell lookup, rendered canonically, and asked
// for the positions it references. The grammar covers numeric literals, A1
// cell references, unary sign, the four arithmetic operators, and grouping
// parentheses.
package formula

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vinodismyname/gridsheet/pkg/position"
)

// Formula is a compiled expression. The zero value is not usable; obtain
// instances through Parse.
type Formula struct {
	root node
	// refs holds every reference token in source order, out-of-bounds ones
	// included; ReferencedCells derives the in-bounds edge set from it.
	refs []token
}

// Parse compiles an expression string (without the leading formula
// sentinel). Lexical and syntactic failures are returned as plain errors;
// callers classify them as parse rejections.
func Parse(expr string) (*Formula, error) {
	tokens, err := lex(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if trailing := p.peek(); trailing.typ != tokenEOF {
		return nil, fmt.Errorf("unexpected token %q at offset %d", trailing.text, trailing.offset)
	}
	f := &Formula{root: root}
	root.collectRefs(&f.refs)
	return f, nil
}

// Eval computes the expression against the given lookup. Failures are
// *Error values: reference errors for out-of-bounds positions, whatever
// the lookup raises, and arithmetic errors for non-finite results.
func (f *Formula) Eval(lookup Lookup) (float64, error) {
	return f.root.eval(lookup)
}

// Expression renders the canonical text of the formula: no whitespace and
// only the parentheses that precedence requires.
func (f *Formula) Expression() string {
	var sb strings.Builder
	f.root.write(&sb)
	return sb.String()
}

// ReferencedCells returns the in-bounds positions the formula references,
// sorted row-major with duplicates removed. Out-of-bounds references do
// not appear; they surface as reference errors at evaluation time.
func (f *Formula) ReferencedCells() []position.Position {
	cells := make([]position.Position, 0, len(f.refs))
	for _, ref := range f.refs {
		if ref.valid {
			cells = append(cells, ref.pos)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	out := cells[:0]
	for _, c := range cells {
		if len(out) == 0 || c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}
