package sheet

import (
	"github.com/vinodismyname/gridsheet/pkg/formula"
	"github.com/vinodismyname/gridsheet/pkg/position"
)

// content is the variant a cell currently holds: empty, literal text, or a
// compiled formula. Variants are immutable; edits swap the whole content.
type content interface {
	value(s *Sheet) Value
	text() string
	referencedCells() []position.Position
	// cacheValid reports whether the variant's memo is in force. Empty and
	// text contents are vacuously cached: their value never depends on
	// other cells, and answering true lets invalidation recurse through
	// them into formula descendants.
	cacheValid() bool
	clearCache()
}

type emptyContent struct{}

func (emptyContent) value(*Sheet) Value                   { return TextValue("") }
func (emptyContent) text() string                         { return "" }
func (emptyContent) referencedCells() []position.Position { return nil }
func (emptyContent) cacheValid() bool                     { return true }
func (emptyContent) clearCache()                          {}

type textContent struct {
	raw string
}

func (c textContent) value(*Sheet) Value {
	if c.raw[0] == EscapeSentinel {
		return TextValue(c.raw[1:])
	}
	return TextValue(c.raw)
}

func (c textContent) text() string                       { return c.raw }
func (textContent) referencedCells() []position.Position { return nil }
func (textContent) cacheValid() bool                     { return true }
func (textContent) clearCache()                          {}

type formulaContent struct {
	f     *formula.Formula
	cache *Value
}

func (c *formulaContent) value(s *Sheet) Value {
	if c.cache == nil {
		v := c.evaluate(s)
		c.cache = &v
	}
	return *c.cache
}

// evaluate runs the compiled expression against the sheet per the lookup
// contract: invalid positions raise #REF!, unmaterialized cells read as
// zero, texts coerce to numbers or raise #VALUE!, and error results
// propagate unchanged.
func (c *formulaContent) evaluate(s *Sheet) Value {
	result, err := c.f.Eval(s.lookup)
	if err != nil {
		if ferr, ok := err.(*formula.Error); ok {
			return ErrorValue(ferr)
		}
		// The lookup only raises categorized errors; anything else would be
		// a programmer error in the sheet itself.
		return ErrorValue(formula.ErrValue)
	}
	return NumberValue(result)
}

func (c *formulaContent) text() string {
	return string(FormulaSentinel) + c.f.Expression()
}

func (c *formulaContent) referencedCells() []position.Position {
	return c.f.ReferencedCells()
}

func (c *formulaContent) cacheValid() bool { return c.cache != nil }
func (c *formulaContent) clearCache()      { c.cache = nil }

// Cell is a single grid entry. Cells are owned exclusively by their Sheet;
// ancestor and descendant edges refer to peer cells through non-owning
// pointers kept bidirectionally consistent by the edit protocol.
type Cell struct {
	sheet   *Sheet
	pos     position.Position
	content content

	// ancestors holds the cells this cell references; descendants holds the
	// cells referencing this one.
	ancestors   map[position.Position]*Cell
	descendants map[position.Position]*Cell
}

func newCell(s *Sheet, pos position.Position) *Cell {
	return &Cell{
		sheet:       s,
		pos:         pos,
		content:     emptyContent{},
		ancestors:   make(map[position.Position]*Cell),
		descendants: make(map[position.Position]*Cell),
	}
}

// Value returns the observable evaluated result of the cell. Formula
// results are memoized until an upstream edit invalidates them.
func (c *Cell) Value() Value {
	return c.content.value(c.sheet)
}

// Text returns the raw user-facing text, which round-trips through SetCell.
func (c *Cell) Text() string {
	return c.content.text()
}

// ReferencedCells lists the positions the cell's content refers to within
// this sheet's bounds, sorted and deduplicated. It mirrors the cell's
// ancestor edge set.
func (c *Cell) ReferencedCells() []position.Position {
	all := c.content.referencedCells()
	refs := all[:0]
	for _, r := range all {
		if c.sheet.posValid(r) {
			refs = append(refs, r)
		}
	}
	return refs
}

// IsReferenced reports whether any cell currently references this one.
func (c *Cell) IsReferenced() bool {
	return len(c.descendants) > 0
}

// invalidate clears the cell's memo and recurses into descendants. The
// cache-present guard is the termination condition: a cell with an empty
// cache has cacheless formula descendants already, so the walk
// short-circuits even under diamond-shaped graphs.
func (c *Cell) invalidate() int {
	if !c.content.cacheValid() {
		return 0
	}
	cleared := 0
	if _, ok := c.content.(*formulaContent); ok {
		cleared = 1
	}
	c.content.clearCache()
	for _, d := range c.descendants {
		cleared += d.invalidate()
	}
	return cleared
}
