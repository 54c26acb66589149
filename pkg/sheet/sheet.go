// Package sheet implements the spreadsheet engine: a sparse grid of cells
// holding literal texts or formulas, with incrementally maintained
// dependency edges, cycle rejection, and memoized formula results. All
// operations are synchronous and single-threaded; edits are transactional
// at single-cell granularity.
package sheet

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vinodismyname/gridsheet/config"
	"github.com/vinodismyname/gridsheet/internal/telemetry"
	"github.com/vinodismyname/gridsheet/pkg/formula"
	"github.com/vinodismyname/gridsheet/pkg/position"
	"github.com/vinodismyname/gridsheet/pkg/validation"
)

// Sentinel characters recognized at the start of raw cell input.
const (
	// FormulaSentinel opens a formula when the input has length >= 2.
	FormulaSentinel = '='
	// EscapeSentinel leads a literal whose value strips the sentinel while
	// its text retains it.
	EscapeSentinel = '\''
)

// Options are the tunable sheet bounds, validated at construction. Bounds
// may only tighten the canonical grid, never widen it.
type Options struct {
	MaxRows int `validate:"gte=1,lte=16384"`
	MaxCols int `validate:"gte=1,lte=16384"`
}

// Option adjusts a Sheet during construction.
type Option func(*Sheet)

// WithLogger injects the engine logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sheet) {
		s.logger = logger
	}
}

// WithBounds tightens the grid bounds below the canonical maxima.
func WithBounds(rows, cols int) Option {
	return func(s *Sheet) {
		s.maxRows = rows
		s.maxCols = cols
	}
}

// Sheet owns every cell of one grid and mediates all edits.
type Sheet struct {
	cells    map[position.Position]*Cell
	maxRows  int
	maxCols  int
	logger   zerolog.Logger
	counters *telemetry.Counters
}

// New constructs an empty sheet. Invalid options panic: option values are
// fixed at the call site, so a bad combination is a programmer error.
func New(opts ...Option) *Sheet {
	s := &Sheet{
		cells:   make(map[position.Position]*Cell),
		maxRows: config.DefaultMaxRows,
		maxCols: config.DefaultMaxCols,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if msg := validation.ValidateStruct(Options{MaxRows: s.maxRows, MaxCols: s.maxCols}); msg != "" {
		panic("sheet: " + msg)
	}
	s.counters = telemetry.NewCounters(s.logger)
	return s
}

// Counters exposes the operation tallies, mainly for tests and callers
// that want to log engine activity themselves.
func (s *Sheet) Counters() *telemetry.Counters {
	return s.counters
}

func (s *Sheet) posValid(pos position.Position) bool {
	return pos.IsValid() && pos.Row < s.maxRows && pos.Col < s.maxCols
}

// SetCell installs raw text at pos, parsing it as empty, literal, or
// formula content. The edit either commits fully (contents swapped, edges
// rewired, downstream memos flushed) or fails with a typed error leaving
// contents, edges, and memos unchanged. Empty cells created at pos and at
// the candidate's referents before the checks remain after a failure.
func (s *Sheet) SetCell(pos position.Position, raw string) error {
	if !s.posValid(pos) {
		s.counters.RecordReject(string(CodeInvalidPosition))
		return newError(CodeInvalidPosition, "cannot set %s", pos)
	}

	c, ok := s.cells[pos]
	if !ok {
		c = newCell(s, pos)
		s.cells[pos] = c
	}
	if raw == c.Text() {
		return nil
	}

	cand, err := classify(raw)
	if err != nil {
		s.counters.RecordReject(string(CodeFormulaParse))
		return wrapError(CodeFormulaParse, err, "cannot parse formula for %s: %v", pos, err)
	}

	// Resolve the candidate's edges against this sheet's bounds and make
	// sure every referent has a live cell before the cycle walk runs.
	var refs []position.Position
	for _, r := range cand.referencedCells() {
		if !s.posValid(r) {
			continue
		}
		refs = append(refs, r)
		if _, exists := s.cells[r]; !exists {
			s.cells[r] = newCell(s, r)
		}
	}

	if s.createsCycle(pos, refs) {
		s.counters.RecordReject(string(CodeCircularReference))
		return newError(CodeCircularReference, "setting %s closes a reference cycle", pos)
	}

	s.commit(c, cand, refs)
	s.counters.RecordSet(pos.String())
	return nil
}

// GetCell returns the cell at pos, or nil if no cell is materialized there
// (never set, or cleared while unreferenced). Callers observe cells through Value, Text, and
// ReferencedCells only.
func (s *Sheet) GetCell(pos position.Position) (*Cell, error) {
	if !s.posValid(pos) {
		return nil, newError(CodeInvalidPosition, "cannot get %s", pos)
	}
	return s.cells[pos], nil
}

// ClearCell empties the cell at pos through the edit protocol, so edges
// are rewired and downstream memos flushed, then drops the map entry
// unless other cells still reference it.
func (s *Sheet) ClearCell(pos position.Position) error {
	if !s.posValid(pos) {
		s.counters.RecordReject(string(CodeInvalidPosition))
		return newError(CodeInvalidPosition, "cannot clear %s", pos)
	}
	c, ok := s.cells[pos]
	if !ok {
		return nil
	}
	if err := s.SetCell(pos, ""); err != nil {
		return err
	}
	if !c.IsReferenced() {
		delete(s.cells, pos)
	}
	s.counters.RecordClear(pos.String())
	return nil
}

// GetPrintableSize returns the inclusive extent of the smallest rectangle
// anchored at the origin covering every cell with non-empty text. Cells
// that exist only as referents are empty and do not extend it.
func (s *Sheet) GetPrintableSize() position.Size {
	var size position.Size
	for pos, c := range s.cells {
		if c.Text() == "" {
			continue
		}
		if pos.Row+1 > size.Rows {
			size.Rows = pos.Row + 1
		}
		if pos.Col+1 > size.Cols {
			size.Cols = pos.Col + 1
		}
	}
	return size
}

// PrintValues writes the printable region as tab-separated evaluated
// values, one line per row.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.printRegion(w, func(c *Cell) string { return c.Value().String() })
}

// PrintTexts writes the printable region as tab-separated raw texts, one
// line per row.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.printRegion(w, func(c *Cell) string { return c.Text() })
}

func (s *Sheet) printRegion(w io.Writer, render func(*Cell) string) error {
	size := s.GetPrintableSize()
	var sb strings.Builder
	for row := 0; row < size.Rows; row++ {
		sb.Reset()
		for col := 0; col < size.Cols; col++ {
			if col > 0 {
				sb.WriteByte(config.PrintFieldSep)
			}
			if c, ok := s.cells[position.Position{Row: row, Col: col}]; ok && c.Text() != "" {
				sb.WriteString(render(c))
			}
		}
		sb.WriteByte(config.PrintRowSep)
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// classify maps raw input to its content variant. Empty input is the
// empty variant; input opening with the formula sentinel and at least one
// more character compiles as a formula; everything else, the lone "="
// included, is literal text.
func classify(raw string) (content, error) {
	if raw == "" {
		return emptyContent{}, nil
	}
	if len(raw) >= 2 && raw[0] == FormulaSentinel {
		f, err := formula.Parse(raw[1:])
		if err != nil {
			return nil, err
		}
		return &formulaContent{f: f}, nil
	}
	return textContent{raw: raw}, nil
}

// createsCycle walks ancestor edges depth-first from each candidate
// referent looking for a path back to target. Only the candidate's
// outbound edges matter for the edited cell; its current edges are about
// to be discarded. Every referent has a live cell by the time this runs.
func (s *Sheet) createsCycle(target position.Position, refs []position.Position) bool {
	visited := make(map[position.Position]struct{})
	var reaches func(c *Cell) bool
	reaches = func(c *Cell) bool {
		for ap, anc := range c.ancestors {
			if ap == target {
				return true
			}
			if _, seen := visited[ap]; seen {
				continue
			}
			visited[ap] = struct{}{}
			if reaches(anc) {
				return true
			}
		}
		return false
	}
	for _, r := range refs {
		if r == target {
			return true
		}
		if _, seen := visited[r]; seen {
			continue
		}
		visited[r] = struct{}{}
		if reaches(s.cells[r]) {
			return true
		}
	}
	return false
}

// commit swaps in the candidate content, rewires edges bidirectionally,
// and flushes the memo closure below the edited cell.
func (s *Sheet) commit(c *Cell, cand content, refs []position.Position) {
	for _, anc := range c.ancestors {
		delete(anc.descendants, c.pos)
	}
	c.ancestors = make(map[position.Position]*Cell)

	c.content = cand

	for _, r := range refs {
		rc := s.cells[r]
		c.ancestors[r] = rc
		rc.descendants[c.pos] = c
	}

	// The fresh content carries no memo, so descendants are flushed
	// directly; the guarded recursion takes over from there.
	flushed := 0
	for _, d := range c.descendants {
		flushed += d.invalidate()
	}
	s.counters.RecordInvalidation(flushed)
}

// lookup resolves a position to a number for formula evaluation: invalid
// positions raise #REF!, unmaterialized cells read as zero, texts coerce
// to numbers or raise #VALUE!, and error results propagate unchanged.
func (s *Sheet) lookup(pos position.Position) (float64, error) {
	if !s.posValid(pos) {
		return 0, formula.ErrRef
	}
	c, ok := s.cells[pos]
	if !ok {
		return 0, nil
	}
	v := c.Value()
	switch v.Kind() {
	case KindNumber:
		return v.Number(), nil
	case KindError:
		return 0, v.Err()
	default:
		str := v.Text()
		if str == "" {
			return 0, nil
		}
		n, err := strconv.ParseFloat(str, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, formula.ErrValue
		}
		return n, nil
	}
}
