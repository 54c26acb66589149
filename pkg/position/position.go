// Package position defines grid coordinates and extents along with their
// A1-style textual encoding. The engine relies only on equality, ordering,
// and the validity predicate; Position is a comparable struct so it can key
// maps directly.
package position

import (
	"github.com/xuri/excelize/v2"

	"github.com/vinodismyname/gridsheet/config"
)

// Grid bounds. A position is valid iff both coordinates lie in [0, max).
const (
	MaxRows = config.DefaultMaxRows
	MaxCols = config.DefaultMaxCols
)

// Position names a single grid cell by zero-based row and column.
type Position struct {
	Row int
	Col int
}

// Size describes the inclusive 1-based extent of a rectangular region
// anchored at (0,0). A Size of {3,2} covers rows 0..2 and cols 0..1.
type Size struct {
	Rows int
	Cols int
}

// IsValid reports whether the position lies inside the grid bounds.
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < MaxRows && p.Col < MaxCols
}

// Less orders positions row-major: by row, then by column.
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// String renders the A1 form of the position. Invalid positions render as
// a fixed placeholder so String never fails; it is safe to use in logs.
func (p Position) String() string {
	if !p.IsValid() {
		return "#INVALID!"
	}
	return Format(p)
}

// Format renders a valid position as an A1 reference, e.g. {0,0} -> "A1",
// {1,27} -> "AB2".
func Format(p Position) string {
	name, err := excelize.CoordinatesToCellName(p.Col+1, p.Row+1)
	if err != nil {
		return "#INVALID!"
	}
	return name
}

// Parse decodes an A1 reference: one or more upper-case letters naming the
// column followed by 1-based row digits. It reports false for anything that
// does not match the grammar exactly or that falls outside the grid bounds.
// The coordinate conversion is excelize's; the charset guard keeps the
// grammar strict (excelize also tolerates lowercase letters and absolute
// markers, which are not references here), and the bounds check tightens
// excelize's worksheet limits to the grid's own.
func Parse(s string) (Position, bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return Position{}, false
		}
	}
	col, row, err := excelize.CellNameToCoordinates(s)
	if err != nil {
		return Position{}, false
	}
	if row < 1 || row > MaxRows || col < 1 || col > MaxCols {
		return Position{}, false
	}
	return Position{Row: row - 1, Col: col - 1}, true
}
