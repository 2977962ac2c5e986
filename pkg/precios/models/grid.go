package models

import "strings"

// Row is one spreadsheet row. Trailing empty cells are not stored.
type Row []Cell

// Cell returns the cell at col, or an empty cell when col is out of range.
func (r Row) Cell(col int) Cell {
	if col < 0 || col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// Join concatenates the string form of every cell with sep.
func (r Row) Join(sep string) string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = c.String()
	}
	return strings.Join(parts, sep)
}

// Grid is a sheet as a two-dimensional, 0-based array of cells.
type Grid []Row

// Row returns row idx, or nil when idx is out of range.
func (g Grid) Row(idx int) Row {
	if idx < 0 || idx >= len(g) {
		return nil
	}
	return g[idx]
}

// Cell returns the cell at (row, col), or an empty cell when out of range.
func (g Grid) Cell(row, col int) Cell {
	return g.Row(row).Cell(col)
}

// NewRow builds a row from plain Go values: string, float64, int, or nil.
// It is mostly useful for tests and in-memory fixtures.
func NewRow(values ...any) Row {
	row := make(Row, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case string:
			row[i] = Text(x)
		case float64:
			row[i] = Number(x)
		case int:
			row[i] = Number(float64(x))
		case Cell:
			row[i] = x
		}
	}
	return row.TrimRight()
}

// TrimRight drops trailing empty cells.
func (r Row) TrimRight() Row {
	n := len(r)
	for n > 0 && r[n-1].IsEmpty() {
		n--
	}
	return r[:n]
}
