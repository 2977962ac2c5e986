// Package models defines data structures for price sheet extraction.
package models

import "strconv"

// CellKind is the dynamic type of a grid cell.
type CellKind int

const (
	// CellEmpty marks a blank or missing cell.
	CellEmpty CellKind = iota
	// CellNumber marks a numeric cell (including raw date serials).
	CellNumber
	// CellText marks a string cell.
	CellText
)

// Cell is a single heterogeneous spreadsheet value.
type Cell struct {
	Kind CellKind
	Num  float64
	Text string
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: CellNumber, Num: v}
}

// Text returns a string cell. An empty string yields an empty cell.
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String renders the cell the way it would appear when joined into row text.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}
