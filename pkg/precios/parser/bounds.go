package parser

import (
	"fmt"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/xuri/excelize/v2"
)

// Bounds is the 0-based bounding box of the non-empty cells of a grid.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	NonEmpty       int
}

// Empty reports whether the grid had no data at all.
func (b Bounds) Empty() bool {
	return b.MinRow < 0
}

// Density is the share of non-empty cells inside the box.
func (b Bounds) Density() float64 {
	if b.Empty() {
		return 0
	}
	total := (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
	return float64(b.NonEmpty) / float64(total)
}

// Range renders the box in A1 notation, e.g. "A1:BC240".
func (b Bounds) Range() string {
	if b.Empty() {
		return ""
	}
	start, _ := excelize.CoordinatesToCellName(b.MinCol+1, b.MinRow+1)
	end, _ := excelize.CoordinatesToCellName(b.MaxCol+1, b.MaxRow+1)
	return fmt.Sprintf("%s:%s", start, end)
}

// DataBounds finds the bounding box of non-empty cells.
func DataBounds(g models.Grid) Bounds {
	b := Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range g {
		for colIdx, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			b.NonEmpty++
			if b.MinRow < 0 {
				b.MinRow = rowIdx
			}
			b.MaxRow = rowIdx
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	return b
}
