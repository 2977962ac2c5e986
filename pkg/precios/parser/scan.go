package parser

import "github.com/carloss4dv/agro-precios/pkg/precios/models"

// RowKind is what a scanned row turned out to be.
type RowKind int

const (
	RowNoise RowKind = iota
	RowSector
	RowProduct
)

// RowClass is the outcome of scanning one row.
type RowClass struct {
	Kind    RowKind
	Product Product
}

// ScanState is the accumulator threaded through the row scan: the sector
// header most recently seen.
type ScanState struct {
	Sector string
}

// Step classifies row under the current state and returns the next state.
// Sector rows update the state and are never products.
func (s ScanState) Step(row models.Row) (ScanState, RowClass) {
	if len(row) == 0 {
		return s, RowClass{}
	}
	if name, ok := DetectSector(row); ok {
		return ScanState{Sector: name}, RowClass{Kind: RowSector}
	}
	if s.Sector == "" || !IsProductRow(row) {
		return s, RowClass{}
	}
	p, ok := ExtractProduct(row)
	if !ok {
		return s, RowClass{}
	}
	return s, RowClass{Kind: RowProduct, Product: p}
}
