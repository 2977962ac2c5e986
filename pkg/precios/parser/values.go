package parser

import (
	"strings"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
)

// missingValue is the placeholder the source uses for weeks without a quote.
const missingValue = "-"

// ParseValue returns the price held by c, or nil when the cell is empty,
// the "-" placeholder, unparsable, or not strictly positive.
func ParseValue(c models.Cell) *float64 {
	if c.Kind == models.CellText && strings.TrimSpace(c.Text) == missingValue {
		return nil
	}
	v, ok := CellFloat(c)
	if !ok || v <= 0 {
		return nil
	}
	return &v
}
