package parser

import (
	"testing"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "platano", Fold("Plátano"))
	assert.Equal(t, "champinon", Fold("CHAMPIÑÓN"))
	assert.Equal(t, "lacteos", Fold("LÁCTEOS"))
	assert.True(t, ContainsFold("Calabacín (€/100kg)", "CALABACIN"))
}

func TestIsUpper(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"CEREALES", true},
		{"LÁCTEOS", true},
		{"AVES, HUEVOS, CAZA", true},
		{"Trigo blando", false},
		{"(1)", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUpper(tt.in), tt.in)
	}
}

func TestCellFloat(t *testing.T) {
	tests := []struct {
		name string
		cell models.Cell
		want float64
		ok   bool
	}{
		{"number", models.Number(12.5), 12.5, true},
		{"comma decimal", models.Text("12,5"), 12.5, true},
		{"thousands and comma", models.Text("1.234,56"), 1234.56, true},
		{"dot decimal", models.Text("12.5"), 12.5, true},
		{"leading number", models.Text("45 (p)"), 45, true},
		{"text", models.Text("s/c"), 0, false},
		{"empty", models.Cell{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CellFloat(tt.cell)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
