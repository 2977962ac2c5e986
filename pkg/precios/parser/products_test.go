package parser

import (
	"testing"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/stretchr/testify/assert"
)

func TestIsProductRow(t *testing.T) {
	tests := []struct {
		name string
		row  models.Row
		want bool
	}{
		{"name in third column", models.NewRow("", "Panificable", "Trigo blando (€/t)", 230.5), true},
		{"comma value", models.NewRow("", "", "Cebada (€/t)", "-", "201,3"), true},
		{"name in first column", models.NewRow("Leche de vaca (€/100kg)", "", "", 45.1), true},
		{"no value", models.NewRow("", "", "Trigo blando (€/t)", "-", "n.d."), false},
		{"upper case label", models.NewRow("", "", "TOTAL", 12), false},
		{"note code", models.NewRow("(1)", "", "", 3), false},
		{"too short", models.NewRow("", "Trigo", 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsProductRow(tt.row))
		})
	}
}

func TestExtractProduct(t *testing.T) {
	p, ok := ExtractProduct(models.NewRow("", " Panificable ", "Trigo blando (€/t)", 230.5))
	assert.True(t, ok)
	assert.Equal(t, Product{Name: "Trigo blando (€/t)", Spec: "Panificable"}, p)

	p, ok = ExtractProduct(models.NewRow("(1)", "Leche de oveja (€/100kg)", "", 90))
	assert.True(t, ok)
	assert.Equal(t, Product{Name: "Leche de oveja (€/100kg)"}, p)

	p, ok = ExtractProduct(models.NewRow("", "Virgen extra", "Aceie de oliva (€/100kg)", 400))
	assert.True(t, ok)
	assert.Equal(t, "Aceite de oliva (€/100kg)", p.Name)

	_, ok = ExtractProduct(models.NewRow("(2)", "", "", 4))
	assert.False(t, ok)
}

func TestFixSpelling(t *testing.T) {
	assert.Equal(t, "Aceite de girasol", FixSpelling("Aceie de girasol"))
	assert.Equal(t, "Aceite crudo", FixSpelling("ACEIE crudo"))
	assert.Equal(t, "Aceiera", FixSpelling("Aceiera"))
}
