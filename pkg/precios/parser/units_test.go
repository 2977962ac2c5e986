package parser

import "testing"

func TestUnitSuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Trigo blando (€/t)", "€/t"},
		{"Cebolla (€/100 kg)", "€/100kg"},
		{"Huevos clase L (€/Docena)", "€/docena"},
		{"Pollo (€/kg) (1)", "€/kg"},
		{"Cerdo cebo (normal) (€/100kg)", "€/100kg"},
		{"Lechuga (normal)", ""},
		{"Flores cortadas", ""},
	}

	for _, tt := range tests {
		if result := UnitSuffix(tt.input); result != tt.expected {
			t.Errorf("UnitSuffix(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestConversionFactor(t *testing.T) {
	tests := []struct {
		product string
		factor  float64
		ok      bool
	}{
		{"Trigo blando (€/t)", 0.001, true},
		{"Aceite de girasol refinado convencional (€/100kg)", 0.01, true},
		{"Vino tinto sin DOP/IGP (€/hectolitro)", 0.01, true},
		{"Vino blanco (€/hl)", 0.01, true},
		{"Lechuga Romana (€/100 ud)", 0.01, true},
		{"Huevos clase L (€/docena)", 1.0 / 12, true},
		{"Cordero Canal (€/100kg)", 0.01, true},
		{"Cerdo cebo (normal) (€/100kg)", 0.01, true},
		{"Bovino Canal (€/100kg canal)", 0.0055, true},
		{"Bovino Vivo (€/100kg vivo)", 0.006, true},
		{"Lechón 20 kg (€/unidad)", 0.05, true},
		{"Pollo (€/kg)", 1, true},
		{"Flores cortadas", 1, false},
	}

	for _, tt := range tests {
		factor, ok := ConversionFactor(tt.product)
		if ok != tt.ok {
			t.Errorf("ConversionFactor(%q) ok = %v, expected %v", tt.product, ok, tt.ok)
		}
		if diff := factor - tt.factor; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("ConversionFactor(%q) = %v, expected %v", tt.product, factor, tt.factor)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(230.5 * 0.001); got != 0.2305 {
		t.Errorf("Round = %v, expected 0.2305", got)
	}
	if got := Round(10.0 / 12); got != 0.8333 {
		t.Errorf("Round = %v, expected 0.8333", got)
	}
}
