package parser

import (
	"math"
	"regexp"
	"strings"
)

// Per-kilogram factors for the unit suffixes found in product names.
const (
	PerTonne      = 0.001
	PerHundredKg  = 0.01
	PerHectolitre = 0.01 // treated as 100 kg
	PerHundredUd  = 0.01
	PerDozen      = 1.0 / 12
	// CarcassYield converts 100 kg carcass weight to edible kilograms.
	CarcassYield = 0.55 / 100
	// LiveYield converts 100 kg live weight to edible kilograms.
	LiveYield = 0.60 / 100
	// PerUnit assumes a 20 kg reference animal (piglets).
	PerUnit = 1.0 / 20
)

// ConvertedDecimals is the precision of converted prices.
const ConvertedDecimals = 4

var unitSuffixRe = regexp.MustCompile(`\((.*?)\)`)

var unitFactors = map[string]float64{
	"€/t":          PerTonne,
	"€/100kg":      PerHundredKg,
	"€/hectolitro": PerHectolitre,
	"€/hl":         PerHectolitre,
	"€/100ud":      PerHundredUd,
	"€/docena":     PerDozen,
	"€/kg":         1,
}

// UnitSuffix returns the last parenthesized unit token of a product name
// with whitespace removed and letters lower-cased, e.g. "(€/100 kg)" →
// "€/100kg". Tokens without a '/' such as "(normal)" or a footnote "(1)" are
// not units.
func UnitSuffix(product string) string {
	matches := unitSuffixRe.FindAllStringSubmatch(product, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		if strings.Contains(matches[i][1], "/") {
			return strings.ToLower(strings.Join(strings.Fields(matches[i][1]), ""))
		}
	}
	return ""
}

// ConversionFactor returns the multiplier that expresses a price of product
// in euros per kilogram. The unit suffix wins over the carcass, live-weight
// and per-unit name markers. ok is false when nothing was recognized, in
// which case the factor is 1.
func ConversionFactor(product string) (factor float64, ok bool) {
	if f, found := unitFactors[UnitSuffix(product)]; found {
		return f, true
	}
	switch {
	case strings.Contains(product, "Canal"):
		return CarcassYield, true
	case strings.Contains(product, "Vivo"):
		return LiveYield, true
	case strings.Contains(product, "unidad"):
		return PerUnit, true
	default:
		return 1, false
	}
}

// Round rounds v to ConvertedDecimals places.
func Round(v float64) float64 {
	p := math.Pow10(ConvertedDecimals)
	return math.Round(v*p) / p
}
