package precios

import (
	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/carloss4dv/agro-precios/pkg/precios/parser"
)

// ConvertToPerKg returns copies of records with every price expressed in
// euros per kilogram, according to the unit suffix of each product name.
// The input is left untouched. Applying it twice converts twice.
func ConvertToPerKg(records []models.PriceRecord) []models.PriceRecord {
	out := make([]models.PriceRecord, len(records))
	for i, rec := range records {
		out[i] = rec.Clone()
		factor, _ := parser.ConversionFactor(rec.Producto)
		if factor == 1 {
			continue
		}
		for j, e := range out[i].Precios {
			if e.Valor == nil {
				continue
			}
			v := parser.Round(*e.Valor * factor)
			out[i].Precios[j].Valor = &v
		}
	}
	return out
}
