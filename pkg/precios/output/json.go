// Package output serializes price records.
package output

import (
	"encoding/json"
	"time"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
)

type recordJSON struct {
	Sector         string      `json:"sector"`
	Producto       string      `json:"producto"`
	Especificacion string      `json:"especificacion"`
	Precios        []entryJSON `json:"precios"`
}

type entryJSON struct {
	Semana string   `json:"semana"`
	Fecha  *string  `json:"fecha"`
	Valor  *float64 `json:"valor"`
}

// ToJSON serializes records with dates as YYYY-MM-DD. Unresolved dates and
// missing values are null.
func ToJSON(records []models.PriceRecord, pretty bool) ([]byte, error) {
	out := make([]recordJSON, len(records))
	for i, r := range records {
		out[i] = recordJSON{
			Sector:         r.Sector,
			Producto:       r.Producto,
			Especificacion: r.Especificacion,
			Precios:        make([]entryJSON, len(r.Precios)),
		}
		for j, e := range r.Precios {
			out[i].Precios[j] = entryJSON{Semana: e.Semana, Fecha: formatDate(e.Fecha), Valor: e.Valor}
		}
	}

	if pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func formatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
