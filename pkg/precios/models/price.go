package models

import "time"

// WeeklyEntry is one weekly observation of a product price.
type WeeklyEntry struct {
	// Semana is the column-derived label, "Semana NN".
	Semana string `json:"semana"`
	// Fecha is the canonical end date of the week; zero when unresolved.
	Fecha time.Time `json:"fecha"`
	// Valor is the price, nil when the observation is absent.
	Valor *float64 `json:"valor"`
}

// HasValue reports whether the entry carries a price.
func (e WeeklyEntry) HasValue() bool {
	return e.Valor != nil
}

// HasDate reports whether the entry carries a resolved date.
func (e WeeklyEntry) HasDate() bool {
	return !e.Fecha.IsZero()
}

// PriceRecord is one product row of the extracted dataset.
type PriceRecord struct {
	// Sector is the corrected sector name.
	Sector string `json:"sector"`
	// Producto is the product name including its unit suffix, e.g. "(€/t)".
	Producto string `json:"producto"`
	// Especificacion is the free-text qualifier, possibly empty.
	Especificacion string `json:"especificacion"`
	// Precios holds one entry per date column, in column order.
	Precios []WeeklyEntry `json:"precios"`
}

// Clone returns a deep copy of the record.
func (r PriceRecord) Clone() PriceRecord {
	out := r
	out.Precios = make([]WeeklyEntry, len(r.Precios))
	for i, e := range r.Precios {
		out.Precios[i] = e
		if e.Valor != nil {
			v := *e.Valor
			out.Precios[i].Valor = &v
		}
	}
	return out
}

// FilterSpec selects entries whose date falls exactly on Day/Month/Year.
type FilterSpec struct {
	Day   int `json:"dia"`
	Month int `json:"mes"`
	Year  int `json:"anio"`
}

// NewFilter builds a FilterSpec from a calendar date.
func NewFilter(t time.Time) FilterSpec {
	return FilterSpec{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// Matches reports whether t falls on the filter's date. Zero times never match.
func (f FilterSpec) Matches(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.Day() == f.Day && int(t.Month()) == f.Month && t.Year() == f.Year
}
