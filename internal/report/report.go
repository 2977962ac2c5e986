// Package report checks extracted price records for date anomalies and
// summarizes them per sector.
package report

import (
	"sort"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
)

// Weekly cadence bounds, in days, between consecutive entries.
const (
	MinCadenceDays = 6
	MaxCadenceDays = 8
)

// RecordQuality counts the date anomalies of one record.
type RecordQuality struct {
	Sector   string
	Producto string
	Entries  int
	// WithValue is the number of entries carrying a price.
	WithValue int
	// InvalidDates are entries without a resolved date.
	InvalidDates int
	// YearMismatch are dates more than one year away from the file year.
	YearMismatch int
	// OutOfOrder are consecutive pairs whose date goes backwards.
	OutOfOrder int
	// CadenceGaps are consecutive pairs not 6 to 8 days apart.
	CadenceGaps int
}

// Clean reports whether the record has no anomalies.
func (q RecordQuality) Clean() bool {
	return q.InvalidDates == 0 && q.YearMismatch == 0 && q.OutOfOrder == 0 && q.CadenceGaps == 0
}

// SectorSummary aggregates the records of one sector.
type SectorSummary struct {
	Sector    string
	Products  int
	Entries   int
	WithValue int
}

// Report is the quality assessment of one dataset.
type Report struct {
	Year    int
	Records []RecordQuality
	Sectors []SectorSummary
}

// Dirty returns the records with at least one anomaly.
func (r Report) Dirty() []RecordQuality {
	var out []RecordQuality
	for _, q := range r.Records {
		if !q.Clean() {
			out = append(out, q)
		}
	}
	return out
}

// Check assesses records against year. A zero year is inferred from the
// dates themselves.
func Check(records []models.PriceRecord, year int) Report {
	if year == 0 {
		year = InferYear(records)
	}

	rep := Report{Year: year, Records: make([]RecordQuality, 0, len(records))}
	for _, rec := range records {
		rep.Records = append(rep.Records, checkRecord(rec, year))
	}
	rep.Sectors = Sectors(records)
	return rep
}

func checkRecord(rec models.PriceRecord, year int) RecordQuality {
	q := RecordQuality{Sector: rec.Sector, Producto: rec.Producto, Entries: len(rec.Precios)}

	var prev models.WeeklyEntry
	for i, e := range rec.Precios {
		if e.HasValue() {
			q.WithValue++
		}
		if !e.HasDate() {
			q.InvalidDates++
			continue
		}
		if d := e.Fecha.Year() - year; d > 1 || d < -1 {
			q.YearMismatch++
		}
		if i > 0 && prev.HasDate() {
			days := int(e.Fecha.Sub(prev.Fecha).Hours() / 24)
			if days < 0 {
				q.OutOfOrder++
			} else if days < MinCadenceDays || days > MaxCadenceDays {
				q.CadenceGaps++
			}
		}
		prev = e
	}
	return q
}

// InferYear returns the most frequent year among resolved dates, the
// earliest one on ties, or 0 when there are none.
func InferYear(records []models.PriceRecord) int {
	counts := make(map[int]int)
	for _, rec := range records {
		for _, e := range rec.Precios {
			if e.HasDate() {
				counts[e.Fecha.Year()]++
			}
		}
	}

	best, bestCount := 0, 0
	for y, n := range counts {
		if n > bestCount || (n == bestCount && y < best) {
			best, bestCount = y, n
		}
	}
	return best
}

// Sectors summarizes records per sector, sorted by sector name.
func Sectors(records []models.PriceRecord) []SectorSummary {
	idx := make(map[string]int)
	var out []SectorSummary
	for _, rec := range records {
		i, ok := idx[rec.Sector]
		if !ok {
			i = len(out)
			idx[rec.Sector] = i
			out = append(out, SectorSummary{Sector: rec.Sector})
		}
		out[i].Products++
		out[i].Entries += len(rec.Precios)
		for _, e := range rec.Precios {
			if e.HasValue() {
				out[i].WithValue++
			}
		}
	}

	sort.Slice(out, func(a, b int) bool { return out[a].Sector < out[b].Sector })
	return out
}
