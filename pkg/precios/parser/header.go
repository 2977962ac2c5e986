package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
)

const (
	// headerScanRows bounds the search for the week-label row.
	headerScanRows = 20
	// dateRowLookahead is how many rows below the week row may hold the dates.
	dateRowLookahead = 2
	// yearScanRows bounds the search for the sheet's reference year.
	yearScanRows = 10
	// minHeaderCells is the minimum populated width of a header row.
	minHeaderCells = 3

	weekMarker = "semana"
)

var yearRe = regexp.MustCompile(`\b(19[5-9]\d|20\d{2})\b`)

// HeaderRows locates the header block of a price sheet (0-based row indexes).
type HeaderRows struct {
	WeekRow   int
	DateRow   int
	DataStart int
}

// LocateHeader finds the week-label row within the first rows of the grid and
// the date row right below it. It returns false when either is missing.
func LocateHeader(g models.Grid) (HeaderRows, bool) {
	for i := 0; i < len(g) && i < headerScanRows; i++ {
		row := g[i]
		if len(row) < minHeaderCells || !rowHasText(row, isWeekLabel) {
			continue
		}

		for j := i + 1; j <= i+dateRowLookahead && j < len(g); j++ {
			dateRow := g[j]
			if len(dateRow) < minHeaderCells {
				continue
			}
			if rowHasText(dateRow, looksLikeDateRange) {
				return HeaderRows{WeekRow: i, DateRow: j, DataStart: j + 1}, true
			}
		}
		return HeaderRows{}, false
	}
	return HeaderRows{}, false
}

// ExtractYear returns the first plausible calendar year found in the first
// rows of the grid.
func ExtractYear(g models.Grid) (int, bool) {
	for i := 0; i < len(g) && i < yearScanRows; i++ {
		m := yearRe.FindString(g[i].Join(" "))
		if m == "" {
			continue
		}
		year, err := strconv.Atoi(m)
		if err == nil {
			return year, true
		}
	}
	return 0, false
}

func rowHasText(row models.Row, pred func(string) bool) bool {
	for _, c := range row {
		if t, ok := CellText(c); ok && pred(t) {
			return true
		}
	}
	return false
}

func isWeekLabel(s string) bool {
	return strings.Contains(Fold(s), weekMarker)
}

func looksLikeDateRange(s string) bool {
	return strings.ContainsAny(s, "/-")
}
