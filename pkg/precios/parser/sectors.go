package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
)

// minSectorLen is the exclusive lower bound on a sector label's length.
const minSectorLen = 3

var sectorCodeRe = regexp.MustCompile(`\s*\(\d+\)$`)

// DetectSector reports whether row is a sector-boundary row and returns the
// cleaned sector name. Upper-case labels spread over several leading cells
// are joined with single spaces.
func DetectSector(row models.Row) (string, bool) {
	text, ok := CellText(row.Cell(0))
	if !ok || !isSectorLabel(text) {
		return "", false
	}

	name := text
	if next, ok := CellText(row.Cell(1)); ok && IsUpper(next) {
		parts := []string{text}
		for col := 1; col < len(row); col++ {
			t, ok := CellText(row[col])
			if !ok || !IsUpper(t) {
				break
			}
			parts = append(parts, t)
		}
		name = strings.Join(parts, " ")
	}

	return CleanSectorName(name), true
}

// CleanSectorName strips a trailing parenthesized numeric code, "(12)".
func CleanSectorName(name string) string {
	return strings.TrimSpace(sectorCodeRe.ReplaceAllString(name, ""))
}

func isSectorLabel(text string) bool {
	if !IsUpper(text) || utf8.RuneCountInString(text) <= minSectorLen {
		return false
	}
	if strings.ContainsAny(text[:1], "(*-") {
		return false
	}
	return !HasDigit(CleanSectorName(text))
}

// IdentifySectors maps each sector label found from row start onwards to the
// rows where it appears.
func IdentifySectors(g models.Grid, start int) map[string][]int {
	sectors := make(map[string][]int)
	for i := max(start, 0); i < len(g); i++ {
		if name, ok := DetectSector(g[i]); ok {
			sectors[name] = append(sectors[name], i)
		}
	}
	return sectors
}
