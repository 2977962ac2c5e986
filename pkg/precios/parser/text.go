// Package parser provides the heuristics that turn a price sheet grid into records.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FirstValueColumn is the 0-based index of the first weekly column (column D).
const FirstValueColumn = 3

var leadingFloatRe = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// Fold lower-cases s and strips combining marks, so "Plátano" folds to "platano".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// ContainsFold reports whether sub occurs in s ignoring case and diacritics.
func ContainsFold(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}

// containsAny reports whether folded text contains any of the folded keywords.
func containsAny(folded string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(folded, k) {
			return true
		}
	}
	return false
}

// IsUpper reports whether s has at least one letter and no lower-case letters.
func IsUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// HasDigit reports whether s contains a decimal digit.
func HasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// CellText returns the trimmed text of a string cell.
func CellText(c models.Cell) (string, bool) {
	if c.Kind != models.CellText {
		return "", false
	}
	t := strings.TrimSpace(c.Text)
	return t, t != ""
}

// CellFloat returns the numeric value of a cell, accepting comma-decimal
// strings such as "12,5" and "1.234,5".
func CellFloat(c models.Cell) (float64, bool) {
	switch c.Kind {
	case models.CellNumber:
		return c.Num, true
	case models.CellText:
		return parseLocaleFloat(c.Text)
	default:
		return 0, false
	}
}

// parseLocaleFloat parses the leading number of s after converting a comma
// decimal separator to a period. Dots before a comma are thousands separators.
func parseLocaleFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		if strings.Index(s, ".") < strings.LastIndex(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	m := leadingFloatRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
