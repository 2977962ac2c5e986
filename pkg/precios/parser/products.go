package parser

import (
	"regexp"
	"strings"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
)

var (
	noteCodeRe    = regexp.MustCompile(`^\(\d+\)$`)
	spellingFixes = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`(?i)\bAceie\b`), "Aceite"},
	}
)

// Product is the name and qualifier taken from a product row.
type Product struct {
	Name string
	Spec string
}

// IsProductRow reports whether row carries a price in a weekly column and a
// product-like (not fully upper-case) label in one of its first three cells.
func IsProductRow(row models.Row) bool {
	if len(row) <= FirstValueColumn {
		return false
	}
	return hasNumericValue(row) && hasProductText(row)
}

// ExtractProduct returns the product name and especificación of a row. The
// name comes from the third column when present, otherwise from the first
// or second; the especificación is the second column only in the former case.
func ExtractProduct(row models.Row) (Product, bool) {
	if name, ok := CellText(row.Cell(2)); ok {
		return Product{
			Name: FixSpelling(name),
			Spec: strings.TrimSpace(row.Cell(1).String()),
		}, true
	}

	for col := 0; col <= 1; col++ {
		text, ok := CellText(row.Cell(col))
		if !ok {
			continue
		}
		text = FixSpelling(text)
		if !IsUpper(text) && !noteCodeRe.MatchString(text) {
			return Product{Name: text}, true
		}
	}
	return Product{}, false
}

// FixSpelling repairs known typos found in product labels.
func FixSpelling(s string) string {
	for _, f := range spellingFixes {
		s = f.re.ReplaceAllString(s, f.repl)
	}
	return s
}

func hasNumericValue(row models.Row) bool {
	for col := FirstValueColumn; col < len(row); col++ {
		if _, ok := CellFloat(row[col]); ok {
			return true
		}
	}
	return false
}

func hasProductText(row models.Row) bool {
	if text, ok := CellText(row.Cell(2)); ok && !IsUpper(text) {
		return true
	}
	for col := 0; col <= 1; col++ {
		text, ok := CellText(row.Cell(col))
		if ok && !noteCodeRe.MatchString(text) && !IsUpper(text) {
			return true
		}
	}
	return false
}
