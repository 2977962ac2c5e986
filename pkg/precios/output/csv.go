package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
)

// CSVHeader is the column layout written by WriteCSV.
var CSVHeader = []string{"sector", "producto", "especificacion", "semana", "fecha", "valor"}

// utf8BOM makes spreadsheet applications detect the encoding.
const utf8BOM = "\ufeff"

// CSVOptions configures WriteCSV.
type CSVOptions struct {
	// BOM prefixes the output with a UTF-8 byte order mark.
	BOM bool
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// WriteCSV writes one line per weekly entry. Empty dates and values are
// written as empty fields.
func WriteCSV(w io.Writer, records []models.PriceRecord, opts CSVOptions) error {
	if opts.BOM {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, r := range records {
		for _, e := range r.Precios {
			line := []string{r.Sector, r.Producto, r.Especificacion, e.Semana, "", ""}
			if e.HasDate() {
				line[4] = e.Fecha.Format("2006-01-02")
			}
			if e.HasValue() {
				line[5] = strconv.FormatFloat(*e.Valor, 'f', -1, 64)
			}
			if err := cw.Write(line); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
