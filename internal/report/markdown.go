package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderMarkdown renders the sector summary and the records with anomalies
// as aligned markdown tables.
func RenderMarkdown(r Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Precios medios nacionales %d\n\n", r.Year)

	sb.WriteString("## Sectores\n\n")
	rows := [][]string{{"Sector", "Productos", "Semanas", "Con precio"}}
	for _, s := range r.Sectors {
		rows = append(rows, []string{s.Sector, strconv.Itoa(s.Products), strconv.Itoa(s.Entries), strconv.Itoa(s.WithValue)})
	}
	writeTable(&sb, rows)

	dirty := r.Dirty()
	fmt.Fprintf(&sb, "\n## Anomalías de fechas (%d de %d productos)\n\n", len(dirty), len(r.Records))
	if len(dirty) == 0 {
		sb.WriteString("Sin anomalías.\n")
		return sb.String()
	}

	rows = [][]string{{"Sector", "Producto", "Sin fecha", "Año distinto", "Desordenadas", "Saltos"}}
	for _, q := range dirty {
		rows = append(rows, []string{
			q.Sector, q.Producto,
			strconv.Itoa(q.InvalidDates), strconv.Itoa(q.YearMismatch),
			strconv.Itoa(q.OutOfOrder), strconv.Itoa(q.CadenceGaps),
		})
	}
	writeTable(&sb, rows)

	return sb.String()
}

// writeTable writes rows (the first one is the header) padded to the display
// width of each column.
func writeTable(sb *strings.Builder, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(escapeCell(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	for r, row := range rows {
		writeRow(sb, row, widths)
		if r == 0 {
			sep := make([]string, len(widths))
			for i, w := range widths {
				sep[i] = strings.Repeat("-", w)
			}
			writeRow(sb, sep, widths)
		}
	}
}

func writeRow(sb *strings.Builder, row []string, widths []int) {
	sb.WriteString("|")
	for i, w := range widths {
		content := ""
		if i < len(row) {
			content = escapeCell(row[i])
		}
		sb.WriteString(" ")
		sb.WriteString(content)
		if pad := w - runewidth.StringWidth(content); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
