package precios

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/carloss4dv/agro-precios/pkg/precios/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleGrid() models.Grid {
	return models.Grid{
		models.NewRow("PRECIOS MEDIOS NACIONALES 2024"),
		models.NewRow(),
		models.NewRow("", "", "", "Semana 1", "Semana 2", "Semana 3"),
		models.NewRow("", "", "", "01/01 - 07/01", "08/01 - 14/01", "15/01 - 21/01"),
		models.NewRow("CEREALES"),
		models.NewRow("", "Panificable", "Trigo blando (€/t)", 230.5, "240,5", "-"),
		models.NewRow("VINO"),
		models.NewRow("", "Convencional", "Aceite de girasol refinado convencional (€/100kg)", 150, 155, 160),
		models.NewRow("", "", "Vino tinto sin DOP/IGP (€/hectolitro)", 30, 31, 0),
		models.NewRow("OVINO (5)"),
		models.NewRow("", "", "Cordero 9-19 kg Canal (€/100kg)", 700, 710, -5),
		models.NewRow("(1) Precios sin IVA"),
	}
}

func ptr(v float64) *float64 { return &v }

func TestParseGrid(t *testing.T) {
	records := ParseGrid(sampleGrid(), DefaultOptions())
	require.Len(t, records, 4)

	trigo := records[0]
	assert.Equal(t, "CEREALES", trigo.Sector)
	assert.Equal(t, "Trigo blando (€/t)", trigo.Producto)
	assert.Equal(t, "Panificable", trigo.Especificacion)
	assert.Equal(t, []models.WeeklyEntry{
		{Semana: "Semana 01", Fecha: date(2024, time.January, 7), Valor: ptr(230.5)},
		{Semana: "Semana 02", Fecha: date(2024, time.January, 14), Valor: ptr(240.5)},
		{Semana: "Semana 03", Fecha: date(2024, time.January, 21), Valor: nil},
	}, trigo.Precios)

	aceite := records[1]
	assert.Equal(t, parser.SectorAceites, aceite.Sector)
	assert.Equal(t, "Convencional", aceite.Especificacion)

	vino := records[2]
	assert.Equal(t, parser.SectorVino, vino.Sector)
	assert.Nil(t, vino.Precios[2].Valor)

	cordero := records[3]
	assert.Equal(t, parser.SectorOvino, cordero.Sector)
	assert.Nil(t, cordero.Precios[2].Valor)

	for _, r := range records {
		assert.Len(t, r.Precios, 3)
		assert.NotEmpty(t, r.Sector)
	}
}

func TestParseGridFilter(t *testing.T) {
	filter := models.NewFilter(date(2024, time.January, 14))
	records := ParseGrid(sampleGrid(), Options{Filter: &filter})
	require.Len(t, records, 4)
	for _, r := range records {
		require.Len(t, r.Precios, 1)
		assert.Equal(t, "Semana 02", r.Precios[0].Semana)
		assert.Equal(t, date(2024, time.January, 14), r.Precios[0].Fecha)
	}

	none := models.NewFilter(date(2024, time.March, 1))
	assert.Empty(t, ParseGrid(sampleGrid(), Options{Filter: &none}))
}

func TestParseGridNoHeader(t *testing.T) {
	g := models.Grid{
		models.NewRow("CEREALES"),
		models.NewRow("", "", "Trigo blando (€/t)", 230.5, 240.5),
	}
	assert.Empty(t, ParseGrid(g, DefaultOptions()))
	assert.Empty(t, ParseGrid(nil, DefaultOptions()))
}

func TestParseGridYearFallback(t *testing.T) {
	g := sampleGrid()[1:]
	records := ParseGrid(g, Options{Now: func() time.Time { return date(2021, time.June, 1) }})
	require.NotEmpty(t, records)
	assert.Equal(t, date(2021, time.January, 7), records[0].Precios[0].Fecha)
}

func TestParseGridCustomRules(t *testing.T) {
	rules := []parser.Rule{{
		Name:   "everything-cereal",
		Match:  func(parser.Candidate) bool { return true },
		Sector: parser.SectorCereales,
	}}
	for _, r := range ParseGrid(sampleGrid(), Options{Rules: rules}) {
		assert.Equal(t, parser.SectorCereales, r.Sector)
	}
}

// writeWorkbook saves g into a new workbook under t.TempDir.
func writeWorkbook(t *testing.T, sheet string, g models.Grid) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}

	for r, row := range g {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			switch cell.Kind {
			case models.CellNumber:
				require.NoError(t, f.SetCellValue(sheet, name, cell.Num))
			case models.CellText:
				require.NoError(t, f.SetCellValue(sheet, name, cell.Text))
			}
		}
	}

	path := filepath.Join(t.TempDir(), "precios_medios_2024.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseFile(t *testing.T) {
	path := writeWorkbook(t, "Precios", sampleGrid())

	records, err := ParseFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, ParseGrid(sampleGrid(), DefaultOptions()), records)

	records, err = ParseFile(path, Options{Sheet: "Precios"})
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestParseFileErrors(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)

	bogus := filepath.Join(t.TempDir(), "bogus.xlsx")
	require.NoError(t, os.WriteFile(bogus, []byte("not a workbook"), 0644))
	_, err = ParseFile(bogus, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidFormat)
	var extErr *ExtractionError
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, "open", extErr.Component)

	path := writeWorkbook(t, "Sheet1", sampleGrid())
	_, err = ParseFile(path, Options{Sheet: "Otra"})
	assert.ErrorIs(t, err, ErrNoSheet)
}

func TestParseFileWithoutHeader(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", models.Grid{models.NewRow("Sin datos")})

	records, err := ParseFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, records)
}
