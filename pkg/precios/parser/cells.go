package parser

import (
	"strconv"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid loads a sheet into a Grid. Raw cell values are used so date
// serials stay numeric; string cells stay text even when they look numeric.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = parseValue(raw, typ)
		}
		grid[rowIdx] = cells.TrimRight()
	}

	return grid, nil
}

// parseValue converts a raw cell value into a Cell.
// Numbers become CellNumber, everything else CellText.
func parseValue(raw string, typ excelize.CellType) models.Cell {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.Text(raw)
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.Number(v)
	}
	return models.Text(raw)
}
