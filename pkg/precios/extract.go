package precios

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/carloss4dv/agro-precios/pkg/precios/parser"
	"github.com/xuri/excelize/v2"
)

// weekLabelFormat names a weekly entry by its 1-based column position.
const weekLabelFormat = "Semana %02d"

// ParseFile extracts price records from an xlsx workbook. Only a missing or
// unreadable file is an error; a sheet without the expected header block
// yields no records.
func ParseFile(path string, opts Options) ([]models.PriceRecord, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewExtractionError(path, "", "open", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	defer f.Close()

	sheetName, err := selectSheet(f, opts.Sheet)
	if err != nil {
		return nil, NewExtractionError(path, opts.Sheet, "sheet", err)
	}

	grid, err := parser.ReadGrid(f, sheetName)
	if err != nil {
		return nil, NewExtractionError(path, sheetName, "cells", err)
	}

	opts.Logger = opts.logger().With("file", filepath.Base(path), "sheet", sheetName)
	return ParseGrid(grid, opts), nil
}

// selectSheet returns want when the workbook has it, or the first sheet when
// want is empty.
func selectSheet(f *excelize.File, want string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoSheet
	}
	if want == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoSheet, want)
}

// ParseGrid extracts price records from an in-memory sheet. It never fails:
// unrecognized layouts return nil and unreadable cells fall back to
// extrapolated dates or missing values.
func ParseGrid(grid models.Grid, opts Options) []models.PriceRecord {
	log := opts.logger()

	bounds := parser.DataBounds(grid)
	if bounds.Empty() {
		log.Debug("empty sheet")
		return nil
	}
	log.Debug("sheet bounds", "range", bounds.Range(), "density", bounds.Density())

	hdr, ok := parser.LocateHeader(grid)
	if !ok {
		log.Debug("header rows not found")
		return nil
	}
	if log.Enabled(context.Background(), slog.LevelDebug) {
		for name, rows := range parser.IdentifySectors(grid, hdr.DataStart) {
			log.Debug("sector found", "sector", name, "rows", rows)
		}
	}

	year, ok := parser.ExtractYear(grid)
	if !ok {
		year = opts.now().Year()
		log.Debug("no year in sheet heading, using current year", "year", year)
	}

	weeks := parser.ResolveWeekDates(grid.Row(hdr.DateRow), year)
	for _, w := range weeks {
		if w.Estimated {
			log.Debug("week date estimated", "col", w.Col, "date", w.Date.Format(time.DateOnly))
		}
	}

	corrector := parser.NewCorrector(opts.Rules)
	var (
		state   parser.ScanState
		class   parser.RowClass
		records []models.PriceRecord
	)
	for r := hdr.DataStart; r <= bounds.MaxRow; r++ {
		row := grid[r]
		state, class = state.Step(row)
		if class.Kind != parser.RowProduct {
			continue
		}

		p := class.Product
		sector, rule := corrector.Correct(state.Sector, p.Name, p.Spec)
		if sector != state.Sector {
			log.Debug("sector corrected", "product", p.Name, "from", state.Sector, "to", sector, "rule", rule)
		}

		prices := weeklyEntries(row, weeks, opts.Filter)
		if opts.Filter != nil && len(prices) == 0 {
			continue
		}
		records = append(records, models.PriceRecord{
			Sector:         sector,
			Producto:       p.Name,
			Especificacion: p.Spec,
			Precios:        prices,
		})
	}

	log.Info("price sheet parsed", "year", year, "weeks", len(weeks), "records", len(records))
	return records
}

// weeklyEntries pairs each weekly column of row with its canonical date.
func weeklyEntries(row models.Row, weeks []parser.WeekColumn, filter *models.FilterSpec) []models.WeeklyEntry {
	entries := make([]models.WeeklyEntry, 0, len(weeks))
	for i, w := range weeks {
		if filter != nil && !filter.Matches(w.Date) {
			continue
		}
		entries = append(entries, models.WeeklyEntry{
			Semana: fmt.Sprintf(weekLabelFormat, i+1),
			Fecha:  w.Date,
			Valor:  parser.ParseValue(row.Cell(w.Col)),
		})
	}
	return entries
}
