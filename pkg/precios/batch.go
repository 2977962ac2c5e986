package precios

import (
	"context"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds ParseYears when BatchOptions.Concurrency is unset.
const DefaultConcurrency = 4

// Source resolves a year to a local workbook, downloading it when needed.
type Source interface {
	FetchOrReuse(ctx context.Context, year int, dir string) (string, error)
}

// BatchOptions configures ParseYears.
type BatchOptions struct {
	Options
	// Dir is where workbooks are stored.
	Dir string
	// Concurrency is the number of years processed at once.
	Concurrency int
	// ConvertPerKg applies ConvertToPerKg to every year's records.
	ConvertPerKg bool
}

// YearResult is the outcome for one year of a batch.
type YearResult struct {
	Year    int
	Path    string
	Records []models.PriceRecord
	Err     error
}

// ParseYears fetches and parses several years concurrently. Results keep
// the order of years; a failing year records its error and does not stop
// the others. The returned error is non-nil only when ctx ends first.
func ParseYears(ctx context.Context, src Source, years []int, opts BatchOptions) ([]YearResult, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	log := opts.logger()

	results := make([]YearResult, len(years))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, year := range years {
		results[i].Year = year
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := &results[i]

			path, err := src.FetchOrReuse(ctx, year, opts.Dir)
			if err != nil {
				res.Err = err
				log.Warn("fetch failed", "year", year, "error", err)
				return nil
			}
			res.Path = path

			yopts := opts.Options
			yopts.Logger = log.With("year", year)
			records, err := ParseFile(path, yopts)
			if err != nil {
				res.Err = err
				log.Warn("parse failed", "year", year, "error", err)
				return nil
			}
			if opts.ConvertPerKg {
				records = ConvertToPerKg(records)
			}
			res.Records = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
