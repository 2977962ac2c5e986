// Package precios extracts weekly national average prices from the MAPA
// "Precios Medios Nacionales" workbooks.
package precios

import (
	"io"
	"log/slog"
	"time"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/carloss4dv/agro-precios/pkg/precios/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Sheet names the worksheet to read. Empty selects the first sheet.
	Sheet string
	// Filter keeps only the entries dated exactly on the given day.
	// Records with no matching entry are dropped.
	Filter *models.FilterSpec
	// Rules overrides the sector correction table. Nil uses parser.DefaultRules.
	Rules []parser.Rule
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
	// Now supplies the fallback reference year. Nil uses time.Now.
	Now func() time.Time
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
