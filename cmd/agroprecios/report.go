package main

import (
	"fmt"

	"github.com/carloss4dv/agro-precios/internal/report"
	"github.com/carloss4dv/agro-precios/pkg/precios"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var (
		year int
		out  string
	)

	cmd := &cobra.Command{
		Use:   "report [input.xlsx]",
		Short: "Summarize sectors and date anomalies of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := precios.ParseFile(args[0], precios.Options{Sheet: cfg.Parse.Sheet, Logger: log.Slog()})
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			rep := report.Check(records, year)
			if dirty := rep.Dirty(); len(dirty) > 0 {
				log.Warn("date anomalies found", "products", len(dirty), "of", len(rep.Records))
			}
			return writeOutput(out, []byte(report.RenderMarkdown(rep)))
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Expected year (default: inferred from the dates)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}
