package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/carloss4dv/agro-precios/pkg/precios"
	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/carloss4dv/agro-precios/pkg/precios/output"
	"github.com/spf13/cobra"
)

type parseFlags struct {
	sheet  string
	date   string
	perKg  bool
	format string
	out    string
	pretty bool
	bom    bool
}

func newParseCmd() *cobra.Command {
	var f parseFlags

	cmd := &cobra.Command{
		Use:   "parse [input.xlsx]",
		Short: "Extract price records from a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Worksheet name (default: first sheet)")
	cmd.Flags().StringVar(&f.date, "date", "", "Keep only entries dated YYYY-MM-DD")
	cmd.Flags().BoolVar(&f.perKg, "per-kg", false, "Convert prices to €/kg")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: json, csv")
	cmd.Flags().StringVarP(&f.out, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&f.bom, "bom", false, "Prefix CSV output with a UTF-8 BOM")
	return cmd
}

func runParse(cmd *cobra.Command, input string, f parseFlags) error {
	opts := precios.Options{
		Sheet:  cfg.Parse.Sheet,
		Logger: log.Slog(),
	}
	if f.sheet != "" {
		opts.Sheet = f.sheet
	}
	if f.date != "" {
		d, err := time.Parse(time.DateOnly, f.date)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", f.date, err)
		}
		filter := models.NewFilter(d)
		opts.Filter = &filter
	}

	records, err := precios.ParseFile(input, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if f.perKg || cfg.Parse.ConvertPerKg {
		records = precios.ConvertToPerKg(records)
	}

	return emit(records, f)
}

// emit serializes records in the requested format and writes them out.
func emit(records []models.PriceRecord, f parseFlags) error {
	format := cfg.Output.Format
	if f.format != "" {
		format = f.format
	}
	path := cfg.Output.Path
	if f.out != "" {
		path = f.out
	}

	switch format {
	case "json":
		data, err := output.ToJSON(records, f.pretty || cfg.Output.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return writeOutput(path, data)
	case "csv":
		var buf bytes.Buffer
		if err := output.WriteCSV(&buf, records, output.CSVOptions{BOM: f.bom}); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return writeOutput(path, bytes.TrimRight(buf.Bytes(), "\n"))
	default:
		return fmt.Errorf("invalid format: %s (must be json or csv)", format)
	}
}
