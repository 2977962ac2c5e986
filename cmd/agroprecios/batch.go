package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/carloss4dv/agro-precios/pkg/precios"
	"github.com/carloss4dv/agro-precios/pkg/precios/output"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var (
		outDir string
		perKg  bool
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "batch [year...]",
		Short: "Fetch and parse several years concurrently",
		Long:  "Fetch and parse several years concurrently. Without arguments the years come from parse.years.",
		RunE: func(cmd *cobra.Command, args []string) error {
			years := cfg.Parse.Years
			if len(args) > 0 {
				years = make([]int, len(args))
				for i, a := range args {
					y, err := strconv.Atoi(a)
					if err != nil {
						return fmt.Errorf("invalid year %q: %w", a, err)
					}
					years[i] = y
				}
			}
			if len(years) == 0 {
				return fmt.Errorf("no years given")
			}
			if outDir == "" {
				outDir = cfg.Parse.DownloadDir
			}

			results, err := precios.ParseYears(cmd.Context(), newFetcher(), years, precios.BatchOptions{
				Options:      precios.Options{Sheet: cfg.Parse.Sheet, Logger: log.Slog()},
				Dir:          cfg.Parse.DownloadDir,
				Concurrency:  cfg.Parse.Concurrency,
				ConvertPerKg: perKg || cfg.Parse.ConvertPerKg,
			})
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output dir: %w", err)
			}

			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
					log.Error("year failed", "year", res.Year, "error", res.Err)
					continue
				}
				if len(res.Records) == 0 {
					log.Warn("no records extracted", "year", res.Year, "path", res.Path)
				}
				data, err := output.ToJSON(res.Records, pretty || cfg.Output.Pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				path := filepath.Join(outDir, fmt.Sprintf("precios_%d.json", res.Year))
				if err := writeOutput(path, data); err != nil {
					return err
				}
				log.Info("year written", "year", res.Year, "records", len(res.Records), "path", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d years failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for per-year JSON files (default: parse.download_dir)")
	cmd.Flags().BoolVar(&perKg, "per-kg", false, "Convert prices to €/kg")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
