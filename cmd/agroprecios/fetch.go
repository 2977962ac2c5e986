package main

import (
	"fmt"
	"strconv"

	"github.com/carloss4dv/agro-precios/pkg/precios/fetch"
	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [year]",
		Short: "Download the workbook of a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			if dir == "" {
				dir = cfg.Parse.DownloadDir
			}

			fetcher := newFetcher()
			var path string
			if force {
				path, err = fetcher.FetchSourceFile(cmd.Context(), year, dir)
			} else {
				path, err = fetcher.FetchOrReuse(cmd.Context(), year, dir)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Destination directory (default: parse.download_dir)")
	cmd.Flags().BoolVar(&force, "force", false, "Download even when the file already exists")
	return cmd
}

func newFetcher() *fetch.Fetcher {
	opts := cfg.FetchOptions()
	opts.Logger = log.Slog()
	return fetch.New(opts)
}
