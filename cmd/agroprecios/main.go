// Package main provides the CLI entry point for agroprecios.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/carloss4dv/agro-precios/internal/config"
	"github.com/carloss4dv/agro-precios/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config
	log *logger.Logger

	logOutput io.Writer = os.Stderr
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "agroprecios",
		Short: "Extract weekly national average prices from MAPA workbooks",
		Long: `agroprecios downloads the "Precios Medios Nacionales" workbooks published
by MAPA and extracts their weekly prices as JSON or CSV.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newParseCmd(), newFetchCmd(), newBatchCmd(), newReportCmd())
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	log = logger.NewLoggerTo(logOutput, cfg.Logging.Level)
	if logLevel != "" {
		log.SetLevel(logLevel)
	}
	log = log.With("command", cmd.Name())
	log.Debug("configuration loaded", "path", configPath, "download_dir", cfg.Parse.DownloadDir)
	return nil
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
