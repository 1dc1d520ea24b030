package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"kwartal/internal/config"
	"kwartal/internal/dataprocessing"
	"kwartal/internal/exporter"
	"kwartal/internal/infrastructure"
)

func main() {
	inDir := flag.String("in", "", "input directory with quarterly exports (overrides config)")
	outFile := flag.String("out", "", "output CSV path (overrides config)")
	configFile := flag.String("config", "kwartal.yaml", "path to YAML config file")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	// .env values feed the KWARTAL_* environment lookups in config.Load
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *inDir != "" {
		cfg.Pipeline.InputDir = *inDir
	}
	if *outFile != "" {
		cfg.Pipeline.OutputFile = *outFile
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	logger.Info("starting quarterly export normalization",
		slog.String("input_dir", cfg.Pipeline.InputDir),
		slog.String("output_file", cfg.Pipeline.OutputFile))

	processor := dataprocessing.NewProcessor(cfg.Pipeline, logger)
	results, err := processor.Run(context.Background(), cfg.Pipeline.InputDir)
	if err != nil {
		logger.Error("processing run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	master := dataprocessing.Aggregate(results, cfg.Pipeline, logger)
	if len(master) == 0 {
		logger.Info("no rows produced, output file not written")
		return
	}

	writer := exporter.NewCSVWriter(logger)
	if err := writer.WriteRecords(cfg.Pipeline.OutputFile, master); err != nil {
		logger.Error("failed to write output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("normalization complete",
		slog.Int("files", len(results)),
		slog.Int("rows", len(master)))
}
