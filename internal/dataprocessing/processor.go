package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"kwartal/internal/config"
	"kwartal/internal/files"
)

// FileResult captures the outcome of processing one input file. A failed
// file contributes no records; the failure is a value, not a thrown error,
// so one bad export never aborts the run.
type FileResult struct {
	File    string
	Records []Record
	Err     error
}

// Processor runs the normalization pipeline over an input directory.
type Processor struct {
	cfg    config.PipelineConfig
	logger *slog.Logger
}

// NewProcessor creates a processor with the given pipeline configuration.
// A nil logger falls back to slog.Default.
func NewProcessor(cfg config.PipelineConfig, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{cfg: cfg, logger: logger}
}

// Run processes every input file in sorted filename order and returns the
// per-file results. Files are strictly sequential; the context is checked
// between files only.
func (p *Processor) Run(ctx context.Context, inDir string) ([]FileResult, error) {
	discovery := files.NewDiscovery(inDir)
	inputs, err := discovery.FindInputFiles(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory: %w", err)
	}

	results := make([]FileResult, 0, len(inputs))
	for _, file := range inputs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		records, err := p.ProcessFile(file.Path)
		if err != nil {
			p.logger.Error("file processing failed",
				slog.String("file", file.Name),
				slog.String("error", err.Error()))
			results = append(results, FileResult{File: file.Name, Err: err})
			continue
		}

		p.logger.Info("processed file",
			slog.String("file", file.Name),
			slog.Int("rows", len(records)))
		results = append(results, FileResult{File: file.Name, Records: records})
	}
	return results, nil
}

// ProcessFile runs the full per-file pipeline: parse, scrub, classify,
// reshape, backfill, filter.
func (p *Processor) ProcessFile(path string) ([]Record, error) {
	table, err := ParseFile(path, p.cfg.Encodings)
	if err != nil {
		return nil, err
	}

	table.ScrubNoData(p.cfg.NoDataText)
	roles := ClassifyColumns(table.ColumnNames())
	records := Reshape(table, roles)
	BackfillPeriods(table, roles, records, p.cfg)
	return FilterYears(table.Name, records, p.cfg, p.logger), nil
}

// Aggregate concatenates the kept records of every successful file,
// preserving file and row order, and fills residual empty categorical
// fields with the configured sentinels. An empty field surviving the fill
// cannot happen after backfill, but is logged as a warning if it does.
func Aggregate(results []FileResult, cfg config.PipelineConfig, logger *slog.Logger) []Record {
	if logger == nil {
		logger = slog.Default()
	}

	var master []Record
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		master = append(master, res.Records...)
	}

	for i := range master {
		if master[i].Typ == "" {
			master[i].Typ = cfg.CategorySentinel
		}
		if master[i].Region == "" {
			master[i].Region = cfg.RegionSentinel
		}
		if master[i].Period == "" {
			master[i].Period = cfg.DefaultYear
		}
	}

	for _, rec := range master {
		if rec.Typ == "" || rec.Region == "" || rec.Period == "" {
			logger.Warn("record with empty categorical field after fill",
				slog.String("dataset", rec.Dataset),
				slog.String("measure", rec.Measure))
		}
	}
	return master
}
