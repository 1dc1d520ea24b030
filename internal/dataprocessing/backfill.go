package dataprocessing

import (
	"log/slog"
	"sort"
	"strconv"

	"kwartal/internal/config"
)

// BackfillPeriods resolves a period for every record of one file.
//
// When the source table carries no period evidence at all (no header and no
// cell classifies as a period token), every record is forced to the default
// year. Otherwise records with an empty period adopt their measure name if
// it is a period token, then the first period token among their row's
// identifier cells, and finally the file's dominant year.
//
// Records must be in Reshape output order: one block per value column, each
// block holding the table's rows in order, so record i sits in table row
// i modulo RowCount.
func BackfillPeriods(t *SourceTable, roles RoleSet, records []Record, cfg config.PipelineConfig) {
	if len(records) == 0 {
		return
	}

	if !hasPeriodEvidence(t) {
		for i := range records {
			records[i].Period = cfg.DefaultYear
		}
		return
	}

	idCells := idColumnCells(t, roles)
	rowCount := t.RowCount()
	for i := range records {
		if records[i].Period != "" {
			continue
		}
		if IsPeriodToken(records[i].Measure) {
			records[i].Period = records[i].Measure
			continue
		}
		if rowCount == 0 {
			continue
		}
		ri := i % rowCount
		for _, cells := range idCells {
			if ri < len(cells) && IsPeriodToken(cells[ri]) {
				records[i].Period = cells[ri]
				break
			}
		}
	}

	defaultYear := dominantYear(records, cfg)
	for i := range records {
		if records[i].Period == "" {
			records[i].Period = defaultYear
		}
	}
}

// FilterYears keeps only records whose period resolves to an allowed
// reporting year. When a file loses every record, the pre-filter year
// distribution is logged so the drop can be diagnosed; this is
// observational, not an error.
func FilterYears(dataset string, records []Record, cfg config.PipelineConfig, logger *slog.Logger) []Record {
	kept := records[:0:0]
	histogram := make(map[int]int)
	for _, rec := range records {
		year, ok := ExtractYear(rec.Period)
		if ok {
			histogram[year]++
		}
		if ok && cfg.YearAllowed(year) {
			kept = append(kept, rec)
		}
	}

	if len(kept) == 0 && len(records) > 0 {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Info("no rows survived the year filter",
			slog.String("dataset", dataset),
			slog.String("year_histogram", formatHistogram(histogram)))
	}
	return kept
}

// hasPeriodEvidence reports whether any header or cell in the table
// classifies as a period token.
func hasPeriodEvidence(t *SourceTable) bool {
	for _, col := range t.Columns {
		if IsPeriodToken(col.Name) {
			return true
		}
		for _, cell := range col.Cells {
			if IsPeriodToken(cell) {
				return true
			}
		}
	}
	return false
}

// idColumnCells returns the raw cells of the classified identifier columns
// in collection order (region, period, type).
func idColumnCells(t *SourceTable, roles RoleSet) [][]string {
	var out [][]string
	for _, name := range roles.IDColumns() {
		for _, col := range t.Columns {
			if col.Name == name {
				out = append(out, col.Cells)
				break
			}
		}
	}
	return out
}

// dominantYear returns the most frequent allowed year among the records'
// current periods, as text. Years are visited in ascending order, so ties
// resolve to the lowest year. Files without a single allowed year fall
// back to the configured default.
func dominantYear(records []Record, cfg config.PipelineConfig) string {
	counts := make(map[int]int)
	for _, rec := range records {
		if rec.Period == "" {
			continue
		}
		if year, ok := ExtractYear(rec.Period); ok && cfg.YearAllowed(year) {
			counts[year]++
		}
	}
	if len(counts) == 0 {
		return cfg.DefaultYear
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	best := years[0]
	for _, y := range years[1:] {
		if counts[y] > counts[best] {
			best = y
		}
	}
	return strconv.Itoa(best)
}

func formatHistogram(histogram map[int]int) string {
	years := make([]int, 0, len(histogram))
	for y := range histogram {
		years = append(years, y)
	}
	sort.Ints(years)

	s := ""
	for _, y := range years {
		if s != "" {
			s += " "
		}
		s += strconv.Itoa(y) + ":" + strconv.Itoa(histogram[y])
	}
	return s
}
