package dataprocessing

import "strings"

// Record is one normalized long-format output row. All fields are text:
// source values mix numbers, dashes and free text, so normalization stays
// lexical end to end.
type Record struct {
	Dataset string
	Measure string
	Value   string
	Region  string
	Period  string
	Typ     string
}

// Header is the column order of the output CSV.
var Header = []string{"dataset", "measure", "value", "region", "period", "typ"}

// Fields returns the record in output column order.
func (r Record) Fields() []string {
	return []string{r.Dataset, r.Measure, r.Value, r.Region, r.Period, r.Typ}
}

// Column is one named source column with its cell values in row order.
type Column struct {
	Name  string
	Cells []string
}

// SourceTable is the wide form of one input file: ordered columns with a
// uniform row count. Name is the dataset name (base filename without
// extension).
type SourceTable struct {
	Name    string
	Columns []Column
}

// RowCount returns the number of data rows in the table.
func (t *SourceTable) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnNames returns the column names in original order.
func (t *SourceTable) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// dash-only cells stand for "no data" in the source exports
var dashCells = map[string]bool{"-": true, "–": true, "—": true}

// ScrubNoData replaces cells consisting of a single dash (hyphen, en dash
// or em dash, optionally whitespace-padded) with the noData text.
func (t *SourceTable) ScrubNoData(noData string) {
	for ci := range t.Columns {
		cells := t.Columns[ci].Cells
		for ri, cell := range cells {
			if dashCells[strings.TrimSpace(cell)] {
				cells[ri] = noData
			}
		}
	}
}
