package dataprocessing

// Reshape melts a wide source table into long records. Every column not
// claimed as an identifier becomes a measure; each of its cells yields one
// record carrying the identifier values of its row.
//
// Degenerate tables, where the claimed identifiers would leave no value
// columns, are retried with only region and type as identifiers (period is
// released first so its column can serve as a measure); if that still
// leaves nothing, every column is treated as a value column.
func Reshape(t *SourceTable, roles RoleSet) []Record {
	ids := roles.IDColumns()
	if len(valueColumns(t, ids)) == 0 {
		reduced := RoleSet{Region: roles.Region, Type: roles.Type}
		ids = reduced.IDColumns()
		if len(valueColumns(t, ids)) == 0 {
			ids = nil
		}
	}

	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	regionCells := roleCells(t, roles.Region, idSet)
	periodCells := roleCells(t, roles.Period, idSet)
	typeCells := roleCells(t, roles.Type, idSet)

	var records []Record
	for _, col := range t.Columns {
		if idSet[col.Name] {
			continue
		}
		for ri, cell := range col.Cells {
			records = append(records, Record{
				Dataset: t.Name,
				Measure: col.Name,
				Value:   cell,
				Region:  cellAt(regionCells, ri),
				Period:  cellAt(periodCells, ri),
				Typ:     cellAt(typeCells, ri),
			})
		}
	}
	return records
}

func valueColumns(t *SourceTable, ids []string) []string {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	var values []string
	for _, col := range t.Columns {
		if !idSet[col.Name] {
			values = append(values, col.Name)
		}
	}
	return values
}

// roleCells returns the cells backing an identifier role, or nil when the
// role is absent or its column was released to serve as a measure.
func roleCells(t *SourceTable, name *string, idSet map[string]bool) []string {
	if name == nil || !idSet[*name] {
		return nil
	}
	for _, col := range t.Columns {
		if col.Name == *name {
			return col.Cells
		}
	}
	return nil
}

func cellAt(cells []string, i int) string {
	if cells == nil || i >= len(cells) {
		return ""
	}
	return cells[i]
}
