package mdblock

// DefaultCells is the grid a table starts with when created empty.
func DefaultCells() [][]string {
	return [][]string{
		{"Header 1", "Header 2"},
		{"Cell 1", "Cell 2"},
	}
}

// normalizeCells copies cells, padding short rows with empty strings and
// truncating long rows to the header width.
func normalizeCells(cells [][]string) [][]string {
	if len(cells) == 0 {
		return nil
	}

	cols := len(cells[0])
	res := make([][]string, len(cells))

	for i, row := range cells {
		norm := make([]string, cols)
		copy(norm, row)
		res[i] = norm
	}

	return res
}

// Rows returns the number of rows including the header.
func (t Table) Rows() int {
	return len(t.Cells)
}

// Cols returns the header width.
func (t Table) Cols() int {
	if len(t.Cells) == 0 {
		return 0
	}

	return len(t.Cells[0])
}

// AddRow returns a copy of t with an empty row appended.
func (t Table) AddRow() Table {
	cells := normalizeCells(t.Cells)

	return Table{Cells: append(cells, make([]string, t.Cols()))}
}

// AddColumn returns a copy of t with an empty column appended.
func (t Table) AddColumn() Table {
	cells := normalizeCells(t.Cells)
	for i := range cells {
		cells[i] = append(cells[i], "")
	}

	return Table{Cells: cells}
}

// RemoveRow returns a copy of t without row idx. The header row is never the
// last one to go: a table with a single row is returned unchanged.
func (t Table) RemoveRow(idx int) Table {
	if t.Rows() <= 1 || idx < 0 || idx >= t.Rows() {
		return Table{Cells: normalizeCells(t.Cells)}
	}

	cells := make([][]string, 0, t.Rows()-1)

	for i, row := range normalizeCells(t.Cells) {
		if i != idx {
			cells = append(cells, row)
		}
	}

	return Table{Cells: cells}
}

// RemoveColumn returns a copy of t without column idx, keeping at least one
// column.
func (t Table) RemoveColumn(idx int) Table {
	if t.Cols() <= 1 || idx < 0 || idx >= t.Cols() {
		return Table{Cells: normalizeCells(t.Cells)}
	}

	cells := normalizeCells(t.Cells)
	for i, row := range cells {
		cells[i] = append(row[:idx:idx], row[idx+1:]...)
	}

	return Table{Cells: cells}
}
