package mdblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableEditing(t *testing.T) {
	t.Parallel()

	table := Table{Cells: DefaultCells()}

	assert.Equal(t, 2, table.Rows())
	assert.Equal(t, 2, table.Cols())

	added := table.AddRow()
	assert.Equal(t, [][]string{{"Header 1", "Header 2"}, {"Cell 1", "Cell 2"}, {"", ""}}, added.Cells)
	assert.Equal(t, 2, table.Rows())

	assert.Equal(t, [][]string{{"Header 1", "Header 2", ""}, {"Cell 1", "Cell 2", ""}}, table.AddColumn().Cells)
	assert.Equal(t, [][]string{{"Header 1", "Header 2"}}, table.RemoveRow(1).Cells)
	assert.Equal(t, [][]string{{"Header 2"}, {"Cell 2"}}, table.RemoveColumn(0).Cells)
	assert.Equal(t, DefaultCells(), table.Cells)
}

func TestTableEditingLimits(t *testing.T) {
	t.Parallel()

	single := Table{Cells: [][]string{{"only"}}}

	assert.Equal(t, single.Cells, single.RemoveRow(0).Cells)
	assert.Equal(t, single.Cells, single.RemoveColumn(0).Cells)
	assert.Equal(t, DefaultCells(), Table{Cells: DefaultCells()}.RemoveRow(7).Cells)
	assert.Equal(t, 0, Table{}.Cols())
}

func TestNewTableDefaultsToGrid(t *testing.T) {
	t.Parallel()

	block := NewTable(nil)

	assert.Equal(t, DefaultCells(), block.Cells())
	assert.Equal(t, [][]string{{"x"}}, NewTable([][]string{{"x"}}).Cells())

	block.Cells()[0][0] = "changed"
	assert.Equal(t, "Header 1", DefaultCells()[0][0])
}
