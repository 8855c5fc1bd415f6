package mdblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contents(doc Document) []string {
	res := make([]string, len(doc))
	for i, block := range doc {
		res[i] = block.Content
	}

	return res
}

func TestDocumentInsert(t *testing.T) {
	t.Parallel()

	doc := Parse("a\nc")
	b := New(KindParagraph, "b")

	inserted := doc.Insert(1, b)

	assert.Equal(t, []string{"a", "b", "c"}, contents(inserted))
	assert.Equal(t, []string{"a", "c"}, contents(doc))
	assert.Equal(t, []string{"a", "c", "b"}, contents(doc.Insert(99, b)))
	assert.Equal(t, []string{"a", "c", "b"}, contents(doc.Append(b)))
	assert.Equal(t, []string{"b", "a", "c"}, contents(doc.Insert(0, b)))
}

func TestDocumentUpdate(t *testing.T) {
	t.Parallel()

	doc := Document{NewChecklist("todo", false), NewCode("x", "go")}

	updated := doc.Update(doc[0].ID, "done", Checklist{Checked: true})

	assert.Equal(t, "done", updated[0].Content)
	assert.True(t, updated[0].Checked())
	assert.False(t, doc[0].Checked())

	kept := doc.Update(doc[1].ID, "y", nil)
	assert.Equal(t, "go", kept[1].Language())
	assert.Equal(t, "y", kept[1].Content)

	mismatched := doc.Update(doc[1].ID, "z", Image{Alt: "nope"})
	assert.Equal(t, Code{}, mismatched[1].Attrs)

	assert.Equal(t, doc, doc.Update("missing", "x", nil))
}

func TestDocumentRemove(t *testing.T) {
	t.Parallel()

	doc := Parse("a\nb\nc")

	assert.Equal(t, []string{"a", "c"}, contents(doc.Remove(doc[1].ID)))
	assert.Equal(t, []string{"a", "b", "c"}, contents(doc))
	assert.Equal(t, doc, doc.Remove("missing"))
}

func TestDocumentMove(t *testing.T) {
	t.Parallel()

	doc := Parse("a\nb\nc")

	assert.Equal(t, []string{"b", "a", "c"}, contents(doc.Move(doc[1].ID, MoveUp)))
	assert.Equal(t, []string{"a", "c", "b"}, contents(doc.Move(doc[1].ID, MoveDown)))
	assert.Equal(t, []string{"a", "b", "c"}, contents(doc.Move(doc[0].ID, MoveUp)))
	assert.Equal(t, []string{"a", "b", "c"}, contents(doc.Move(doc[2].ID, MoveDown)))
	assert.Equal(t, []string{"a", "b", "c"}, contents(doc))
}

func TestDocumentFind(t *testing.T) {
	t.Parallel()

	doc := Parse("a\nb")

	assert.Equal(t, 1, doc.Find(doc[1].ID))
	assert.Equal(t, -1, doc.Find("nope"))
}

func TestNewBlockAttrs(t *testing.T) {
	t.Parallel()

	assert.Nil(t, New(KindParagraph, "x").Attrs)
	assert.Equal(t, Checklist{}, New(KindChecklist, "x").Attrs)
	assert.Equal(t, Table{}, New(KindTable, "").Attrs)

	para := New(KindParagraph, "x").WithAttrs(Code{Language: "go"})
	assert.Nil(t, para.Attrs)
	assert.Empty(t, para.Language())

	table := New(KindTable, "").WithAttrs(Table{Cells: [][]string{{"a", "b"}, {"c"}}})
	assert.Equal(t, [][]string{{"a", "b"}, {"c", ""}}, table.Cells())
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds {
		assert.True(t, kind.Valid(), kind)
	}

	assert.False(t, Kind("list-ul").Valid())
	assert.True(t, KindChecklist.IsList())
	assert.False(t, KindQuote.IsList())
	assert.True(t, KindCalloutError.IsCallout())
	assert.True(t, KindHeading2.IsHeading())
	assert.False(t, KindParagraph.IsHeading())
}

func TestNewTableCopiesCells(t *testing.T) {
	t.Parallel()

	cells := [][]string{{"a", "b"}, {"1", "2"}}
	block := NewTable(cells)
	cells[1][0] = "changed"

	require.Len(t, block.Cells(), 2)
	assert.Equal(t, "1", block.Cells()[1][0])
}
