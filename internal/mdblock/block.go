// Package mdblock converts between markdown text and an ordered sequence of
// typed content blocks.
package mdblock

import (
	"strings"

	"github.com/google/uuid"
)

// Kind tags a block with its content type.
type Kind string

const (
	KindParagraph      Kind = "paragraph"
	KindHeading1       Kind = "heading1"
	KindHeading2       Kind = "heading2"
	KindHeading3       Kind = "heading3"
	KindQuote          Kind = "quote"
	KindListUnordered  Kind = "list-unordered"
	KindListOrdered    Kind = "list-ordered"
	KindChecklist      Kind = "checklist"
	KindImage          Kind = "image"
	KindDivider        Kind = "divider"
	KindCode           Kind = "code"
	KindMath           Kind = "math"
	KindMermaid        Kind = "mermaid"
	KindTable          Kind = "table"
	KindCollapsible    Kind = "collapsible"
	KindCalloutInfo    Kind = "callout-info"
	KindCalloutWarning Kind = "callout-warning"
	KindCalloutSuccess Kind = "callout-success"
	KindCalloutError   Kind = "callout-error"
)

// Kinds lists every known block kind.
var Kinds = []Kind{ //nolint:gochecknoglobals
	KindParagraph, KindHeading1, KindHeading2, KindHeading3, KindQuote,
	KindListUnordered, KindListOrdered, KindChecklist, KindImage, KindDivider,
	KindCode, KindMath, KindMermaid, KindTable, KindCollapsible,
	KindCalloutInfo, KindCalloutWarning, KindCalloutSuccess, KindCalloutError,
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}

	return false
}

// IsList reports whether k takes part in list grouping.
func (k Kind) IsList() bool {
	return k == KindListUnordered || k == KindListOrdered || k == KindChecklist
}

// IsCallout reports whether k is one of the four callout kinds.
func (k Kind) IsCallout() bool {
	return k == KindCalloutInfo || k == KindCalloutWarning || k == KindCalloutSuccess || k == KindCalloutError
}

// IsHeading reports whether k is a heading of any level.
func (k Kind) IsHeading() bool {
	return k == KindHeading1 || k == KindHeading2 || k == KindHeading3
}

// Block is one typed unit of document content.
//
// Attrs holds the kind specific attributes, or nil for kinds without any.
type Block struct {
	ID      string
	Kind    Kind
	Content string
	Attrs   Attrs
}

func newID() string {
	return uuid.NewString()
}

// New creates a block of the given kind with a fresh id. Kinds that carry
// attributes get their zero attributes; use the dedicated constructors to set
// them.
func New(kind Kind, content string) Block {
	return Block{ID: newID(), Kind: kind, Content: content, Attrs: zeroAttrs(kind)}
}

// NewChecklist creates a checklist item.
func NewChecklist(content string, checked bool) Block {
	return Block{ID: newID(), Kind: KindChecklist, Content: content, Attrs: Checklist{Checked: checked}}
}

// NewCode creates a fenced code block; language is the full info string.
func NewCode(content, language string) Block {
	return Block{ID: newID(), Kind: KindCode, Content: content, Attrs: Code{Language: language}}
}

// NewImage creates an image block whose content is the url.
func NewImage(url, alt string) Block {
	return Block{ID: newID(), Kind: KindImage, Content: url, Attrs: Image{Alt: alt}}
}

// NewCollapsible creates a details block with the given summary label.
func NewCollapsible(content, summary string) Block {
	return Block{ID: newID(), Kind: KindCollapsible, Content: content, Attrs: Collapsible{Summary: summary}}
}

// NewTable creates a table block from row-major cells, row 0 being the header.
// The cells are copied and normalized to the header width. Without cells the
// table starts from DefaultCells.
func NewTable(cells [][]string) Block {
	if len(cells) == 0 {
		cells = DefaultCells()
	}

	return Block{ID: newID(), Kind: KindTable, Attrs: Table{Cells: normalizeCells(cells)}}
}

// NewMermaid creates a diagram block from mermaid source without a graph.
func NewMermaid(source string) Block {
	return Block{ID: newID(), Kind: KindMermaid, Content: source, Attrs: Mermaid{}}
}

// NewMermaidGraph creates a diagram block whose content is generated from g.
func NewMermaidGraph(g Graph) Block {
	g = g.clone()
	source := strings.TrimRight(g.Source(), "\n")

	return Block{ID: newID(), Kind: KindMermaid, Content: source, Attrs: Mermaid{Graph: &g}}
}

// WithContent returns a copy of b with the content replaced.
func (b Block) WithContent(content string) Block {
	b.Content = content

	return b
}

// WithAttrs returns a copy of b with the attributes replaced. Attributes that
// do not belong to b's kind are dropped.
func (b Block) WithAttrs(attrs Attrs) Block {
	if attrs == nil || attrs.kind() != b.Kind.attrsKind() {
		b.Attrs = zeroAttrs(b.Kind)

		return b
	}

	if t, ok := attrs.(Table); ok {
		attrs = Table{Cells: normalizeCells(t.Cells)}
	}

	b.Attrs = attrs

	return b
}

// Checked returns the checklist state; false for other kinds.
func (b Block) Checked() bool {
	a, _ := b.Attrs.(Checklist)

	return a.Checked
}

// Language returns the code block info string; empty for other kinds.
func (b Block) Language() string {
	a, _ := b.Attrs.(Code)

	return a.Language
}

// Alt returns the image alternative text; empty for other kinds.
func (b Block) Alt() string {
	a, _ := b.Attrs.(Image)

	return a.Alt
}

// Summary returns the collapsible summary label; empty for other kinds.
func (b Block) Summary() string {
	a, _ := b.Attrs.(Collapsible)

	return a.Summary
}

// Cells returns the table cells; nil for other kinds.
func (b Block) Cells() [][]string {
	a, _ := b.Attrs.(Table)

	return a.Cells
}

// Graph returns the structured diagram description, if any.
func (b Block) Graph() *Graph {
	a, _ := b.Attrs.(Mermaid)

	return a.Graph
}
