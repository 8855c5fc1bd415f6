package mdblock

// Attrs is the kind specific part of a block. Only the types in this package
// implement it.
type Attrs interface {
	kind() Kind
}

// Checklist holds the tick state of a checklist item.
type Checklist struct {
	Checked bool
}

// Code holds the info string written after the opening fence.
type Code struct {
	Language string
}

// Image holds the alternative text of an image.
type Image struct {
	Alt string
}

// Collapsible holds the summary label of a details block.
type Collapsible struct {
	Summary string
}

// Table holds row-major cells; row 0 is the header.
type Table struct {
	Cells [][]string
}

// Mermaid holds the optional structured description a diagram block was
// generated from. Graph is nil for diagrams that came from text.
type Mermaid struct {
	Graph *Graph
}

func (Checklist) kind() Kind { return KindChecklist }
func (Code) kind() Kind { return KindCode }
func (Image) kind() Kind { return KindImage }
func (Collapsible) kind() Kind { return KindCollapsible }
func (Table) kind() Kind { return KindTable }
func (Mermaid) kind() Kind { return KindMermaid }

// attrsKind returns k when k carries attributes, or the empty kind.
func (k Kind) attrsKind() Kind {
	if zeroAttrs(k) == nil {
		return ""
	}

	return k
}

func zeroAttrs(kind Kind) Attrs { //nolint:ireturn
	switch kind { //nolint:exhaustive
	case KindChecklist:
		return Checklist{}
	case KindCode:
		return Code{}
	case KindImage:
		return Image{}
	case KindCollapsible:
		return Collapsible{}
	case KindTable:
		return Table{}
	case KindMermaid:
		return Mermaid{}
	default:
		return nil
	}
}
