package mdblock

import (
	"encoding/json"
	"errors"
	"fmt"
)

type jsonBlock struct {
	ID      string          `json:"id"`
	Kind    Kind            `json:"kind"`
	Content string          `json:"content"`
	Attrs   json.RawMessage `json:"attrs,omitempty"`
}

type jsonChecklist struct {
	Checked bool `json:"checked"`
}

type jsonCode struct {
	Language string `json:"language"`
}

type jsonImage struct {
	Alt string `json:"alt"`
}

type jsonCollapsible struct {
	Summary string `json:"summary"`
}

type jsonTable struct {
	Cells [][]string `json:"cells"`
}

type jsonMermaid struct {
	Graph *Graph `json:"graph,omitempty"`
}

// MarshalJSON encodes a block as {"id","kind","content","attrs"}.
func (b Block) MarshalJSON() ([]byte, error) {
	out := jsonBlock{ID: b.ID, Kind: b.Kind, Content: b.Content}

	var attrs interface{}

	switch a := b.Attrs.(type) {
	case Checklist:
		attrs = jsonChecklist{Checked: a.Checked}
	case Code:
		attrs = jsonCode{Language: a.Language}
	case Image:
		attrs = jsonImage{Alt: a.Alt}
	case Collapsible:
		attrs = jsonCollapsible{Summary: a.Summary}
	case Table:
		attrs = jsonTable{Cells: a.Cells}
	case Mermaid:
		attrs = jsonMermaid{Graph: a.Graph}
	}

	if attrs != nil {
		raw, err := json.Marshal(attrs)
		if err != nil {
			return nil, err
		}

		out.Attrs = raw
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes a block, interpreting attrs according to its kind.
// Blocks without an id get a fresh one.
func (b *Block) UnmarshalJSON(data []byte) error {
	var in jsonBlock

	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if !in.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}

	attrs, err := decodeAttrs(in.Kind, in.Attrs)
	if err != nil {
		return fmt.Errorf("%s attrs: %w", in.Kind, err)
	}

	if len(in.ID) == 0 {
		in.ID = newID()
	}

	*b = Block{ID: in.ID, Kind: in.Kind, Content: in.Content, Attrs: attrs}

	return nil
}

func decodeAttrs(kind Kind, raw json.RawMessage) (Attrs, error) { //nolint:ireturn
	if len(raw) == 0 || string(raw) == "null" {
		return zeroAttrs(kind), nil
	}

	switch kind { //nolint:exhaustive
	case KindChecklist:
		var a jsonChecklist
		err := json.Unmarshal(raw, &a)

		return Checklist{Checked: a.Checked}, err
	case KindCode:
		var a jsonCode
		err := json.Unmarshal(raw, &a)

		return Code{Language: a.Language}, err
	case KindImage:
		var a jsonImage
		err := json.Unmarshal(raw, &a)

		return Image{Alt: a.Alt}, err
	case KindCollapsible:
		var a jsonCollapsible
		err := json.Unmarshal(raw, &a)

		return Collapsible{Summary: a.Summary}, err
	case KindTable:
		var a jsonTable
		err := json.Unmarshal(raw, &a)

		return Table{Cells: normalizeCells(a.Cells)}, err
	case KindMermaid:
		var a jsonMermaid
		err := json.Unmarshal(raw, &a)

		return Mermaid{Graph: a.Graph}, err
	default:
		return nil, nil
	}
}

// ErrUnknownKind is returned when decoding a block whose kind is not known.
var ErrUnknownKind = errors.New("unknown block kind")
