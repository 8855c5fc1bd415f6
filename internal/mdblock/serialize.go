package mdblock

import "strings"

// Serialize converts a block sequence into markdown text. Each block becomes
// one fragment and fragments are separated by a blank line. Blocks that render
// to nothing but whitespace, such as a table without cells, leave no trace in
// the output.
func Serialize(blocks []Block) string {
	fragments := make([]string, 0, len(blocks))

	for _, block := range blocks {
		if frag := SerializeBlock(block); len(strings.TrimSpace(frag)) != 0 {
			fragments = append(fragments, frag)
		}
	}

	return strings.Join(fragments, "\n\n")
}

// SerializeBlock renders a single block without separators.
func SerializeBlock(block Block) string {
	switch block.Kind {
	case KindHeading1:
		return "# " + block.Content
	case KindHeading2:
		return "## " + block.Content
	case KindHeading3:
		return "### " + block.Content
	case KindQuote:
		return quoteMarker + " " + block.Content
	case KindListUnordered:
		return "- " + block.Content
	case KindListOrdered:
		return "1. " + block.Content
	case KindChecklist:
		if block.Checked() {
			return "- [x] " + block.Content
		}

		return "- [ ] " + block.Content
	case KindDivider:
		return "---"
	case KindImage:
		return "![" + orDefault(block.Alt(), defaultAlt) + "](" + block.Content + ")"
	case KindCode:
		return fence + block.Language() + "\n" + block.Content + "\n" + fence
	case KindMath:
		return mathFence + "\n" + block.Content + "\n" + mathFence
	case KindMermaid:
		return fence + "mermaid\n" + block.Content + "\n" + fence
	case KindCollapsible:
		return detailsOpen + "\n<summary>" + orDefault(block.Summary(), defaultSummary) + "</summary>\n" +
			block.Content + "\n" + detailsEnd
	case KindTable:
		return serializeTable(block.Cells())
	case KindCalloutInfo, KindCalloutWarning, KindCalloutSuccess, KindCalloutError:
		return serializeCallout(block.Kind, block.Content)
	case KindParagraph:
		fallthrough
	default:
		return block.Content
	}
}

func orDefault(value, def string) string {
	if len(value) == 0 {
		return def
	}

	return value
}

func serializeTable(cells [][]string) string {
	cells = normalizeCells(cells)
	if len(cells) == 0 || len(cells[0]) == 0 {
		return ""
	}

	separator := make([]string, len(cells[0]))
	for i := range separator {
		separator[i] = "---"
	}

	rows := make([]string, 0, len(cells)+1)
	rows = append(rows, tableRow(cells[0]), tableRow(separator))

	for _, row := range cells[1:] {
		rows = append(rows, tableRow(row))
	}

	return strings.Join(rows, "\n")
}

func tableRow(row []string) string {
	return "| " + strings.Join(row, " | ") + " |"
}

func serializeCallout(kind Kind, content string) string {
	var tag string

	for _, c := range calloutTags {
		if c.kind == kind {
			tag = c.tag
		}
	}

	prefix := quoteMarker + " "

	return tag + "\n" + prefix + "\n" + prefix + strings.ReplaceAll(content, "\n", "\n"+prefix)
}
