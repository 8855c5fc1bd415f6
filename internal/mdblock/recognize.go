package mdblock

import (
	"regexp"
	"strings"
)

var (
	reOrdered   = regexp.MustCompile(`^[0-9]+\. `)
	reSummary   = regexp.MustCompile(`<summary>(.*?)</summary>`)
	reImage     = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	reSeparator = regexp.MustCompile(`^[\s|:-]+$`)
)

var headings = []struct { //nolint:gochecknoglobals
	prefix string
	kind   Kind
}{
	{"# ", KindHeading1},
	{"## ", KindHeading2},
	{"### ", KindHeading3},
}

func recognizeHeading(lines []string, i int) (Block, int, bool) {
	for _, h := range headings {
		if rest, ok := strings.CutPrefix(lines[i], h.prefix); ok {
			return New(h.kind, rest), 1, true
		}
	}

	return Block{}, 0, false
}

func recognizeQuote(lines []string, i int) (Block, int, bool) {
	if rest, ok := strings.CutPrefix(lines[i], quoteMarker+" "); ok {
		return New(KindQuote, rest), 1, true
	}

	return Block{}, 0, false
}

func recognizeChecklist(lines []string, i int) (Block, int, bool) {
	if rest, ok := strings.CutPrefix(lines[i], "- [ ] "); ok {
		return NewChecklist(rest, false), 1, true
	}

	if rest, ok := strings.CutPrefix(lines[i], "- [x] "); ok {
		return NewChecklist(rest, true), 1, true
	}

	return Block{}, 0, false
}

func recognizeUnordered(lines []string, i int) (Block, int, bool) {
	if rest, ok := strings.CutPrefix(lines[i], "- "); ok {
		return New(KindListUnordered, rest), 1, true
	}

	return Block{}, 0, false
}

// recognizeOrdered drops the item number; display numbering is derived by
// the grouper.
func recognizeOrdered(lines []string, i int) (Block, int, bool) {
	loc := reOrdered.FindStringIndex(lines[i])
	if loc == nil {
		return Block{}, 0, false
	}

	return New(KindListOrdered, lines[i][loc[1]:]), 1, true
}

func recognizeDivider(lines []string, i int) (Block, int, bool) {
	if strings.HasPrefix(lines[i], "---") {
		return New(KindDivider, ""), 1, true
	}

	return Block{}, 0, false
}

func recognizeMath(lines []string, i int) (Block, int, bool) {
	line := lines[i]
	if !strings.HasPrefix(line, mathFence) {
		return Block{}, 0, false
	}

	if strings.TrimSpace(line) != mathFence {
		inline := strings.TrimSuffix(strings.TrimPrefix(line, mathFence), mathFence)

		return New(KindMath, inline), 1, true
	}

	body, end := collect(lines, i, func(l string) bool {
		return strings.TrimSpace(l) == mathFence
	})

	return New(KindMath, trimBody(body)), consumed(lines, i, end), true
}

func isFence(line string) bool {
	return strings.HasPrefix(line, fence)
}

func recognizeMermaid(lines []string, i int) (Block, int, bool) {
	if !strings.HasPrefix(lines[i], fence+"mermaid") {
		return Block{}, 0, false
	}

	body, end := collect(lines, i, isFence)

	return NewMermaid(trimBody(body)), consumed(lines, i, end), true
}

func recognizeCollapsible(lines []string, i int) (Block, int, bool) {
	if !strings.HasPrefix(lines[i], detailsOpen) {
		return Block{}, 0, false
	}

	start := i
	summary := defaultSummary

	if i+1 < len(lines) && strings.Contains(lines[i+1], "<summary>") {
		summary = extractSummary(lines[i+1])
		start++
	}

	body, end := collect(lines, start, func(l string) bool {
		return strings.HasPrefix(l, detailsEnd)
	})

	return NewCollapsible(trimBody(body), summary), consumed(lines, i, end), true
}

// extractSummary returns the text inside the summary tag, or everything after
// an unclosed opening tag.
func extractSummary(line string) string {
	if subs := reSummary.FindStringSubmatch(line); subs != nil {
		return subs[1]
	}

	_, rest, _ := strings.Cut(line, "<summary>")

	return strings.TrimSpace(rest)
}

func recognizeCode(lines []string, i int) (Block, int, bool) {
	if !isFence(lines[i]) {
		return Block{}, 0, false
	}

	lang := strings.TrimSpace(strings.TrimPrefix(lines[i], fence))
	body, end := collect(lines, i, isFence)

	return NewCode(trimBody(body), lang), consumed(lines, i, end), true
}

func isTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "|")
}

// tableEnd returns the index just past the run of pipe-led lines starting at i.
func tableEnd(lines []string, i int) int {
	end := i
	for end < len(lines) && isTableLine(lines[end]) {
		end++
	}

	return end
}

func isSeparatorRow(line string) bool {
	return reSeparator.MatchString(line) && strings.Contains(line, "-")
}

// recognizeTable consumes the whole run of pipe-led lines before dropping
// separator rows. The header is the first row with at least one cell; a run
// without such a row is not a table.
func recognizeTable(lines []string, i int) (Block, int, bool) {
	if !isTableLine(lines[i]) {
		return Block{}, 0, false
	}

	end := tableEnd(lines, i)

	var cells [][]string

	for _, line := range lines[i:end] {
		if isSeparatorRow(line) {
			continue
		}

		row := splitRow(line)
		if len(cells) == 0 && len(row) == 0 {
			continue
		}

		cells = append(cells, row)
	}

	if len(cells) == 0 {
		return Block{}, 0, false
	}

	return NewTable(cells), end - i, true
}

func splitRow(line string) []string {
	row := strings.Split(line, "|")
	for i, cell := range row {
		row[i] = strings.TrimSpace(cell)
	}

	if len(row) > 0 && len(row[0]) == 0 {
		row = row[1:]
	}

	if len(row) > 0 && len(row[len(row)-1]) == 0 {
		row = row[:len(row)-1]
	}

	return row
}

// recognizeImage keeps only the first image on the line; surrounding text is
// dropped.
func recognizeImage(lines []string, i int) (Block, int, bool) {
	subs := reImage.FindStringSubmatch(lines[i])
	if subs == nil {
		return Block{}, 0, false
	}

	return NewImage(subs[2], subs[1]), 1, true
}
