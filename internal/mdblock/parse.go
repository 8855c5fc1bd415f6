package mdblock

import "strings"

const (
	tagInfo    = "> ℹ️ **提示**"
	tagWarning = "> ⚠️ **警告**"
	tagSuccess = "> ✅ **成功**"
	tagError   = "> ❌ **错误**"

	quoteMarker = ">"
	fence       = "```"
	mathFence   = "$$"
	detailsOpen = "<details>"
	detailsEnd  = "</details>"

	defaultSummary = "Details"
	defaultAlt     = "image"
)

// calloutTags maps each callout kind to the tag line that opens it.
var calloutTags = []struct { //nolint:gochecknoglobals
	kind Kind
	tag  string
}{
	{KindCalloutInfo, tagInfo},
	{KindCalloutWarning, tagWarning},
	{KindCalloutSuccess, tagSuccess},
	{KindCalloutError, tagError},
}

// recognizer tries to match the line at lines[i]. On success it returns the
// block to emit and the number of lines consumed (at least one).
type recognizer func(lines []string, i int) (Block, int, bool)

// recognizers are tried in order; the first match wins.
var recognizers = []recognizer{ //nolint:gochecknoglobals
	recognizeHeading,
	recognizeQuote,
	recognizeChecklist,
	recognizeUnordered,
	recognizeOrdered,
	recognizeDivider,
	recognizeMath,
	recognizeMermaid,
	recognizeCollapsible,
	recognizeCode,
	recognizeTable,
	recognizeImage,
}

// callout accumulates the body of an open callout block.
type callout struct {
	index   int
	lines   []string
	started bool
}

type scanner struct {
	lines  []string
	blocks Document
	open   *callout
}

// Parse converts markdown text into a block sequence. It never fails:
// malformed or truncated markup degrades into the closest matching blocks and
// unterminated multi-line constructs run to the end of the input.
func Parse(source string) Document {
	if len(source) == 0 {
		return Document{}
	}

	s := &scanner{lines: splitLines(source)}

	for i := 0; i < len(s.lines); {
		i += s.step(i)
	}

	s.closeCallout()

	return s.blocks
}

func splitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// step handles the line at i and returns how many lines were consumed.
func (s *scanner) step(i int) int {
	line := s.lines[i]

	if kind, ok := calloutKind(line); ok {
		s.closeCallout()
		s.blocks = append(s.blocks, New(kind, ""))
		s.open = &callout{index: len(s.blocks) - 1}

		return 1
	}

	if s.open != nil {
		if s.continueCallout(line) {
			return 1
		}

		s.closeCallout()
	}

	for _, recognize := range recognizers {
		if block, n, ok := recognize(s.lines, i); ok {
			s.blocks = append(s.blocks, block)

			return n
		}
	}

	// A pipe run the table recognizer rejected holds no row with cells, and no
	// line of it can start a table later on.
	if isTableLine(line) {
		end := tableEnd(s.lines, i)
		for _, plain := range s.lines[i:end] {
			s.blocks = append(s.blocks, New(KindParagraph, plain))
		}

		return end - i
	}

	if len(strings.TrimSpace(line)) != 0 {
		s.blocks = append(s.blocks, New(KindParagraph, line))
	}

	return 1
}

func calloutKind(line string) (Kind, bool) {
	for _, c := range calloutTags {
		if strings.HasPrefix(line, c.tag) {
			return c.kind, true
		}
	}

	return "", false
}

// continueCallout reports whether line belongs to the open callout. A bare
// marker line is skipped; so is the spacer line right after the tag.
func (s *scanner) continueCallout(line string) bool {
	first := !s.open.started
	s.open.started = true

	if line == quoteMarker {
		return true
	}

	if first && strings.TrimSpace(line) == quoteMarker {
		return true
	}

	if rest, ok := strings.CutPrefix(line, quoteMarker+" "); ok {
		s.open.lines = append(s.open.lines, rest)

		return true
	}

	return false
}

func (s *scanner) closeCallout() {
	if s.open == nil {
		return
	}

	s.blocks[s.open.index].Content = strings.Join(s.open.lines, "\n")
	s.open = nil
}

// collect gathers the lines after start up to, not including, the first line
// for which isEnd returns true. It returns the collected lines and the index
// of the closing line, or len(lines) when there is none.
func collect(lines []string, start int, isEnd func(string) bool) ([]string, int) {
	j := start + 1
	for j < len(lines) && !isEnd(lines[j]) {
		j++
	}

	return lines[start+1 : j], j
}

// consumed converts the index of a closing line into a line count starting
// at i, including the closing line when present.
func consumed(lines []string, i, end int) int {
	if end < len(lines) {
		return end - i + 1
	}

	return end - i
}

// trimBody drops surrounding blank lines and trailing whitespace while keeping
// the indentation of the first non-blank line.
func trimBody(lines []string) string {
	start := 0
	for start < len(lines) && len(strings.TrimSpace(lines[start])) == 0 {
		start++
	}

	return strings.TrimRight(strings.Join(lines[start:], "\n"), " \t\r\n")
}
