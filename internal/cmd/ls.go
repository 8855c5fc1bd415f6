package cmd

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ezerfernandes/mdblock/internal/mdblock"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/ls.md
var lsHelp string

const excerptWidth = 48

func lsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "ls [flags] [filename]",
		Aliases: []string{"list"},
		Short:   "List document blocks",
		Long:    lsHelp,
		Args:    checkargs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(opts, source(args))
			if err != nil {
				return err
			}

			tbl := table.New("#", "KIND", "GROUP", "NUM", "CONTENT").WithWriter(cmd.OutOrStdout())

			for _, row := range listing(mdblock.Parse(string(src)), opts.kind) {
				tbl.AddRow(row...)
			}

			tbl.Print()

			return nil
		},

		DisableAutoGenTag: true,
	}

	kindFlag(cmd, opts)

	return cmd
}

// listing builds one row per selected block. Group and number columns are
// empty for blocks outside list groups.
func listing(doc mdblock.Document, match kindFunc) [][]interface{} {
	var (
		rows  [][]interface{}
		index int
		group int
	)

	for _, view := range mdblock.Group(doc) {
		if view.Kind == mdblock.ViewGroup {
			group++
		}

		for i, block := range view.Blocks {
			index++

			if !match(block.Kind) {
				continue
			}

			var grp, num string

			if view.Kind == mdblock.ViewGroup {
				grp = fmt.Sprint(group)

				if view.Ordinals[i] > 0 {
					num = fmt.Sprint(view.Ordinals[i])
				}
			}

			rows = append(rows, []interface{}{index, block.Kind, grp, num, excerpt(block)})
		}
	}

	return rows
}

func excerpt(block mdblock.Block) string {
	var text string

	switch block.Kind { //nolint:exhaustive
	case mdblock.KindTable:
		cells := block.Cells()
		if len(cells) > 0 {
			text = fmt.Sprintf("%dx%d: %s", len(cells), len(cells[0]), strings.Join(cells[0], ", "))
		}
	case mdblock.KindImage:
		text = block.Alt() + " <" + block.Content + ">"
	case mdblock.KindCode:
		text = "[" + block.Language() + "] " + block.Content
	case mdblock.KindCollapsible:
		text = block.Summary() + ": " + block.Content
	case mdblock.KindChecklist:
		mark := "[ ] "
		if block.Checked() {
			mark = "[x] "
		}

		text = mark + block.Content
	default:
		text = block.Content
	}

	text, _, cut := strings.Cut(text, "\n")
	if cut || utf8.RuneCountInString(text) > excerptWidth {
		return truncate(text, excerptWidth-1) + "…"
	}

	return text
}

func truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}

	return string(runes[:width])
}
