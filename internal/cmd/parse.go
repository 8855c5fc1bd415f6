package cmd

import (
	_ "embed"
	"encoding/json"

	"github.com/ezerfernandes/mdblock/internal/mdblock"
	"github.com/spf13/cobra"
)

//go:embed help/parse.md
var parseHelp string

func parseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "parse [flags] [filename]",
		Aliases: []string{"p"},
		Short:   "Parse markdown into JSON blocks",
		Long:    parseHelp,
		Args:    checkargs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := source(args)

			src, err := readSource(opts, filename)
			if err != nil {
				return err
			}

			doc := selectKinds(mdblock.Parse(string(src)), opts.kind)

			opts.status("%s: %d block(s)\n", filename, len(doc))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)

			return enc.Encode(doc)
		},

		DisableAutoGenTag: true,
	}

	kindFlag(cmd, opts)

	return cmd
}

func selectKinds(doc mdblock.Document, match kindFunc) mdblock.Document {
	res := make(mdblock.Document, 0, len(doc))

	for _, block := range doc {
		if match(block.Kind) {
			res = append(res, block)
		}
	}

	return res
}
