package cmd

import (
	"bytes"
	_ "embed"

	"github.com/ezerfernandes/mdblock/internal/mdblock"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed help/preview.md
var previewHelp string

func previewCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "preview [flags] [filename]",
		Short: "Render markdown blocks to HTML",
		Long:  previewHelp,
		Args:  checkargs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := source(args)

			src, err := readSource(opts, filename)
			if err != nil {
				return err
			}

			html, err := preview(selectKinds(mdblock.Parse(string(src)), opts.kind))
			if err != nil {
				return errors.Wrapf(err, "rendering %s", filename)
			}

			if len(output) == 0 {
				_, err = cmd.OutOrStdout().Write(html)

				return err
			}

			opts.status("writing %s\n", output)

			return writeFile(opts, output, html)
		},

		DisableAutoGenTag: true,
	}

	kindFlag(cmd, opts)
	outputFlag(cmd, &output)

	return cmd
}

func preview(doc mdblock.Document) ([]byte, error) {
	var buff bytes.Buffer

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	if err := md.Convert([]byte(mdblock.Serialize(doc)), &buff); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}
