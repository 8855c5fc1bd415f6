package cmd

import (
	_ "embed"
	"encoding/json"
	"io"

	"github.com/ezerfernandes/mdblock/internal/mdblock"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//go:embed help/render.md
var renderHelp string

//go:embed help/fmt.md
var fmtHelp string

func renderCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "render [flags] [filename]",
		Aliases: []string{"r"},
		Short:   "Render JSON blocks as markdown",
		Long:    renderHelp,
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

			var doc mdblock.Document

			if err := json.Unmarshal(src, &doc); err != nil {
				return errors.Wrapf(err, "decoding %s", filename)
			}

			doc = selectKinds(doc, opts.kind)

			return emit(cmd.OutOrStdout(), opts, output, mdblock.Serialize(doc))
		},

		DisableAutoGenTag: true,
	}

	kindFlag(cmd, opts)
	outputFlag(cmd, &output)

	return cmd
}

func fmtCmd(opts *options) *cobra.Command {
	var write bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "fmt [flags] [filename]",
		Aliases: []string{"f"},
		Short:   "Rewrite markdown in canonical block form",
		Long:    fmtHelp,
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

			doc := mdblock.Parse(string(src))
			result := fileText(doc)

			if !write {
				return emit(cmd.OutOrStdout(), opts, "", result)
			}

			if filename == stdinArg {
				return errWriteStdin
			}

			if result == string(src) {
				opts.status("%s: unchanged\n", filename)

				return nil
			}

			opts.status("%s: %d block(s) rewritten\n", filename, len(doc))

			return writeFile(opts, filename, []byte(result))
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to the source file instead of stdout")

	return cmd
}

// fileText renders doc as stored on disk, ending in a newline unless empty.
func fileText(doc mdblock.Document) string {
	text := mdblock.Serialize(doc)
	if len(text) == 0 {
		return text
	}

	return text + "\n"
}

func outputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "", "write result to file instead of stdout")
}

// emit writes text to the output file when one is named, otherwise to out.
func emit(out io.Writer, opts *options, output, text string) error {
	if len(output) == 0 {
		_, err := io.WriteString(out, text)

		return err
	}

	name := markdownName(output)

	opts.status("writing %s\n", name)

	return writeFile(opts, name, []byte(text))
}

var errWriteStdin = errors.New("cannot write back to standard input")
