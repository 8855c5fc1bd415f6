// Package cmd contains the mdblock command line interface.
package cmd

import (
	_ "embed"
	"io"
	"os"

	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

const appname = "mdblock"

// Execute runs the command line with the given arguments and exits with a
// non-zero status on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	if err := run(newOptions(osFS{}, os.Stdin), args, stdout, stderr); err != nil {
		os.Exit(1)
	}
}

func run(opts *options, args []string, stdout, stderr io.Writer) error {
	root := rootCmd(opts)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(opts.stdin)

	return root.Execute()
}

func rootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:           appname,
		Short:         "Markdown block converter",
		Long:          rootHelp,
		SilenceUsage:  true,
		SilenceErrors: false,

		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true}, //nolint:exhaustruct
	}

	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status output")

	root.AddCommand(
		parseCmd(opts),
		renderCmd(opts),
		fmtCmd(opts),
		lsCmd(opts),
		previewCmd(opts),
		execCmd(opts),
	)

	return root
}
