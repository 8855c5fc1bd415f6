package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ezerfernandes/mdblock/internal/mdblock"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	metaFile = "file"
	stdinArg = "-"
	mdSuffix = ".md"

	fileMode = 0o644
	dirMode  = 0o755
)

type (
	statusFunc func(format string, args ...interface{})
	filterFunc func(lang string, meta mdblock.Meta) bool
	kindFunc   func(kind mdblock.Kind) bool
)

// fileSystem is where documents are read from and written to.
type fileSystem interface {
	fs.FS
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

type options struct {
	quiet bool
	kinds []string
	lang  []string
	meta  map[string]string
	dir   string
	keep  bool

	filter filterFunc
	kind   kindFunc
	status statusFunc

	fsys  fileSystem
	stdin io.Reader
}

func newOptions(fsys fileSystem, stdin io.Reader) *options {
	return &options{ //nolint:exhaustruct
		fsys:   fsys,
		stdin:  stdin,
		status: func(string, ...interface{}) {},
		filter: func(string, mdblock.Meta) bool { return true },
		kind:   func(mdblock.Kind) bool { return true },
	}
}

func (opts *options) createStatus(out io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(out, format, args...)
	}
}

// prepare installs the status printer and compiles the filters.
func (opts *options) prepare(cmd *cobra.Command) error {
	opts.createStatus(cmd.ErrOrStderr())

	var err error

	if opts.kind, err = kindFilter(opts.kinds); err != nil {
		return err
	}

	opts.filter, err = filter(opts.lang, opts.meta)

	return err
}

func kindFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringSliceVarP(&opts.kinds, "kind", "k", []string{"*"}, "block kind glob patterns to select")
}

func codeFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringSliceVarP(&opts.lang, "lang", "l", []string{"*"}, "code language glob patterns to select")
	cmd.Flags().StringToStringVarP(&opts.meta, "meta", "m", nil, "code metadata key=value pairs to select")
}

func dirFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "directory for extracted code blocks")
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func matchAny(globs []glob.Glob, value string) bool {
	if len(globs) == 0 {
		return true
	}

	for _, g := range globs {
		if g.Match(value) {
			return true
		}
	}

	return false
}

func kindFilter(patterns []string) (kindFunc, error) {
	globs, err := compile(patterns)
	if err != nil {
		return nil, err
	}

	return func(kind mdblock.Kind) bool {
		return matchAny(globs, string(kind))
	}, nil
}

func filter(lang []string, meta map[string]string) (filterFunc, error) {
	globs, err := compile(lang)
	if err != nil {
		return nil, err
	}

	return func(blockLang string, blockMeta mdblock.Meta) bool {
		if !matchAny(globs, blockLang) {
			return false
		}

		for key, value := range meta {
			if blockMeta.Get(key) != value {
				return false
			}
		}

		return true
	}, nil
}

func checkargs(cmd *cobra.Command, args []string) error {
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		args = args[:dash]
	}

	if len(args) > 1 {
		return errTooManyArgs
	}

	return nil
}

func source(args []string) string {
	if len(args) == 0 {
		return stdinArg
	}

	return args[0]
}

func readSource(opts *options, filename string) ([]byte, error) {
	if filename == stdinArg {
		src, err := io.ReadAll(opts.stdin)

		return src, errors.Wrap(err, "reading standard input")
	}

	src, err := fs.ReadFile(opts.fsys, filename)

	return src, errors.Wrapf(err, "reading %s", filename)
}

func writeFile(opts *options, filename string, data []byte) error {
	return errors.Wrapf(opts.fsys.WriteFile(filename, data, fileMode), "writing %s", filename)
}

// markdownName forces the .md suffix on an output file name.
func markdownName(name string) string {
	if strings.HasSuffix(strings.ToLower(name), mdSuffix) {
		return name
	}

	return name + mdSuffix
}

var errTooManyArgs = errors.New("at most one file argument is accepted")
