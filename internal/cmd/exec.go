package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezerfernandes/mdblock/internal/mdblock"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

//go:embed help/exec.md
var execHelp string

type blockInfo struct {
	index    int
	lang     string
	file     string
	tempPath string
}

// runner carries what a single exec invocation needs.
type runner struct {
	opts   *options
	dir    string
	script string
	update bool
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func execCmd(opts *options) *cobra.Command {
	var (
		update bool
		batch  bool
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "exec [flags] [filename] [-- command]",
		Aliases: []string{"e"},
		Short:   "Execute shell commands on individual code blocks",
		Long:    execHelp,
		Args:    checkargs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, args := script(cmd, args)
			if len(scr) == 0 {
				return errMissingCommand
			}

			if !cmd.Flag("dir").Changed {
				dir, err := os.MkdirTemp(".", appname+"-exec-")
				if err != nil {
					return err
				}

				opts.dir = dir

				if !opts.keep {
					defer os.RemoveAll(dir)
				}
			}

			absDir, err := filepath.Abs(opts.dir)
			if err != nil {
				return err
			}

			r := &runner{
				opts:   opts,
				dir:    absDir,
				script: scr,
				update: update,
				stdin:  cmd.InOrStdin(),
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
			}

			return r.run(source(args), batch)
		},

		DisableAutoGenTag: true,
	}

	codeFlags(cmd, opts)
	dirFlag(cmd, opts)

	cmd.Flags().BoolVar(&update, "update", false, "update markdown code blocks with modified files")
	cmd.Flags().BoolVar(&batch, "batch", false, "run command once for all files instead of once per block")
	cmd.Flags().BoolVar(&opts.keep, "keep", false, "don't remove temporary directory")

	return cmd
}

func script(cmd *cobra.Command, args []string) (string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return "", args
	}

	return strings.Join(args[dash:], " "), args[:dash]
}

func (r *runner) run(filename string, batch bool) error {
	src, err := readSource(r.opts, filename)
	if err != nil {
		return err
	}

	doc := mdblock.Parse(string(src))

	var (
		modified bool
		result   mdblock.Document
	)

	if batch {
		modified, result, err = r.batch(doc)
	} else {
		modified, result, err = r.perBlock(doc)
	}

	if r.update && modified {
		if filename == stdinArg {
			return errWriteStdin
		}

		if werr := writeFile(r.opts, filename, []byte(fileText(result))); werr != nil {
			return werr
		}
	}

	return err
}

func (r *runner) perBlock(doc mdblock.Document) (bool, mdblock.Document, error) {
	index := 0
	failures := 0

	modified, result, err := walk(doc, func(block *mdblock.Block) error {
		info := writeBlockToTemp(block, index, r.dir, r.opts.status)
		index++

		if info == nil {
			return nil
		}

		r.opts.status("--- block %d (%s%s) ---\n", info.index, info.lang, fileLabel(info.file))

		exitCode, execErr := runCommand(expandCommand(r.script, info, r.dir), r.dir, r.stdin, r.stdout, r.stderr)
		if execErr != nil {
			return execErr
		}

		if exitCode != 0 {
			failures++

			if r.update {
				r.opts.status("warning: block %d exited with %d, skipping update\n", info.index, exitCode)
			}

			return nil
		}

		if r.update {
			return readBack(block, info.tempPath)
		}

		return nil
	}, r.opts.filter)
	if err != nil {
		return false, nil, err
	}

	if failures > 0 {
		return modified, result, fmt.Errorf("%w: %d block(s)", errCommandFailed, failures)
	}

	return modified, result, nil
}

func (r *runner) batch(doc mdblock.Document) (bool, mdblock.Document, error) {
	var entries []*blockInfo

	index := 0

	_, _, err := walk(doc, func(block *mdblock.Block) error {
		info := writeBlockToTemp(block, index, r.dir, r.opts.status)
		index++

		if info != nil {
			entries = append(entries, info)
		}

		return nil
	}, r.opts.filter)
	if err != nil {
		return false, nil, err
	}

	if len(entries) == 0 {
		return false, doc, nil
	}

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.tempPath
	}

	expanded := strings.ReplaceAll(r.script, "{}", strings.Join(paths, " "))
	expanded = strings.ReplaceAll(expanded, "{dir}", r.dir)

	r.opts.status("--- batch (%d blocks) ---\n", len(entries))

	exitCode, err := runCommand(expanded, r.dir, r.stdin, r.stdout, r.stderr)
	if err != nil {
		return false, nil, err
	}

	if exitCode != 0 {
		if r.update {
			r.opts.status("warning: command exited with %d, skipping update\n", exitCode)
		}

		return false, doc, fmt.Errorf("%w: exit status %d", errCommandFailed, exitCode)
	}

	if !r.update {
		return false, doc, nil
	}

	byIndex := make(map[int]*blockInfo, len(entries))
	for _, e := range entries {
		byIndex[e.index] = e
	}

	index = 0

	return walk(doc, func(block *mdblock.Block) error {
		entry, ok := byIndex[index]
		index++

		if !ok {
			return nil
		}

		return readBack(block, entry.tempPath)
	}, r.opts.filter)
}

func readBack(block *mdblock.Block, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	block.Content = strings.TrimRight(string(code), "\n")

	return nil
}

func writeBlockToTemp(block *mdblock.Block, index int, dir string, status statusFunc) *blockInfo {
	lang, meta, _ := mdblock.ParseInfo(block.Language())

	info := &blockInfo{
		index: index,
		lang:  lang,
		file:  meta.Get(metaFile),
	}

	info.tempPath = filepath.Join(dir, tempFilename(info))

	if err := os.MkdirAll(filepath.Dir(info.tempPath), dirMode); err != nil {
		status("warning: failed to create directory for block %d: %v\n", index, err)

		return nil
	}

	if err := os.WriteFile(info.tempPath, []byte(block.Content+"\n"), fileMode); err != nil {
		status("warning: failed to write block %d: %v\n", index, err)

		return nil
	}

	return info
}

func tempFilename(info *blockInfo) string {
	if len(info.file) != 0 {
		return fmt.Sprintf("%d_%s", info.index, filepath.Base(filepath.FromSlash(info.file)))
	}

	return fmt.Sprintf("block_%d%s", info.index, langExtension(info.lang))
}

func langExtension(lang string) string {
	if len(lang) > 0 {
		return "." + strings.ToLower(lang)
	}

	return ".txt"
}

func expandCommand(scr string, info *blockInfo, dir string) string {
	expanded := strings.ReplaceAll(scr, "{}", info.tempPath)
	expanded = strings.ReplaceAll(expanded, "{lang}", info.lang)
	expanded = strings.ReplaceAll(expanded, "{index}", fmt.Sprint(info.index))
	expanded = strings.ReplaceAll(expanded, "{dir}", dir)

	return expanded
}

func runCommand(command, dir string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, errors.Wrap(err, "parsing command")
	}

	shell, err := interp.New(interp.Dir(dir), interp.StdIO(stdin, stdout, stderr))
	if err != nil {
		return -1, err
	}

	err = shell.Run(context.TODO(), file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}

func fileLabel(file string) string {
	if len(file) != 0 {
		return ", file=" + file
	}

	return ""
}

var (
	errMissingCommand = errors.New("command is required after '--'")
	errCommandFailed  = errors.New("command failed")
)
