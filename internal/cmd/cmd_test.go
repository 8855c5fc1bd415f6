package cmd

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"strings"
	"testing"

	"github.com/ezerfernandes/mdblock/internal/mdblock"
	"github.com/liamg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = "# Title\n" +
	"1. one\n2. two\n- bullet\n3. three\n" +
	"```go file=main.go\nfmt.Println(1)\n```\n" +
	"| a | b |\n|---|---|\n| 1 |\n" +
	"```sh\necho hi\n```\n" +
	"plain text"

func newFS(t *testing.T, files map[string]string) *memoryfs.FS {
	t.Helper()

	fsys := memoryfs.New()

	for name, content := range files {
		require.NoError(t, fsys.WriteFile(name, []byte(content), fs.ModePerm))
	}

	return fsys
}

func execute(fsys fileSystem, stdin string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	err := run(newOptions(fsys, strings.NewReader(stdin)), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, fsys fs.FS, name string) string {
	t.Helper()

	data, err := fs.ReadFile(fsys, name)
	require.NoError(t, err)

	return string(data)
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	fsys := newFS(t, map[string]string{"doc.md": document})

	stdout, stderr, err := execute(fsys, "", "parse", "doc.md")
	require.NoError(t, err)
	assert.Contains(t, stderr, "doc.md: 9 block(s)")

	var doc mdblock.Document

	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	require.Len(t, doc, 9)
	assert.Equal(t, mdblock.KindHeading1, doc[0].Kind)
	assert.Equal(t, "go file=main.go", doc[5].Language())
	assert.Equal(t, [][]string{{"a", "b"}, {"1", ""}}, doc[6].Cells())
}

func TestParseCommandKindFilter(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(nil, document, "parse", "-q", "--kind", "list-*,code")
	require.NoError(t, err)

	var doc mdblock.Document

	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))

	kinds := make([]mdblock.Kind, len(doc))
	for i, block := range doc {
		kinds[i] = block.Kind
	}

	assert.Equal(t, []mdblock.Kind{
		mdblock.KindListOrdered, mdblock.KindListOrdered, mdblock.KindListUnordered,
		mdblock.KindListOrdered, mdblock.KindCode, mdblock.KindCode,
	}, kinds)
}

func TestParseCommandErrors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(newFS(t, nil), "", "parse", "missing.md")
	require.Error(t, err)

	_, _, err = execute(nil, "", "parse", "a.md", "b.md")
	require.ErrorIs(t, err, errTooManyArgs)

	_, _, err = execute(nil, "", "parse", "--kind", "[", "-")
	require.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()

	blocks := `[
		{"kind":"heading2","content":"Hello"},
		{"kind":"checklist","content":"task","attrs":{"checked":true}},
		{"kind":"callout-warning","content":"a\nb"}
	]`

	stdout, _, err := execute(nil, blocks, "render")
	require.NoError(t, err)
	assert.Equal(t, "## Hello\n\n- [x] task\n\n> ⚠️ **警告**\n> \n> a\n> b", stdout)

	fsys := newFS(t, map[string]string{"blocks.json": blocks})

	stdout, stderr, err := execute(fsys, "", "render", "blocks.json", "--output", "export")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "writing export.md")
	assert.True(t, strings.HasPrefix(readFile(t, fsys, "export.md"), "## Hello"))

	_, _, err = execute(nil, `[{"kind":"bogus"}]`, "render")
	require.ErrorIs(t, err, mdblock.ErrUnknownKind)
}

func TestFmtCommand(t *testing.T) {
	t.Parallel()

	fsys := newFS(t, map[string]string{"doc.md": "2. b\n- [x] c\n|x|y|\n|-|-|"})

	stdout, _, err := execute(fsys, "", "fmt", "doc.md")
	require.NoError(t, err)

	want := "1. b\n\n- [x] c\n\n| x | y |\n| --- | --- |\n"

	assert.Equal(t, want, stdout)

	_, stderr, err := execute(fsys, "", "fmt", "--write", "doc.md")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rewritten")
	assert.Equal(t, want, readFile(t, fsys, "doc.md"))

	_, stderr, err = execute(fsys, "", "fmt", "-w", "doc.md")
	require.NoError(t, err)
	assert.Contains(t, stderr, "unchanged")

	_, _, err = execute(nil, "x", "fmt", "-w")
	require.ErrorIs(t, err, errWriteStdin)
}

func TestFmtCommandCanonicalFile(t *testing.T) {
	t.Parallel()

	fsys := newFS(t, map[string]string{"doc.md": "# Title\n", "empty.md": ""})

	_, stderr, err := execute(fsys, "", "fmt", "-w", "doc.md")
	require.NoError(t, err)
	assert.Contains(t, stderr, "doc.md: unchanged")
	assert.Equal(t, "# Title\n", readFile(t, fsys, "doc.md"))

	_, stderr, err = execute(fsys, "", "fmt", "-w", "empty.md")
	require.NoError(t, err)
	assert.Contains(t, stderr, "empty.md: unchanged")
}

func TestLsCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(nil, document, "ls")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")

	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "KIND")
	assert.Regexp(t, `^2\s+list-ordered\s+1\s+1\s+one`, lines[2])
	assert.Regexp(t, `^3\s+list-ordered\s+1\s+2\s+two`, lines[3])
	assert.Regexp(t, `^4\s+list-unordered\s+1\s+bullet`, lines[4])
	assert.Regexp(t, `^5\s+list-ordered\s+1\s+1\s+three`, lines[5])
	assert.Contains(t, lines[7], "2x2: a, b")

	stdout, _, err = execute(nil, document, "ls", "--kind", "code")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 3)
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "first…", excerpt(mdblock.New(mdblock.KindParagraph, "first\nsecond")))
	assert.Equal(t, "[x] done", excerpt(mdblock.NewChecklist("done", true)))
	assert.Equal(t, "cat <c.png>", excerpt(mdblock.NewImage("c.png", "cat")))
	assert.Equal(t, "More: body", excerpt(mdblock.NewCollapsible("body", "More")))

	long := excerpt(mdblock.New(mdblock.KindParagraph, strings.Repeat("é", 100)))
	assert.Equal(t, excerptWidth, len([]rune(long)))
}

func TestPreviewCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(nil, document, "preview")
	require.NoError(t, err)

	assert.Contains(t, stdout, "<h1>Title</h1>")
	assert.Contains(t, stdout, "<table>")
	assert.Contains(t, stdout, `<code class="language-go`)

	fsys := newFS(t, map[string]string{"doc.md": "- [ ] task"})

	_, _, err = execute(fsys, "", "preview", "doc.md", "-o", "doc.html")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, fsys, "doc.html"), `type="checkbox"`)
}

func TestExecCommand(t *testing.T) {
	t.Parallel()

	fsys := newFS(t, map[string]string{"doc.md": document})
	dir := t.TempDir()

	stdout, stderr, err := execute(fsys, "", "exec", "doc.md", "--dir", dir, "--", "echo", "{lang}", "{index}")
	require.NoError(t, err)
	assert.Equal(t, "go 0\nsh 1\n", stdout)
	assert.Contains(t, stderr, "block 0 (go, file=main.go)")

	stdout, _, err = execute(fsys, "", "exec", "doc.md", "-q", "--dir", dir, "--lang", "sh", "--", "echo", "{lang}")
	require.NoError(t, err)
	assert.Equal(t, "sh\n", stdout)

	stdout, _, err = execute(fsys, "", "exec", "doc.md", "-q", "--dir", dir, "--meta", "file=main.go", "--", "echo", "{lang}")
	require.NoError(t, err)
	assert.Equal(t, "go\n", stdout)
}

func TestExecCommandUpdate(t *testing.T) {
	t.Parallel()

	fsys := newFS(t, map[string]string{"doc.md": document})
	dir := t.TempDir()

	_, _, err := execute(fsys, "", "exec", "doc.md", "-q", "--dir", dir, "--lang", "sh", "--update",
		"--", "echo", "'echo bye'", ">", "{}")
	require.NoError(t, err)

	doc := mdblock.Parse(readFile(t, fsys, "doc.md"))
	code := mdblock.Unfence(doc)

	require.Len(t, code, 2)
	assert.Equal(t, "fmt.Println(1)", code[0].Content)
	assert.Equal(t, "echo bye", code[1].Content)
}

func TestExecCommandBatch(t *testing.T) {
	t.Parallel()

	fsys := newFS(t, map[string]string{"doc.md": document})
	dir := t.TempDir()

	stdout, stderr, err := execute(fsys, "", "exec", "doc.md", "--dir", dir, "--batch", "--", "echo", "{}")
	require.NoError(t, err)
	assert.Contains(t, stderr, "batch (2 blocks)")
	assert.Contains(t, stdout, "0_main.go")
	assert.Contains(t, stdout, "block_1.sh")
}

func TestExecCommandFailures(t *testing.T) {
	t.Parallel()

	fsys := newFS(t, map[string]string{"doc.md": document})
	dir := t.TempDir()

	_, _, err := execute(fsys, "", "exec", "doc.md", "-q", "--dir", dir, "--", "exit", "3")
	require.ErrorIs(t, err, errCommandFailed)

	_, _, err = execute(fsys, "", "exec", "doc.md", "-q", "--dir", dir, "--batch", "--", "exit", "2")
	require.ErrorIs(t, err, errCommandFailed)

	_, _, err = execute(fsys, "", "exec", "doc.md", "-q", "--dir", dir)
	require.ErrorIs(t, err, errMissingCommand)
}

func TestMarkdownName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "notes.md", markdownName("notes"))
	assert.Equal(t, "notes.md", markdownName("notes.md"))
	assert.Equal(t, "NOTES.MD", markdownName("NOTES.MD"))
	assert.Equal(t, "notes.txt.md", markdownName("notes.txt"))
}

func TestTempFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3_main.go", tempFilename(&blockInfo{index: 3, file: "cmd/main.go"}))
	assert.Equal(t, "block_1.py", tempFilename(&blockInfo{index: 1, lang: "PY"}))
	assert.Equal(t, "block_0.txt", tempFilename(&blockInfo{index: 0}))
}
