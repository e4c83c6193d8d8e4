package eftemplate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// chdirTemp switches into a fresh directory and returns its path as the
// process sees it.
func chdirTemp(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	cwd, err := os.Getwd()
	require.NoError(t, err)
	return cwd
}

type fencedBlock struct {
	language string
	body     string
}

func fencedBlocks(t *testing.T, markdown string) []fencedBlock {
	t.Helper()
	src := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var blocks []fencedBlock
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		var body bytes.Buffer
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(src))
		}
		blocks = append(blocks, fencedBlock{
			language: string(fcb.Language(src)),
			body:     body.String(),
		})
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return blocks
}

func TestDefault(t *testing.T) {
	f := Default()
	assert.True(t, f.IsDefault())
	assert.Equal(t, DefaultFormat, f.Template())
	assert.Empty(t, f.Source())
}

func TestRender_DefaultFormat(t *testing.T) {
	cwd := chdirTemp(t)
	path := filepath.Join(cwd, "src", "main.rs")

	out := Default().Render(path, "fn main() {}")
	assert.Equal(t, filepath.Join("src", "main.rs")+"\n```rust\nfn main() {}\n```\n", out)

	blocks := fencedBlocks(t, out)
	require.Len(t, blocks, 1)
	assert.Equal(t, "rust", blocks[0].language)
	assert.Equal(t, "fn main() {}\n", blocks[0].body)
}

func TestRender_Placeholders(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     string
		content  string
		want     string
	}{
		{
			name:     "no placeholders",
			template: "static\n",
			path:     "a.go",
			content:  "package a",
			want:     "static\n",
		},
		{
			name:     "repeated placeholders",
			template: "{filePath}|{filePath}|{language}|{language}|{content}{content}",
			path:     "a.go",
			content:  "x",
			want:     "a.go|a.go|go|go|xx",
		},
		{
			name:     "unknown placeholders left alone",
			template: "{name} {filePath} {{content}}",
			path:     "a.py",
			content:  "pass",
			want:     "{name} a.py {pass}",
		},
		{
			name:     "content is not re-substituted",
			template: "{content}",
			path:     "a.txt",
			content:  "literal {filePath} and {language}",
			want:     "literal {filePath} and {language}",
		},
		{
			name:     "unmapped extension",
			template: "{language}",
			path:     "data.unknownext",
			want:     "plaintext",
		},
		{
			name:     "no extension",
			template: "{language}",
			path:     "Makefile",
			want:     "plaintext",
		},
		{
			name:     "relative path unchanged",
			template: "{filePath}",
			path:     "../elsewhere/x.md",
			want:     "../elsewhere/x.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.template, "").Render(tt.path, tt.content))
		})
	}
}

func TestDisplayPath(t *testing.T) {
	cwd := chdirTemp(t)
	outside := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"inside cwd", filepath.Join(cwd, "a", "b.txt"), filepath.Join("a", "b.txt")},
		{"cwd itself", cwd, "."},
		{"outside cwd falls back to absolute", filepath.Join(outside, "x.txt"), filepath.Join(outside, "x.txt")},
		{"relative passes through", "rel/x.txt", "rel/x.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayPath(tt.path)
			assert.Equal(t, tt.want, got)
			assert.False(t, strings.HasPrefix(got, ".."), "display path must not climb out of cwd")
		})
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "root")
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0755))

	path, ok, err := Find(deep, FileName)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, FileName), path)

	_, ok, err = Find(deep, ".no-such-format-file")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFind_SkipsDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "root")
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(sub, FileName), 0755))

	path, ok, err := Find(sub, FileName)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, FileName), path)
}

func TestFind_UninspectableCandidate(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "root")
	locked := filepath.Join(root, "locked")
	sub := filepath.Join(locked, "sub")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	_, ok, err := Find(sub, FileName)
	require.Error(t, err)
	assert.False(t, ok)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FormatLookupFailed, fe.Type)
	assert.Equal(t, filepath.Join(sub, FileName), fe.File)
	assert.ErrorIs(t, err, os.ErrPermission)

	_, err = FindAndLoad(filepath.Join(sub, "t.md"))
	assert.True(t, IsFormatError(err))
}

func TestFindAndLoad_NearestWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "ANCESTOR {filePath}\n")
	writeFile(t, filepath.Join(root, "project", FileName), "NEAREST {content}\n")
	template := filepath.Join(root, "project", "prompt.md")
	writeFile(t, template, "#ef *.go\n")

	f, err := FindAndLoad(template)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "project", FileName), f.Source())

	out := f.Render("main.go", "body")
	assert.Equal(t, "NEAREST body\n", out)
	assert.NotContains(t, out, "ANCESTOR")
}

func TestFindAndLoad_FromDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "dir", FileName), "dir format")

	f, err := FindAndLoad(filepath.Join(root, "dir"))
	require.NoError(t, err)
	assert.Equal(t, "dir format", f.Template())
}

func TestFindAndLoad_Ancestor(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "{language}:{content}")
	template := filepath.Join(root, "a", "b", "t.md")
	writeFile(t, template, "")

	f, err := FindAndLoad(template)
	require.NoError(t, err)
	assert.Equal(t, "go:x", f.Render("x.go", "x"))
}

func TestFindAndLoad_ReadFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := t.TempDir()
	formatPath := filepath.Join(root, FileName)
	writeFile(t, formatPath, "secret")
	require.NoError(t, os.Chmod(formatPath, 0))

	_, err := FindAndLoad(filepath.Join(root, "t.md"))
	require.Error(t, err)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FormatReadFailed, fe.Type)
	assert.Equal(t, formatPath, fe.File)
	assert.True(t, IsFormatError(err))
}

func TestLoader(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "root:{content}")
	writeFile(t, filepath.Join(root, "special", FileName), "special:{content}")
	writeFile(t, filepath.Join(root, "plain", "a.txt"), "a")
	writeFile(t, filepath.Join(root, "special", "b.txt"), "b")

	l, err := NewLoader("", 0)
	require.NoError(t, err)
	assert.Equal(t, FileName, l.FileName())

	plain, err := l.Load(filepath.Join(root, "plain", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "root:a", plain.Render("a.txt", "a"))

	special, err := l.Load(filepath.Join(root, "special", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "special:b", special.Render("b.txt", "b"))

	again, err := l.Load(filepath.Join(root, "plain", "other.txt"))
	require.NoError(t, err)
	assert.Same(t, plain, again)
	assert.Equal(t, 2, l.Len())
}

func TestLoader_CustomName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".myformat"), "custom")
	writeFile(t, filepath.Join(root, FileName), "ignored")

	l, err := NewLoader(".myformat", 4)
	require.NoError(t, err)

	f, err := l.Load(filepath.Join(root, "t.md"))
	require.NoError(t, err)
	assert.Equal(t, "custom", f.Template())
}

func TestLoader_Eviction(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"a", "b", "c"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}

	l, err := NewLoader(FileName, 2)
	require.NoError(t, err)
	for _, d := range []string{"a", "b", "c"} {
		_, err := l.Load(filepath.Join(root, d))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, l.Len())
}

func TestFormatErrorMessage(t *testing.T) {
	err := newFormatError(FormatReadFailed, "/x/.eftemplate", os.ErrPermission)
	assert.Equal(t, "format read failed: /x/.eftemplate: permission denied", err.Error())
	assert.ErrorIs(t, err, os.ErrPermission)
}
