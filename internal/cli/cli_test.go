package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

// harness runs commands against a file store in a temp directory.
type harness struct {
	t      *testing.T
	cli    *CLI
	config string
	status *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	data := fmt.Sprintf("[store]\nbackend = \"file\"\ndir = %q\n\n[cache]\nbackend = \"file\"\ndir = %q\n",
		filepath.Join(dir, "data"), filepath.Join(dir, "cache"))
	require.NoError(t, os.WriteFile(cfg, []byte(data), 0o644))

	status := &bytes.Buffer{}
	prev := stdout
	stdout = status
	t.Cleanup(func() { stdout = prev })

	return &harness{t: t, cli: New(io.Discard, log.InfoLevel), config: cfg, status: status}
}

// run executes one command and returns what it wrote to its output.
func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	root := h.cli.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", h.config}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, "pagesmith %s", strings.Join(args, " "))
	return out
}

func (h *harness) layout() layout.Layout {
	h.t.Helper()
	l, err := layout.Unmarshal([]byte(h.mustRun("show", "--json")))
	require.NoError(h.t, err)
	return l
}

func TestComponentAddPersists(t *testing.T) {
	h := newHarness(t)

	h.mustRun("component", "add", "button", "--prop", "text=Buy now", "--prop", "disabled=true")

	l := h.layout()
	require.Len(t, l.Columns, 1)
	require.Len(t, l.Columns[0].Components, 1)
	comp := l.Columns[0].Components[0]
	assert.Equal(t, "button", comp.Type)
	assert.Equal(t, "Buy now", comp.Props["text"])
	assert.Equal(t, true, comp.Props["disabled"])
}

func TestColumnAddSplitsWidth(t *testing.T) {
	h := newHarness(t)

	h.mustRun("column", "add")
	h.mustRun("column", "add")

	l := h.layout()
	require.Len(t, l.Columns, 3)
	for _, c := range l.Columns {
		assert.Equal(t, 4, c.Width, c.ID)
	}

	h.mustRun("column", "width", l.Columns[0].ID, "8")
	h.mustRun("column", "set", l.Columns[1].ID, "--gap", "4", "--flex", "items-center")
	l = h.layout()
	assert.Equal(t, 8, l.Columns[0].Width)
	assert.Equal(t, layout.Gap("4"), l.Columns[1].Gap)
}

func TestColumnSetRejectsBadInput(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("column", "set", "column-1")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = h.run("column", "set", "column-1", "--gap", "5")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestStrictFlag(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("column", "rm", "nope")
	require.NoError(t, err)
	assert.Contains(t, h.status.String(), "nope")

	_, err = h.run("--strict", "column", "rm", "nope")
	assert.True(t, errors.Is(err, errors.ErrCodeColumnNotFound), "got %v", err)
}

func TestComponentMoveAndRemove(t *testing.T) {
	h := newHarness(t)
	h.mustRun("component", "add", "text")
	h.mustRun("component", "add", "button")

	h.mustRun("component", "move", "1", "0", "--from", "column-1")
	l := h.layout()
	comps := l.Columns[0].Components
	require.Len(t, comps, 2)
	assert.Equal(t, "button", comps[0].Type)

	h.mustRun("component", "rm", comps[0].ID, "--column", "column-1")
	l = h.layout()
	require.Len(t, l.Columns[0].Components, 1)
	assert.Equal(t, "text", l.Columns[0].Components[0].Type)
}

func TestContainerWidth(t *testing.T) {
	h := newHarness(t)
	h.mustRun("container-width", "1200px")
	assert.Equal(t, "1200px", h.layout().ContainerWidth)
}

func TestShowTree(t *testing.T) {
	h := newHarness(t)
	h.mustRun("component", "add", "hero-title")

	out := h.mustRun("show")
	assert.Contains(t, out, "column-1")
	assert.Contains(t, out, "component-")
}

func TestGenerateToStdout(t *testing.T) {
	h := newHarness(t)
	h.mustRun("component", "add", "text")

	out := h.mustRun("generate", "-o", "-")
	assert.Contains(t, out, "export default function GeneratedUI()")

	_, err := h.run("generate", "-o", "-", "-f", "tsx,json")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = h.run("generate", "-f", "pdf")
	assert.Error(t, err)
}

func TestGenerateToFiles(t *testing.T) {
	h := newHarness(t)
	base := filepath.Join(t.TempDir(), "out", "Header")

	h.mustRun("generate", "-f", "tsx,json", "-o", base)

	tsx, err := os.ReadFile(base + ".tsx")
	require.NoError(t, err)
	assert.Contains(t, string(tsx), "GeneratedUI")

	data, err := os.ReadFile(base + ".json")
	require.NoError(t, err)
	l, err := layout.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, "column-1", l.Columns[0].ID)
}

func TestTemplateLifecycle(t *testing.T) {
	h := newHarness(t)

	h.mustRun("template", "new", "site-header")
	h.mustRun("component", "add", "navbar-menu")
	h.mustRun("template", "save", "Main header")

	out := h.mustRun("template", "list")
	assert.Contains(t, out, "Main header")
	assert.Contains(t, out, string(theme.SiteHeader))

	h.mustRun("template", "condition", "Main header", "Entire Site")
	h.mustRun("template", "rename", "Main header", "Header")
	h.mustRun("template", "activate", "Header")

	parts := h.mustRun("template", "parts")
	assert.Contains(t, parts, "site-header")
	assert.Contains(t, parts, "Header")

	h.mustRun("template", "new", "homepage")
	assert.Empty(t, h.layout().Columns[0].Components)

	h.mustRun("template", "load", "Header")
	l := h.layout()
	require.Len(t, l.Columns[0].Components, 1)
	assert.Equal(t, "navbar-menu", l.Columns[0].Components[0].Type)

	h.mustRun("template", "rm", "Header")
	h.status.Reset()
	assert.Empty(t, h.mustRun("template", "list"))
	assert.Contains(t, h.status.String(), "No templates")
}

func TestTemplateSaveNeedsPart(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("template", "save", "Orphan")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = h.run("template", "save", "Bad", "--part", "sidebar")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	h.mustRun("template", "save", "Footer", "--part", "Site Footer")
	assert.Contains(t, h.mustRun("template", "list", "--part", "site-footer"), "Footer")
}

func TestCategoryCommands(t *testing.T) {
	h := newHarness(t)

	h.mustRun("category", "add", "Landing pages")
	out := h.mustRun("category", "list")
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "Landing pages")

	_, err := h.run("category", "rm", theme.GeneralCategoryID)
	assert.Error(t, err)

	_, err = h.run("category", "rename", "missing", "X")
	assert.True(t, errors.Is(err, errors.ErrCodeCategoryNotFound), "got %v", err)
}

func TestInitWritesConfig(t *testing.T) {
	h := newHarness(t)
	h.mustRun("component", "add", "text")

	fresh := filepath.Join(t.TempDir(), "pagesmith", "config.toml")
	h.config = fresh
	_, err := h.run("show")
	require.Error(t, err, "an explicit missing config is an error")

	// init writes the default config, which points at the default store;
	// only check the file is created.
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	h.mustRun("init")
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestParseProps(t *testing.T) {
	props, err := parseProps([]string{"text=Hello", "count=3", "on=false", `items=["a","b"]`, "empty="})
	require.NoError(t, err)
	assert.Equal(t, layout.Props{
		"text":  "Hello",
		"count": float64(3),
		"on":    false,
		"items": []any{"a", "b"},
		"empty": "",
	}, props)

	props, err = parseProps(nil)
	require.NoError(t, err)
	assert.Nil(t, props)

	for _, bad := range []string{"novalue", "=x", " =x"} {
		_, err := parseProps([]string{bad})
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), bad)
	}
}

func TestParseIndexes(t *testing.T) {
	from, to, err := parseIndexes([]string{"2", "0"})
	require.NoError(t, err)
	assert.Equal(t, 2, from)
	assert.Equal(t, 0, to)

	for _, args := range [][]string{{"a", "1"}, {"1", "b"}, {"-1", "0"}} {
		_, _, err := parseIndexes(args)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "%v", args)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, format string
		multiple       bool
		want           string
	}{
		{"", "tsx", false, "GeneratedUI.tsx"},
		{"", "svg", true, "GeneratedUI.svg"},
		{"Header.jsx", "tsx", false, "Header.jsx"},
		{"site/Header.tsx", "json", true, "site/Header.json"},
		{"site/Header", "dot", true, "site/Header.dot"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, outputPath(tt.output, tt.format, tt.multiple), "%+v", tt)
	}
}

func TestResolveTemplate(t *testing.T) {
	cat := theme.NewCatalog()
	cat, a, err := cat.Save("Header", theme.SiteHeader, layout.Default(), "")
	require.NoError(t, err)
	cat, _, err = cat.Save("Footer", theme.SiteFooter, layout.Default(), "")
	require.NoError(t, err)
	cat, _, err = cat.Save("Footer", theme.SiteFooter, layout.Default(), "")
	require.NoError(t, err)

	got, err := resolveTemplate(cat, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = resolveTemplate(cat, "header")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = resolveTemplate(cat, shortID(a.ID))
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = resolveTemplate(cat, "Footer")
	assert.True(t, errors.Is(err, errors.ErrCodeConflict))

	_, err = resolveTemplate(cat, "Sidebar")
	assert.True(t, errors.Is(err, errors.ErrCodeTemplateNotFound))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "1b4e28ba", shortID("template-1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	assert.Equal(t, "custom", shortID("custom"))
}
