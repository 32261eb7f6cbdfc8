package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/registry"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

func TestRenderTree(t *testing.T) {
	l := layout.Default()
	l, child := layout.AddColumn(l, layout.Vertical, "column-1")
	l.Columns[0].Components = []layout.Component{
		{ID: "component-a", Type: "button", Props: layout.Props{"text": "Buy"}},
		{ID: "component-b", Type: "carousel"},
	}

	out := renderTree(l, registry.Default(), editor.Selection{ComponentID: "component-a", ColumnID: "column-1"})

	for _, want := range []string{"Page", "column-1", child, "component-a", "component-b", "carousel (unknown type)", "w-full"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "component-b"), strings.Index(out, child), "components before child columns")
}

func TestPrintOutcome(t *testing.T) {
	h := newHarness(t)

	assert.True(t, printOutcome(layout.Outcome{CreatedID: "x"}))
	assert.Empty(t, h.status.String())

	assert.False(t, printOutcome(layout.Outcome{Refused: true}))
	assert.Contains(t, h.status.String(), "last root column")

	assert.False(t, printOutcome(layout.Outcome{Unresolved: []string{"column-9"}}))
	assert.Contains(t, h.status.String(), "column-9 not found")
}

func TestPaletteTable(t *testing.T) {
	out := paletteTable(registry.Default().Search("hero"))
	assert.Contains(t, out, string(registry.CategoryHero))
	assert.Contains(t, out, "hero-title")
	assert.NotContains(t, out, "navbar-menu")
}

func TestTemplateTable(t *testing.T) {
	cat := theme.NewCatalog()
	cat, added, err := cat.AddCategory("Landing")
	assert.NoError(t, err)
	cat, tmpl, err := cat.Save("Big header", theme.SiteHeader, layout.Default(), added.ID)
	assert.NoError(t, err)

	out := templateTable(cat.ForPart(""), cat)
	assert.Contains(t, out, shortID(tmpl.ID))
	assert.Contains(t, out, "Big header")
	assert.Contains(t, out, "Landing")
	assert.Contains(t, out, "Entire Site")
}
