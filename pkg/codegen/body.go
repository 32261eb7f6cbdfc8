package codegen

import (
	"strings"

	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/registry"
)

// rootIndent is the indentation of the outermost column wrapper.
const rootIndent = 6

func (g *generator) helpers(l layout.Layout) (string, []string) {
	var b strings.Builder
	var ids []string
	seen := map[string]bool{}
	walkComponents(l.Columns, func(c layout.Component) {
		def, ok := g.reg.Lookup(c.Type)
		if !ok || def.Helper == nil || seen[c.ID] {
			return
		}
		seen[c.ID] = true
		ids = append(ids, c.ID)
		b.WriteString(def.Helper(def.View(c.Props), registry.Context{ID: c.ID}))
	})
	return b.String(), ids
}

func (g *generator) body(l layout.Layout) string {
	width := l.ContainerWidth
	if width == "" {
		width = "100%"
	}
	var b strings.Builder
	b.WriteString(`    <div style={{ width: ` + registry.JSON(width) + `, margin: "0 auto" }}>` + "\n")
	g.columns(&b, l.Columns, rootIndent)
	b.WriteString("\n    </div>")
	return b.String()
}

func (g *generator) columns(b *strings.Builder, cols []layout.Column, level int) {
	indent := strings.Repeat(" ", level)
	for _, col := range cols {
		b.WriteString(indent + `<div className="` + layout.WidthClass(col.Width) + ` p-2">` + "\n")
		b.WriteString(indent + `  <div className="` + flexClasses(col) + ` p-4">` + "\n")
		for _, c := range col.Components {
			b.WriteString(indent + "    " + g.component(c) + "\n")
		}
		g.columns(b, col.ChildColumns, level+4)
		b.WriteString(indent + "  </div>\n")
		b.WriteString(indent + "</div>\n")
	}
}

func flexClasses(col layout.Column) string {
	dir := "flex-row"
	if col.Orientation == layout.Vertical {
		dir = "flex-col"
	}
	gap := col.Gap
	if gap == "" {
		gap = layout.DefaultGap
	}
	return "flex " + dir + " " + col.FlexLayout.String() + " gap-" + string(gap)
}

func (g *generator) component(c layout.Component) string {
	def, ok := g.lookup(c.Type)
	if !ok {
		return "<div>Unknown component: " + jsxText(c.Type) + "</div>"
	}
	var children strings.Builder
	for _, ch := range c.Children {
		children.WriteString(g.component(ch))
	}
	return def.Render(def.View(c.Props), registry.Context{ID: c.ID, Children: children.String()})
}

// jsxText returns s as JSX text content, falling back to a string
// expression when s holds characters JSX would parse.
func jsxText(s string) string {
	if strings.ContainsAny(s, "{}<>") {
		return "{" + registry.JSON(s) + "}"
	}
	return s
}
