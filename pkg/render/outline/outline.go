// Package outline renders a layout tree as a Graphviz diagram.
//
// The diagram shows structure rather than appearance: the page at the top,
// columns as boxes labeled with their width class and orientation, and
// components as notes hanging off the column that owns them. It is meant
// for reviewing deeply nested layouts where the generated markup is hard
// to read.
//
//	dot := outline.ToDOT(l, outline.Options{Detailed: true})
//	svg, err := outline.RenderSVG(ctx, dot)
package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/registry"
)

// pageNode is the id of the synthetic root node.
const pageNode = "page"

// Options configures diagram generation.
type Options struct {
	// Detailed adds flex alignment and gap to column labels and the
	// registry summary to component labels.
	Detailed bool
	// Registry supplies component summaries. Nil uses registry.Default().
	Registry *registry.Registry
}

// ToDOT converts a layout to Graphviz DOT. Output is deterministic: nodes
// and edges follow tree order.
func ToDOT(l layout.Layout, opts Options) string {
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	w := &writer{opts: opts}
	w.line("digraph Layout {")
	w.line("  rankdir=TB;")
	w.line(`  bgcolor="transparent";`)
	w.line(`  node [fontname="Helvetica", fontsize=14, margin="0.2,0.1"];`)
	w.line("  ranksep=0.4;")
	w.line("  nodesep=0.25;")
	w.line("")

	width := l.ContainerWidth
	if width == "" {
		width = layout.DefaultContainerWidth
	}
	w.node(pageNode, "Page\n"+width, `shape=box`, `style="rounded,bold"`)
	for _, c := range l.Columns {
		w.column(pageNode, c)
	}
	w.line("}")
	return w.buf.String()
}

type writer struct {
	buf  bytes.Buffer
	opts Options
}

func (w *writer) line(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func (w *writer) node(id, label string, attrs ...string) {
	attrs = append([]string{fmt.Sprintf("label=%q", label)}, attrs...)
	fmt.Fprintf(&w.buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
}

func (w *writer) edge(from, to string, attrs ...string) {
	if len(attrs) == 0 {
		fmt.Fprintf(&w.buf, "  %q -> %q;\n", from, to)
		return
	}
	fmt.Fprintf(&w.buf, "  %q -> %q [%s];\n", from, to, strings.Join(attrs, ", "))
}

func (w *writer) column(parent string, c layout.Column) {
	w.node(c.ID, columnLabel(c, w.opts.Detailed), `shape=box`, `style="filled"`, `fillcolor="#eef2ff"`)
	w.edge(parent, c.ID)
	for _, comp := range c.Components {
		w.component(c.ID, comp)
	}
	for _, child := range c.ChildColumns {
		w.column(c.ID, child)
	}
}

func (w *writer) component(parent string, c layout.Component) {
	w.node(c.ID, w.componentLabel(c), `shape=note`, `style="filled"`, `fillcolor="#fffbeb"`)
	w.edge(parent, c.ID, `style=dashed`, `arrowhead=none`)
	for _, child := range c.Children {
		w.component(c.ID, child)
	}
}

func columnLabel(c layout.Column, detailed bool) string {
	label := c.ID + "\n" + layout.WidthClass(c.Width) + " " + string(c.Orientation)
	if detailed {
		label += "\n" + c.FlexLayout.String() + " gap-" + string(c.Gap)
	}
	return label
}

func (w *writer) componentLabel(c layout.Component) string {
	if !w.opts.Detailed {
		return c.Type
	}
	def, ok := w.opts.Registry.Lookup(c.Type)
	if !ok || def.Summary == nil {
		return c.Type + "\n(unknown type)"
	}
	return c.Type + "\n" + def.Summary(def.View(c.Props))
}

// RenderSVG renders DOT source to SVG with an in-process Graphviz. The
// root element is rewritten to a plain viewBox with pixel dimensions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
