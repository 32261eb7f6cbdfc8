// Package codegen turns a layout tree into a React function component.
//
// Generation runs three passes over the tree and concatenates their output:
//
//  1. Imports: every component type contributes the symbols its markup
//     needs. Symbols are grouped by module; modules and symbols keep the
//     order in which they were first discovered, starting from a baseline
//     import of useState and useEffect from react.
//  2. Helpers: types with a helper (the navbar menu) get one standalone
//     function per instance, keyed by component id.
//  3. Body: each column becomes a width wrapper around a flex wrapper that
//     holds its components followed by its child columns.
//
// Output is a pure function of the tree: the same layout always produces
// byte-identical text. Unknown component types render as a visible
// placeholder and never abort generation.
package codegen

import (
	"strings"

	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/registry"
)

// ComponentName is the name of the generated default export.
const ComponentName = "GeneratedUI"

// Declaration is one import statement.
type Declaration struct {
	Module  string
	Symbols []string
}

// String renders the statement, e.g. `import { Button } from "@/components/ui";`.
func (d Declaration) String() string {
	return "import { " + strings.Join(d.Symbols, ", ") + ` } from "` + d.Module + `";`
}

// Output is the generated source together with what went into it.
type Output struct {
	Code    string
	Imports []Declaration
	// Helpers lists the ids of components that produced a helper function.
	Helpers []string
	// Unknown lists unregistered component types, in discovery order.
	Unknown []string
}

// Generate returns the source text for l. A nil registry means
// [registry.Default].
func Generate(l layout.Layout, reg *registry.Registry) string {
	return Run(l, reg).Code
}

// Run is [Generate] with the analysis results attached.
func Run(l layout.Layout, reg *registry.Registry) Output {
	if reg == nil {
		reg = registry.Default()
	}
	g := &generator{reg: reg, unknown: map[string]bool{}}

	imports := g.imports(l)
	helpers, helperIDs := g.helpers(l)
	body := g.body(l)

	var b strings.Builder
	for _, d := range imports {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpers)
	b.WriteString("\nexport default function " + ComponentName + "() {\n  return (\n")
	b.WriteString(body)
	b.WriteString("\n  );\n}")

	return Output{
		Code:    b.String(),
		Imports: imports,
		Helpers: helperIDs,
		Unknown: g.unknownOrder,
	}
}

// UnknownTypes lists the component types of l that reg has no definition
// for, in the same order as [Output.Unknown], without rendering anything.
func UnknownTypes(l layout.Layout, reg *registry.Registry) []string {
	if reg == nil {
		reg = registry.Default()
	}
	g := &generator{reg: reg, unknown: map[string]bool{}}
	walkComponents(l.Columns, func(c layout.Component) { g.lookup(c.Type) })
	return g.unknownOrder
}

type generator struct {
	reg          *registry.Registry
	unknown      map[string]bool
	unknownOrder []string
}

func (g *generator) lookup(typ string) (registry.Definition, bool) {
	def, ok := g.reg.Lookup(typ)
	if !ok && !g.unknown[typ] {
		g.unknown[typ] = true
		g.unknownOrder = append(g.unknownOrder, typ)
	}
	return def, ok
}

// walkComponents visits every component in generation order: a column's
// components (each followed by its nested children) before its child
// columns.
func walkComponents(cols []layout.Column, fn func(layout.Component)) {
	var visit func(layout.Component)
	visit = func(c layout.Component) {
		fn(c)
		for _, ch := range c.Children {
			visit(ch)
		}
	}
	for _, col := range cols {
		for _, c := range col.Components {
			visit(c)
		}
		walkComponents(col.ChildColumns, fn)
	}
}
