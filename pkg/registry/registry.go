// Package registry is the catalog of component types a page can contain.
//
// Each [Definition] bundles everything the rest of the system needs to know
// about one type: its palette entry (label, icon, category, description),
// the props a fresh instance starts with, the render-time fallbacks for
// missing props, the symbols its generated code imports, and two renderers:
// Render produces JSX for the code generator, Summary produces a one-line
// preview for the terminal editor. Both read props through the same [View],
// so a missing prop resolves to the same fallback everywhere.
//
// # Usage
//
//	reg := registry.Default()
//	def, ok := reg.Lookup("button")
//	jsx := def.Render(registry.NewView(props, def.Fallbacks), registry.Context{ID: id})
package registry

import (
	"slices"
	"strings"

	"github.com/matzehuels/pagesmith/pkg/layout"
)

// Category groups definitions in the palette.
type Category string

// Palette categories in display order.
const (
	CategoryBasic       Category = "Basic"
	CategoryHero        Category = "Hero"
	CategoryInteractive Category = "Interactive"
	CategoryContent     Category = "Content"
	CategoryMedia       Category = "Media"
	CategoryNavigation  Category = "Navigation"
)

// Categories lists palette categories in display order.
var Categories = []Category{
	CategoryBasic, CategoryHero, CategoryInteractive,
	CategoryContent, CategoryMedia, CategoryNavigation,
}

// Import is one named symbol pulled from a module by generated code.
// Default exports use the "default as Name" form.
type Import struct {
	Module string
	Symbol string
}

// Context carries per-instance data a renderer may need besides props.
type Context struct {
	// ID is the component's id.
	ID string
	// Children is the already rendered markup of nested components.
	Children string
}

// Definition describes one component type.
type Definition struct {
	Type        string
	Label       string
	Icon        string
	Category    Category
	Description string

	// Defaults are the props a new instance is created with.
	Defaults layout.Props
	// Fallbacks are substituted at render time for missing or empty props.
	Fallbacks layout.Props
	// Imports are the symbols generated code needs, in declaration order.
	Imports []Import

	Render  func(v View, ctx Context) string
	Summary func(v View) string
	// Helper, if set, returns a standalone definition emitted once per
	// instance ahead of the generated component.
	Helper func(v View, ctx Context) string
}

// View returns a view of props backed by the definition's fallbacks.
func (d Definition) View(props layout.Props) View {
	return NewView(props, d.Fallbacks)
}

// Registry maps type names to definitions, keeping registration order.
type Registry struct {
	defs  map[string]Definition
	order []string
}

// New builds a registry from defs. A later definition of the same type
// replaces an earlier one.
func New(defs ...Definition) *Registry {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		r.Register(d)
	}
	return r
}

// Register adds or replaces a definition.
func (r *Registry) Register(d Definition) {
	if _, ok := r.defs[d.Type]; !ok {
		r.order = append(r.order, d.Type)
	}
	r.defs[d.Type] = d
}

// Lookup returns the definition for typ.
func (r *Registry) Lookup(typ string) (Definition, bool) {
	d, ok := r.defs[typ]
	return d, ok
}

// Has reports whether typ is registered.
func (r *Registry) Has(typ string) bool {
	_, ok := r.defs[typ]
	return ok
}

// Types returns registered type names in registration order.
func (r *Registry) Types() []string {
	return slices.Clone(r.order)
}

// Defaults returns a copy of the creation-time props for typ, or an empty
// bag for unknown types.
func (r *Registry) Defaults(typ string) layout.Props {
	d, ok := r.defs[typ]
	if !ok || d.Defaults == nil {
		return layout.Props{}
	}
	return d.Defaults.Clone()
}

// Group is one palette category with its definitions.
type Group struct {
	Category    Category
	Definitions []Definition
}

// Palette returns definitions grouped by category, categories in
// [Categories] order and definitions in registration order. Empty
// categories are omitted.
func (r *Registry) Palette() []Group {
	return r.Search("")
}

// Search is [Registry.Palette] restricted to definitions whose label or
// description contains term, ignoring case.
func (r *Registry) Search(term string) []Group {
	term = strings.ToLower(strings.TrimSpace(term))
	var groups []Group
	for _, cat := range Categories {
		var defs []Definition
		for _, typ := range r.order {
			d := r.defs[typ]
			if d.Category != cat || !matches(d, term) {
				continue
			}
			defs = append(defs, d)
		}
		if len(defs) > 0 {
			groups = append(groups, Group{Category: cat, Definitions: defs})
		}
	}
	return groups
}

func matches(d Definition, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Label), term) ||
		strings.Contains(strings.ToLower(d.Description), term)
}

// Default returns a registry with every built-in component type.
func Default() *Registry {
	r := New()
	for _, group := range [][]Definition{basic(), hero(), interactive(), content(), media(), navigation()} {
		for _, d := range group {
			r.Register(d)
		}
	}
	return r
}
