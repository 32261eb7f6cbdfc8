// Package pkg provides the core libraries of Pagesmith, a page builder that
// edits a page as a tree of columns and components and generates a React
// component from it.
//
// # Overview
//
// The typical data flow:
//
//	layout.Request (CLI, HTTP API, terminal editor)
//	         ↓
//	    [editor] session (selection, strict mode, persistence hook)
//	         ↓
//	    [layout] pure mutations (add/move/delete columns and components)
//	         ↓
//	    [pipeline] export (cache lookup, then codegen or outline)
//	         ↓
//	    TSX / JSON / DOT / SVG
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/pagesmith/pkg/codegen"
//	    "github.com/matzehuels/pagesmith/pkg/layout"
//	    "github.com/matzehuels/pagesmith/pkg/registry"
//	)
//
//	l := layout.Default()
//	l, _, _ = layout.Apply(l, layout.Request{
//	    Op:       layout.OpAddComponent,
//	    ColumnID: "column-1",
//	    Type:     "button",
//	    Props:    registry.Default().Defaults("button"),
//	})
//	fmt.Println(codegen.Run(l, registry.Default()).Code)
//
// # Main Packages
//
// ## Domain
//
// [layout] - The layout tree and every mutation and query on it. All
// functions are pure: they return a new layout and never modify their input.
//
// [registry] - Component definitions: palette metadata, default props and
// the JSX each type renders to.
//
// [codegen] - Deterministic React/JSX generation from a layout.
//
// [theme] - Saved templates per site part, display conditions and
// categories.
//
// [editor] - The live editing session shared by the CLI, the terminal editor
// and the HTTP API.
//
// ## Infrastructure
//
// [store] - Persistence of the session and the template catalog (file,
// memory, Redis, MongoDB).
//
// [cache] - Artifact cache keyed by layout hash (file, Redis, null).
//
// [pipeline] - Export runner used by the CLI and the API.
//
// [render/outline] - The layout tree as a Graphviz diagram.
//
// [server] - The HTTP JSON API.
//
// [config] - TOML configuration.
//
// [errors] - Error codes shared by every package and mapped to HTTP statuses.
//
// [observability] - Hooks for metrics and tracing.
package pkg
