// Package render groups the renderers that turn a layout into something
// other than code.
//
// The [outline] subpackage draws the layout tree as a Graphviz diagram
// (DOT source, or SVG rendered in process):
//
//	dot := outline.ToDOT(l, outline.Options{})
//	svg, err := outline.RenderSVG(ctx, dot)
//
// Generated React code lives in the codegen package.
package render
