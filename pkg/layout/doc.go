// Package layout provides the page layout tree and its pure mutation and
// query algebra.
//
// # Overview
//
// A page is a [Layout]: an ordered list of root [Column] values plus a
// free-form container width. Columns nest recursively through
// [Column.ChildColumns] and hold an ordered list of typed [Component]
// leaves. Columns are sized on a twelve-unit grid; a column's width only
// matters when its orientation is [Horizontal].
//
// # Mutation
//
// Every mutation is a package-level function that takes a Layout and
// returns a new one. The input is never modified and the result never
// shares mutable state with it, so callers may keep old values around
// (for previews, diffs or persistence) without copying:
//
//	l := layout.Default()
//	l, colID := layout.AddColumn(l, layout.Horizontal, "")
//	l, compID := layout.AddComponent(l, colID, "button", layout.Props{"text": "Click me"})
//
// Operations that reference an identifier that no longer exists return the
// input unchanged instead of failing. The editing surface issues operations
// against stale identifiers during fast interaction (a drag racing a
// delete), so "not found" is a no-op here. Callers that want an error
// instead check existence with [FindColumn] / [FindComponent] first, which
// is what the strict mode of the editor package does.
//
// # Width renormalization
//
// Adding, deleting or reordering columns recomputes the width of every
// horizontal sibling in the affected group to floor(12/count). Vertical
// siblings keep their width. A manual resize ([UpdateColumnWidth],
// [UpdateColumn]) does not renormalize, so a user-chosen split sticks
// until the next structural change.
//
// # Requests
//
// [Request] is the tagged form of every operation, with a JSON encoding
// shared by the CLI, the HTTP API and the terminal editor. [Apply]
// dispatches a request to the matching function.
//
// # Concurrency
//
// Layout values are plain data. The functions in this package are safe to
// call concurrently on the same input since they never write to it; a
// holder of a "current layout" reference must still serialize its own
// read-compute-replace cycles.
package layout
