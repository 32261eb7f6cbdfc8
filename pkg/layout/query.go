package layout

// FindComponent returns the first component with the given id together with
// the id of the column that directly owns it. The search is pre-order over
// columns (top-to-bottom, left-to-right), checking a column's components in
// stored order before descending into its child columns.
func FindComponent(l Layout, componentID string) (Component, string, bool) {
	return findComponentIn(l.Columns, componentID)
}

func findComponentIn(cols []Column, id string) (Component, string, bool) {
	for _, col := range cols {
		for _, comp := range col.Components {
			if comp.ID == id {
				return comp, col.ID, true
			}
		}
		if c, owner, ok := findComponentIn(col.ChildColumns, id); ok {
			return c, owner, true
		}
	}
	return Component{}, "", false
}

// FindColumn returns the first column with the given id, in the same
// traversal order as [FindComponent].
func FindColumn(l Layout, columnID string) (Column, bool) {
	var found Column
	ok := false
	Walk(l, func(c Column, _ int) bool {
		if c.ID == columnID {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

// HasColumn reports whether a column with the given id exists.
func HasColumn(l Layout, columnID string) bool {
	_, ok := FindColumn(l, columnID)
	return ok
}

// HasComponent reports whether a component with the given id exists.
func HasComponent(l Layout, componentID string) bool {
	_, _, ok := FindComponent(l, componentID)
	return ok
}

// Walk visits every column in pre-order with its depth (0 for root
// columns). Returning false from fn stops the walk.
func Walk(l Layout, fn func(c Column, depth int) bool) {
	walkColumns(l.Columns, 0, fn)
}

func walkColumns(cols []Column, depth int, fn func(Column, int) bool) bool {
	for _, c := range cols {
		if !fn(c, depth) {
			return false
		}
		if !walkColumns(c.ChildColumns, depth+1, fn) {
			return false
		}
	}
	return true
}

// Columns flattens the tree into pre-order.
func Columns(l Layout) []Column {
	var out []Column
	Walk(l, func(c Column, _ int) bool {
		out = append(out, c)
		return true
	})
	return out
}

// Components flattens every column-owned component into pre-order. Nested
// component children are not included.
func Components(l Layout) []Component {
	var out []Component
	Walk(l, func(c Column, _ int) bool {
		out = append(out, c.Components...)
		return true
	})
	return out
}

// CountColumns returns the number of columns at any depth.
func CountColumns(l Layout) int {
	n := 0
	Walk(l, func(Column, int) bool { n++; return true })
	return n
}

// CountComponents returns the number of column-owned components at any
// depth.
func CountComponents(l Layout) int {
	n := 0
	Walk(l, func(c Column, _ int) bool { n += len(c.Components); return true })
	return n
}

// SiblingsOf returns the sibling list a column belongs to and its index in
// that list. The returned slice aliases l and must not be modified.
func SiblingsOf(l Layout, columnID string) ([]Column, int, bool) {
	return siblingsIn(l.Columns, columnID)
}

func siblingsIn(cols []Column, id string) ([]Column, int, bool) {
	for i, c := range cols {
		if c.ID == id {
			return cols, i, true
		}
	}
	for _, c := range cols {
		if s, i, ok := siblingsIn(c.ChildColumns, id); ok {
			return s, i, true
		}
	}
	return nil, -1, false
}
