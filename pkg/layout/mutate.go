package layout

// AddComponent appends a new component of the given type to a column's
// component list and returns the new layout and the new component's id.
// props is shallow-copied; a nil bag becomes an empty one.
//
// If columnID does not resolve, l is returned unchanged with an empty id.
func AddComponent(l Layout, columnID, typ string, props Props) (Layout, string) {
	out := l.Clone()
	col := findColumnPtr(out.Columns, columnID)
	if col == nil {
		return l, ""
	}
	comp := Component{
		ID:    newID(ComponentPrefix),
		Type:  typ,
		Props: shallowCopy(props),
	}
	col.Components = append(col.Components, comp)
	return out, comp.ID
}

// UpdateComponent merges patch into the component's props. Patch values
// replace same-named keys wholesale; nested objects are not merged key by
// key.
func UpdateComponent(l Layout, componentID, columnID string, patch Props) Layout {
	out := l.Clone()
	col := findColumnPtr(out.Columns, columnID)
	if col == nil {
		return l
	}
	for i := range col.Components {
		c := &col.Components[i]
		if c.ID != componentID {
			continue
		}
		if c.Props == nil {
			c.Props = Props{}
		}
		for k, v := range patch {
			c.Props[k] = cloneValue(v)
		}
		return out
	}
	return l
}

// DeleteComponent removes a component from the given column. Siblings are
// unaffected. Clearing an external selection that pointed at the component
// is the caller's job.
func DeleteComponent(l Layout, componentID, columnID string) Layout {
	out := l.Clone()
	col := findColumnPtr(out.Columns, columnID)
	if col == nil {
		return l
	}
	for i, c := range col.Components {
		if c.ID == componentID {
			col.Components = append(col.Components[:i], col.Components[i+1:]...)
			return out
		}
	}
	return l
}

// AddColumn appends a new column with the given orientation, at the root
// when parentID is empty or as the last child of parentID otherwise, and
// returns the new layout and the new column's id.
//
// A horizontal column renormalizes its horizontal siblings (itself
// included) to floor(12/count). A vertical column is full-width and leaves
// its siblings alone. If parentID does not resolve, l is returned unchanged
// with an empty id.
func AddColumn(l Layout, o Orientation, parentID string) (Layout, string) {
	out := l.Clone()
	list := siblingListPtr(&out, parentID)
	if list == nil {
		return l, ""
	}
	col := newColumn(newID(ColumnPrefix), o, parentID)
	*list = append(*list, col)
	if o == Horizontal {
		renormalize(*list)
	}
	return out, col.ID
}

// DeleteColumn removes a column and its whole subtree, then renormalizes
// the remaining horizontal siblings at that level. Deleting the only root
// column is refused.
func DeleteColumn(l Layout, columnID string) Layout {
	if len(l.Columns) == 1 && l.Columns[0].ID == columnID {
		return l
	}
	out := l.Clone()
	if !deleteColumnIn(&out.Columns, columnID) {
		return l
	}
	return out
}

func deleteColumnIn(cols *[]Column, id string) bool {
	for i, c := range *cols {
		if c.ID == id {
			*cols = append((*cols)[:i], (*cols)[i+1:]...)
			renormalize(*cols)
			return true
		}
	}
	for i := range *cols {
		if deleteColumnIn(&(*cols)[i].ChildColumns, id) {
			return true
		}
	}
	return false
}

// UpdateColumnWidth sets a column's width, clamped to [1,12]. Siblings are
// not renormalized, so a manual split survives until the next structural
// change.
func UpdateColumnWidth(l Layout, columnID string, width int) Layout {
	out := l.Clone()
	col := findColumnPtr(out.Columns, columnID)
	if col == nil {
		return l
	}
	col.Width = ClampWidth(width)
	return out
}

// ColumnUpdate is a partial column update; nil fields are left unchanged.
type ColumnUpdate struct {
	Orientation *Orientation `json:"orientation,omitempty"`
	Width       *int         `json:"width,omitempty"`
	FlexLayout  *FlexLayout  `json:"flexLayout,omitempty"`
	Gap         *Gap         `json:"gap,omitempty"`
}

// IsZero reports whether the update changes nothing.
func (u ColumnUpdate) IsZero() bool {
	return u.Orientation == nil && u.Width == nil && u.FlexLayout == nil && u.Gap == nil
}

// UpdateColumn shallow-merges u onto a column found at any depth. Width is
// clamped. An orientation change does not cascade to child columns and does
// not renormalize siblings.
func UpdateColumn(l Layout, columnID string, u ColumnUpdate) Layout {
	out := l.Clone()
	col := findColumnPtr(out.Columns, columnID)
	if col == nil {
		return l
	}
	if u.Orientation != nil {
		col.Orientation = *u.Orientation
	}
	if u.Width != nil {
		col.Width = ClampWidth(*u.Width)
	}
	if u.FlexLayout != nil {
		col.FlexLayout = *u.FlexLayout
	}
	if u.Gap != nil {
		col.Gap = *u.Gap
	}
	return out
}

// UpdateContainerWidth replaces the container width verbatim.
func UpdateContainerWidth(l Layout, width string) Layout {
	out := l.Clone()
	out.ContainerWidth = width
	return out
}

// MoveComponent removes the component at dragIndex in the source column and
// inserts it at hoverIndex in the target column. With equal column ids this
// is a reorder. Indices are positions at call time; hoverIndex is clamped
// to the target list.
//
// If either column is missing or dragIndex is out of range, l is returned
// unchanged. hoverIndex is clamped to the target list, so a negative index
// inserts at the front.
func MoveComponent(l Layout, dragIndex, hoverIndex int, sourceColumnID, targetColumnID string) Layout {
	out := l.Clone()
	src := findColumnPtr(out.Columns, sourceColumnID)
	dst := findColumnPtr(out.Columns, targetColumnID)
	if src == nil || dst == nil {
		return l
	}
	if dragIndex < 0 || dragIndex >= len(src.Components) {
		return l
	}
	moved := src.Components[dragIndex]
	src.Components = append(src.Components[:dragIndex], src.Components[dragIndex+1:]...)
	dst.Components = insertAt(dst.Components, hoverIndex, moved)
	return out
}

// MoveColumn reorders a sibling list: the root list when parentID is empty,
// otherwise parentID's child columns. Horizontal siblings are renormalized
// afterwards.
//
// If the parent is missing or dragIndex is out of range, l is returned
// unchanged.
func MoveColumn(l Layout, dragIndex, hoverIndex int, parentID string) Layout {
	out := l.Clone()
	list := siblingListPtr(&out, parentID)
	if list == nil || dragIndex < 0 || dragIndex >= len(*list) {
		return l
	}
	moved := (*list)[dragIndex]
	rest := append((*list)[:dragIndex], (*list)[dragIndex+1:]...)
	*list = insertAt(rest, hoverIndex, moved)
	renormalize(*list)
	return out
}

// renormalize sets every horizontal column in cols to the even width of the
// horizontal group. Vertical columns are left alone.
func renormalize(cols []Column) {
	n := 0
	for _, c := range cols {
		if c.IsHorizontal() {
			n++
		}
	}
	if n == 0 {
		return
	}
	w := EvenWidth(n)
	for i := range cols {
		if cols[i].IsHorizontal() {
			cols[i].Width = w
		}
	}
}

// insertAt inserts v before index i. Negative indices clamp to 0 and
// indices past the end append.
func insertAt[T any](s []T, i int, v T) []T {
	i = min(max(i, 0), len(s))
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func findColumnPtr(cols []Column, id string) *Column {
	for i := range cols {
		if cols[i].ID == id {
			return &cols[i]
		}
		if c := findColumnPtr(cols[i].ChildColumns, id); c != nil {
			return c
		}
	}
	return nil
}

// siblingListPtr resolves the list a new or moved column lives in: the
// root list for an empty parentID, otherwise the parent's child columns.
func siblingListPtr(l *Layout, parentID string) *[]Column {
	if parentID == "" {
		return &l.Columns
	}
	p := findColumnPtr(l.Columns, parentID)
	if p == nil {
		return nil
	}
	return &p.ChildColumns
}

func shallowCopy(p Props) Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
