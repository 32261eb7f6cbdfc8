package layout

// Clone returns a deep copy of l. Props values are copied recursively for
// the JSON-shaped types (maps, slices); other values are shared, which is
// safe because nothing in this package writes through them.
func (l Layout) Clone() Layout {
	return Layout{
		Columns:        cloneColumns(l.Columns),
		ContainerWidth: l.ContainerWidth,
	}
}

// Clone returns a deep copy of c.
func (c Column) Clone() Column {
	out := c
	out.Components = cloneComponents(c.Components)
	out.ChildColumns = cloneColumns(c.ChildColumns)
	return out
}

// Clone returns a deep copy of c.
func (c Component) Clone() Component {
	out := c
	out.Props = c.Props.Clone()
	if c.Children != nil {
		out.Children = cloneComponents(c.Children)
	}
	return out
}

// Clone returns a deep copy of p.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneColumns(cols []Column) []Column {
	out := make([]Column, len(cols))
	for i, c := range cols {
		out[i] = c.Clone()
	}
	return out
}

func cloneComponents(comps []Component) []Component {
	out := make([]Component, len(comps))
	for i, c := range comps {
		out[i] = c.Clone()
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case Props:
		return t.Clone()
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	case []map[string]any:
		s := make([]map[string]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e).(map[string]any)
		}
		return s
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
