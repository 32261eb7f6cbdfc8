package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns is returned by [Validate] when the root has no columns.
	ErrNoColumns = errors.New("layout has no root columns")

	// ErrDuplicateID is returned by [Validate] when two nodes share an id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrEmptyID is returned by [Validate] when a node has no id.
	ErrEmptyID = errors.New("empty id")

	// ErrWidthOutOfRange is returned by [Validate] for widths outside [1,12].
	ErrWidthOutOfRange = errors.New("column width out of range")

	// ErrParentMismatch is returned by [Validate] when a column's ParentID
	// does not match its position in the tree.
	ErrParentMismatch = errors.New("parent id does not match tree position")

	// ErrInvalidOrientation is returned by [Validate] for unknown orientations.
	ErrInvalidOrientation = errors.New("invalid orientation")
)

// Validate checks the structural invariants of l and returns the first
// violation found, wrapped with the offending id.
func Validate(l Layout) error {
	if len(l.Columns) == 0 {
		return ErrNoColumns
	}
	seen := make(map[string]bool)
	var check func(cols []Column, parent string) error
	check = func(cols []Column, parent string) error {
		for _, c := range cols {
			if c.ID == "" {
				return fmt.Errorf("column: %w", ErrEmptyID)
			}
			if seen[c.ID] {
				return fmt.Errorf("%s: %w", c.ID, ErrDuplicateID)
			}
			seen[c.ID] = true
			if c.Width < MinWidth || c.Width > MaxWidth {
				return fmt.Errorf("%s: %w: %d", c.ID, ErrWidthOutOfRange, c.Width)
			}
			if !c.Orientation.Valid() {
				return fmt.Errorf("%s: %w: %q", c.ID, ErrInvalidOrientation, c.Orientation)
			}
			if c.ParentID != parent {
				return fmt.Errorf("%s: %w", c.ID, ErrParentMismatch)
			}
			if err := checkComponents(c.Components, seen); err != nil {
				return err
			}
			if err := check(c.ChildColumns, c.ID); err != nil {
				return err
			}
		}
		return nil
	}
	return check(l.Columns, "")
}

func checkComponents(comps []Component, seen map[string]bool) error {
	for _, c := range comps {
		if c.ID == "" {
			return fmt.Errorf("component: %w", ErrEmptyID)
		}
		if seen[c.ID] {
			return fmt.Errorf("%s: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = true
		if err := checkComponents(c.Children, seen); err != nil {
			return err
		}
	}
	return nil
}

// Sanitize repairs a possibly malformed layout, typically one decoded from
// persisted data, into one that passes [Validate]:
//
//   - an empty root becomes [Default]
//   - an empty container width becomes "auto"
//   - missing or duplicate ids are replaced with fresh ones
//   - a zero width becomes 12, other widths are clamped
//   - unknown orientations become horizontal
//   - unknown flex keywords and gap tokens fall back to their defaults
//   - nil slices and props become empty
//   - parent ids are rewritten from tree position
//
// l itself is not modified.
func Sanitize(l Layout) Layout {
	if len(l.Columns) == 0 {
		out := Default()
		if l.ContainerWidth != "" {
			out.ContainerWidth = l.ContainerWidth
		}
		return out
	}
	out := l.Clone()
	if out.ContainerWidth == "" {
		out.ContainerWidth = DefaultContainerWidth
	}
	seen := make(map[string]bool)
	sanitizeColumns(out.Columns, "", seen)
	return out
}

func sanitizeColumns(cols []Column, parent string, seen map[string]bool) {
	for i := range cols {
		c := &cols[i]
		c.ID = uniqueID(c.ID, ColumnPrefix, seen)
		c.ParentID = parent
		if c.Width == 0 {
			c.Width = MaxWidth
		}
		c.Width = ClampWidth(c.Width)
		if !c.Orientation.Valid() {
			c.Orientation = Horizontal
		}
		if !c.FlexLayout.Items.Valid() {
			c.FlexLayout.Items = AlignStart
		}
		if !c.FlexLayout.Justify.Valid() {
			c.FlexLayout.Justify = JustifyStart
		}
		if !c.Gap.Valid() {
			c.Gap = DefaultGap
		}
		if c.Components == nil {
			c.Components = []Component{}
		}
		if c.ChildColumns == nil {
			c.ChildColumns = []Column{}
		}
		sanitizeComponents(c.Components, seen)
		sanitizeColumns(c.ChildColumns, c.ID, seen)
	}
}

func sanitizeComponents(comps []Component, seen map[string]bool) {
	for i := range comps {
		c := &comps[i]
		c.ID = uniqueID(c.ID, ComponentPrefix, seen)
		if c.Props == nil {
			c.Props = Props{}
		}
		sanitizeComponents(c.Children, seen)
	}
}

func uniqueID(id, prefix string, seen map[string]bool) string {
	if id == "" || seen[id] {
		id = newID(prefix)
	}
	seen[id] = true
	return id
}
