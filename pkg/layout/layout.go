package layout

import (
	"fmt"
	"strconv"
)

// Grid bounds for column widths.
const (
	MinWidth  = 1
	MaxWidth  = 12
	GridUnits = 12
)

// DefaultContainerWidth is the container width of a fresh layout.
const DefaultContainerWidth = "auto"

// Props is the open property bag of a component. Its shape depends on the
// component type and is never validated here; missing keys fall back to
// registry defaults at render time.
type Props map[string]any

// Component is one configured UI element.
type Component struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Props    Props       `json:"props"`
	Children []Component `json:"children,omitempty"`
}

// Column is a sizing and alignment container. Columns own their components
// and child columns exclusively; ParentID is a back-reference only.
type Column struct {
	ID           string      `json:"id"`
	Width        int         `json:"width"`
	Orientation  Orientation `json:"orientation"`
	Components   []Component `json:"components"`
	ChildColumns []Column    `json:"childColumns"`
	ParentID     string      `json:"parentId,omitempty"`
	FlexLayout   FlexLayout  `json:"flexLayout"`
	Gap          Gap         `json:"gap"`
}

// IsHorizontal reports whether the column takes part in width
// renormalization.
func (c Column) IsHorizontal() bool { return c.Orientation == Horizontal }

// Layout is the root of a page: the ordered root columns and the container
// width (a CSS length or "auto", stored verbatim).
type Layout struct {
	Columns        []Column `json:"columns"`
	ContainerWidth string   `json:"containerWidth"`
}

// Default returns the layout a new page starts from: a single full-width
// horizontal root column.
func Default() Layout {
	return Layout{
		Columns:        []Column{newColumn("column-1", Horizontal, "")},
		ContainerWidth: DefaultContainerWidth,
	}
}

// ClampWidth clamps w into [MinWidth, MaxWidth].
func ClampWidth(w int) int {
	return min(max(w, MinWidth), MaxWidth)
}

// EvenWidth returns the renormalized width of each member of a horizontal
// group of n columns. Integer division may leave part of the grid unused.
func EvenWidth(n int) int {
	if n <= 0 {
		return MaxWidth
	}
	return ClampWidth(GridUnits / n)
}

// WidthClass returns the utility class for a grid width: "w-N/12" for 1-11
// and "w-full" for 12. Widths outside the grid also map to "w-full".
func WidthClass(w int) string {
	if w < MinWidth || w >= MaxWidth {
		return "w-full"
	}
	return "w-" + strconv.Itoa(w) + "/12"
}

// String returns a short description used in logs.
func (l Layout) String() string {
	return fmt.Sprintf("layout(%d columns, %d components, width=%s)",
		CountColumns(l), CountComponents(l), l.ContainerWidth)
}

func newColumn(id string, o Orientation, parentID string) Column {
	return Column{
		ID:           id,
		Width:        MaxWidth,
		Orientation:  o,
		Components:   []Component{},
		ChildColumns: []Column{},
		ParentID:     parentID,
		FlexLayout:   DefaultFlexLayout,
		Gap:          DefaultGap,
	}
}
