package layout

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// stubIDs makes generated ids sequential ("column-a1", "component-a2", ...)
// for the duration of the test.
func stubIDs(t *testing.T) {
	t.Helper()
	orig := newID
	n := 0
	newID = func(prefix string) string {
		n++
		return fmt.Sprintf("%s-a%d", prefix, n)
	}
	t.Cleanup(func() { newID = orig })
}

var equateEmpty = cmpopts.EquateEmpty()

func assertLayout(t *testing.T, want, got Layout) {
	t.Helper()
	if diff := cmp.Diff(want, got, equateEmpty); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func widths(cols []Column) []int {
	out := make([]int, len(cols))
	for i, c := range cols {
		out[i] = c.Width
	}
	return out
}

func ids[T Column | Component](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		switch v := any(it).(type) {
		case Column:
			out[i] = v.ID
		case Component:
			out[i] = v.ID
		}
	}
	return out
}

// threeColumns returns a root with three horizontal columns, the first of
// which holds two components.
func threeColumns() Layout {
	l := Default()
	l.Columns[0].Width = 4
	l.Columns[0].Components = []Component{
		{ID: "component-x", Type: "button", Props: Props{"text": "A"}},
		{ID: "component-y", Type: "text", Props: Props{"text": "B"}},
	}
	c2 := newColumn("column-2", Horizontal, "")
	c2.Width = 4
	c3 := newColumn("column-3", Horizontal, "")
	c3.Width = 4
	l.Columns = append(l.Columns, c2, c3)
	return l
}
