package layout

import "fmt"

// Op names a layout operation in its tagged form.
type Op string

// Supported operations.
const (
	OpAddComponent         Op = "addComponent"
	OpUpdateComponent      Op = "updateComponent"
	OpDeleteComponent      Op = "deleteComponent"
	OpMoveComponent        Op = "moveComponent"
	OpAddColumn            Op = "addColumn"
	OpDeleteColumn         Op = "deleteColumn"
	OpUpdateColumnWidth    Op = "updateColumnWidth"
	OpUpdateColumn         Op = "updateColumn"
	OpMoveColumn           Op = "moveColumn"
	OpUpdateContainerWidth Op = "updateContainerWidth"
)

// Ops lists every supported operation.
var Ops = []Op{
	OpAddComponent, OpUpdateComponent, OpDeleteComponent, OpMoveComponent,
	OpAddColumn, OpDeleteColumn, OpUpdateColumnWidth, OpUpdateColumn,
	OpMoveColumn, OpUpdateContainerWidth,
}

// Request is the tagged form of a layout operation. Only the fields the
// operation reads need to be set.
type Request struct {
	Op Op `json:"op"`

	ColumnID    string `json:"columnId,omitempty"`
	ComponentID string `json:"componentId,omitempty"`
	ParentID    string `json:"parentId,omitempty"`

	Type  string `json:"type,omitempty"`
	Props Props  `json:"props,omitempty"`

	Orientation    Orientation   `json:"orientation,omitempty"`
	Width          int           `json:"width,omitempty"`
	ContainerWidth string        `json:"containerWidth,omitempty"`
	Update         *ColumnUpdate `json:"update,omitempty"`

	DragIndex      int    `json:"dragIndex,omitempty"`
	HoverIndex     int    `json:"hoverIndex,omitempty"`
	SourceColumnID string `json:"sourceColumnId,omitempty"`
	TargetColumnID string `json:"targetColumnId,omitempty"`
}

// Outcome describes what [Apply] did besides producing a layout.
type Outcome struct {
	// CreatedID is the id of the column or component an add created.
	CreatedID string `json:"createdId,omitempty"`
	// Unresolved lists request ids that did not resolve. A non-empty list
	// means the operation was a no-op.
	Unresolved []string `json:"unresolved,omitempty"`
	// Refused is set when the operation was rejected by an invariant
	// (deleting the last root column).
	Refused bool `json:"refused,omitempty"`
}

// Applied reports whether the request took effect.
func (o Outcome) Applied() bool { return len(o.Unresolved) == 0 && !o.Refused }

// Validate checks the request is well formed (known op, required fields).
// It does not look at any layout.
func (r Request) Validate() error {
	switch r.Op {
	case OpAddComponent:
		return require(r, "columnId", r.ColumnID, "type", r.Type)
	case OpUpdateComponent, OpDeleteComponent:
		return require(r, "componentId", r.ComponentID, "columnId", r.ColumnID)
	case OpMoveComponent:
		return require(r, "sourceColumnId", r.SourceColumnID, "targetColumnId", r.TargetColumnID)
	case OpAddColumn:
		if r.Orientation != "" && !r.Orientation.Valid() {
			return fmt.Errorf("%s: invalid orientation %q", r.Op, r.Orientation)
		}
		return nil
	case OpDeleteColumn, OpUpdateColumnWidth:
		return require(r, "columnId", r.ColumnID)
	case OpUpdateColumn:
		if err := require(r, "columnId", r.ColumnID); err != nil {
			return err
		}
		if r.Update == nil {
			return fmt.Errorf("%s: update is required", r.Op)
		}
		if o := r.Update.Orientation; o != nil && !o.Valid() {
			return fmt.Errorf("%s: invalid orientation %q", r.Op, *o)
		}
		return nil
	case OpMoveColumn, OpUpdateContainerWidth:
		return nil
	default:
		return fmt.Errorf("unknown operation %q", r.Op)
	}
}

func require(r Request, kv ...string) error {
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			return fmt.Errorf("%s: %s is required", r.Op, kv[i])
		}
	}
	return nil
}

// Unresolved returns the ids referenced by r that do not exist in l.
func Unresolved(l Layout, r Request) []string {
	var missing []string
	col := func(id string) {
		if id != "" && !HasColumn(l, id) {
			missing = append(missing, id)
		}
	}
	switch r.Op {
	case OpAddComponent, OpDeleteColumn, OpUpdateColumnWidth, OpUpdateColumn:
		col(r.ColumnID)
	case OpUpdateComponent, OpDeleteComponent:
		col(r.ColumnID)
		if len(missing) == 0 && !ownsComponent(l, r.ColumnID, r.ComponentID) {
			missing = append(missing, r.ComponentID)
		}
	case OpMoveComponent:
		col(r.SourceColumnID)
		col(r.TargetColumnID)
	case OpAddColumn, OpMoveColumn:
		col(r.ParentID)
	}
	return missing
}

func ownsComponent(l Layout, columnID, componentID string) bool {
	c, ok := FindColumn(l, columnID)
	if !ok {
		return false
	}
	for _, comp := range c.Components {
		if comp.ID == componentID {
			return true
		}
	}
	return false
}

// Apply runs the operation r names against l. Malformed requests are
// returned as errors; requests against missing ids are no-ops reported in
// the outcome.
func Apply(l Layout, r Request) (Layout, Outcome, error) {
	if err := r.Validate(); err != nil {
		return l, Outcome{}, err
	}
	out := Outcome{Unresolved: Unresolved(l, r)}
	if len(out.Unresolved) > 0 {
		return l, out, nil
	}

	switch r.Op {
	case OpAddComponent:
		l, out.CreatedID = AddComponent(l, r.ColumnID, r.Type, r.Props)
	case OpUpdateComponent:
		l = UpdateComponent(l, r.ComponentID, r.ColumnID, r.Props)
	case OpDeleteComponent:
		l = DeleteComponent(l, r.ComponentID, r.ColumnID)
	case OpMoveComponent:
		l = MoveComponent(l, r.DragIndex, r.HoverIndex, r.SourceColumnID, r.TargetColumnID)
	case OpAddColumn:
		o := r.Orientation
		if o == "" {
			o = Horizontal
		}
		l, out.CreatedID = AddColumn(l, o, r.ParentID)
	case OpDeleteColumn:
		if len(l.Columns) == 1 && l.Columns[0].ID == r.ColumnID {
			out.Refused = true
			return l, out, nil
		}
		l = DeleteColumn(l, r.ColumnID)
	case OpUpdateColumnWidth:
		l = UpdateColumnWidth(l, r.ColumnID, r.Width)
	case OpUpdateColumn:
		l = UpdateColumn(l, r.ColumnID, *r.Update)
	case OpMoveColumn:
		l = MoveColumn(l, r.DragIndex, r.HoverIndex, r.ParentID)
	case OpUpdateContainerWidth:
		l = UpdateContainerWidth(l, r.ContainerWidth)
	}
	return l, out, nil
}
