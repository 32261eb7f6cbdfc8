// Package editor holds the live editing session of a page.
//
// A [Session] owns the one current layout, the selection and the editing
// context (which site part and template is open). Every change goes through
// the session, which serializes read-compute-replace under a single mutex so
// concurrent callers (HTTP handlers, the terminal editor) never lose updates.
// The layout itself is only ever transformed by the pure functions of the
// layout package.
//
// By default a request naming a column or component that does not exist is
// a silent no-op, matching the layout package. With [Options.Strict] set the
// session reports those requests as COLUMN_NOT_FOUND or COMPONENT_NOT_FOUND
// errors instead.
package editor

import (
	"context"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/observability"
	"github.com/matzehuels/pagesmith/pkg/registry"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

// Selection is the selected component and column. Either may be empty.
type Selection struct {
	ComponentID string `json:"componentId,omitempty"`
	ColumnID    string `json:"columnId,omitempty"`
}

// Context names what is being edited: a site part, and the template the
// layout was loaded from or last saved as.
type Context struct {
	SitePart     theme.SitePart `json:"sitePart,omitempty"`
	TemplateID   string         `json:"templateId,omitempty"`
	TemplateName string         `json:"templateName,omitempty"`
}

// State is a consistent copy of the whole session.
type State struct {
	Layout    layout.Layout `json:"layout"`
	Selection Selection     `json:"selection"`
	Context   Context       `json:"context"`
}

// Result is returned by [Session.Apply].
type Result struct {
	Layout    layout.Layout  `json:"layout"`
	Outcome   layout.Outcome `json:"outcome"`
	Selection Selection      `json:"selection"`
}

// ChangeFunc is called with the new state after every change, while the
// session lock is held. A returned error is reported to the caller of the
// change; the change itself is kept.
type ChangeFunc func(ctx context.Context, st State) error

// Options configures a [Session]. The zero value is usable.
type Options struct {
	// Strict turns requests against missing ids into errors.
	Strict bool
	// Registry supplies default props for new components. Nil uses
	// registry.Default().
	Registry *registry.Registry
	// Logger receives debug output. Nil discards.
	Logger *log.Logger
	// OnChange persists changes, if set.
	OnChange ChangeFunc
}

// Session is the editing session. It is safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	layout layout.Layout
	sel    Selection
	ctx    Context

	strict   bool
	reg      *registry.Registry
	logger   *log.Logger
	onChange ChangeFunc
}

// New returns a session editing a sanitized copy of l.
func New(l layout.Layout, opts Options) *Session {
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Session{
		layout:   layout.Sanitize(l),
		strict:   opts.Strict,
		reg:      opts.Registry,
		logger:   opts.Logger,
		onChange: opts.OnChange,
	}
}

// Restore returns a session resuming a persisted state. The selection is
// dropped where it no longer resolves.
func Restore(st State, opts Options) *Session {
	s := New(st.Layout, opts)
	s.ctx = st.Context
	s.sel = s.validSelection(st.Selection)
	return s
}

// Registry returns the registry the session creates components from.
func (s *Session) Registry() *registry.Registry { return s.reg }

// Strict reports whether the session runs in strict mode.
func (s *Session) Strict() bool { return s.strict }

// Snapshot returns a copy of the current layout.
func (s *Session) Snapshot() layout.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.Clone()
}

// State returns a copy of the whole session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) state() State {
	return State{Layout: s.layout.Clone(), Selection: s.sel, Context: s.ctx}
}

// Selection returns the current selection.
func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// Apply runs req against the current layout and replaces it with the
// result. Adding a component without props uses the registry defaults for
// its type. Adds select what they created; deletes drop a selection that
// no longer resolves.
func (s *Session) Apply(ctx context.Context, req layout.Request) (Result, error) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.apply(req)
	observability.Editor().OnApply(ctx, string(req.Op), err == nil && res.Outcome.Applied(), time.Since(start), err)
	if err != nil {
		s.logger.Debug("request rejected", "op", req.Op, "error", err)
		return res, err
	}
	s.logger.Debug("applied", "op", req.Op,
		"created", res.Outcome.CreatedID,
		"unresolved", res.Outcome.Unresolved,
		"refused", res.Outcome.Refused,
		"layout", s.layout.String())

	if !res.Outcome.Applied() {
		return res, nil
	}
	return res, s.changed(ctx)
}

func (s *Session) apply(req layout.Request) (Result, error) {
	if s.strict {
		if err := strictInput(req); err != nil {
			return s.result(layout.Outcome{}), err
		}
	}
	if req.Op == layout.OpAddComponent {
		if err := errors.ValidateComponentType(req.Type); err != nil {
			return s.result(layout.Outcome{}), err
		}
		if s.strict && !s.reg.Has(req.Type) {
			return s.result(layout.Outcome{}), errors.New(errors.ErrCodeInvalidInput, "unknown component type %q", req.Type)
		}
		if req.Props == nil {
			req.Props = s.reg.Defaults(req.Type)
		}
	}

	next, out, err := layout.Apply(s.layout, req)
	if err != nil {
		return s.result(out), errors.Wrap(errors.ErrCodeInvalidOperation, err, "invalid request")
	}
	if s.strict {
		if err := strictError(req, out); err != nil {
			return s.result(out), err
		}
	}
	if !out.Applied() {
		return s.result(out), nil
	}

	s.layout = next
	switch req.Op {
	case layout.OpAddComponent:
		s.sel = Selection{ComponentID: out.CreatedID, ColumnID: req.ColumnID}
	case layout.OpAddColumn:
		s.sel = Selection{ColumnID: out.CreatedID}
	default:
		s.sel = s.validSelection(s.sel)
	}
	return s.result(out), nil
}

func (s *Session) result(out layout.Outcome) Result {
	return Result{Layout: s.layout.Clone(), Outcome: out, Selection: s.sel}
}

// strictError reports the first unresolved id of out, or a refusal.
// strictInput rejects malformed ids and container widths before they reach
// the layout. Outside strict mode both are stored as given.
func strictInput(req layout.Request) error {
	for _, id := range []string{req.ColumnID, req.ComponentID, req.ParentID, req.SourceColumnID, req.TargetColumnID} {
		if id == "" {
			continue
		}
		if err := errors.ValidateID(id); err != nil {
			return err
		}
	}
	if req.Op == layout.OpUpdateContainerWidth {
		return errors.ValidateContainerWidth(req.ContainerWidth)
	}
	return nil
}

func strictError(req layout.Request, out layout.Outcome) error {
	if out.Refused {
		return errors.New(errors.ErrCodeConflict, "cannot delete the last root column")
	}
	if len(out.Unresolved) == 0 {
		return nil
	}
	id := out.Unresolved[0]
	columns := []string{req.ColumnID, req.ParentID, req.SourceColumnID, req.TargetColumnID}
	if slices.Contains(columns, id) {
		return errors.New(errors.ErrCodeColumnNotFound, "column %q not found", id)
	}
	return errors.New(errors.ErrCodeComponentNotFound, "component %q not found in column %q", id, req.ColumnID)
}

// validSelection drops the parts of sel that no longer resolve and moves a
// selected component's column to wherever the component now lives.
func (s *Session) validSelection(sel Selection) Selection {
	if sel.ComponentID != "" {
		if _, owner, ok := layout.FindComponent(s.layout, sel.ComponentID); ok {
			sel.ColumnID = owner
		} else {
			sel.ComponentID = ""
		}
	}
	if sel.ColumnID != "" && !layout.HasColumn(s.layout, sel.ColumnID) {
		sel.ColumnID = ""
	}
	return sel
}

func (s *Session) changed(ctx context.Context) error {
	if s.onChange == nil {
		return nil
	}
	if err := s.onChange(ctx, s.state()); err != nil {
		s.logger.Warn("failed to persist change", "error", err)
		return errors.Wrap(errors.ErrCodeStorage, err, "save state")
	}
	return nil
}
