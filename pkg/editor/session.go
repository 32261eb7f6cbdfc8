package editor

import (
	"context"

	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/observability"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

// SelectComponent selects a component and the column that owns it. An
// empty id clears the component selection.
func (s *Session) SelectComponent(id string) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		s.sel.ComponentID = ""
		return s.sel, nil
	}
	_, owner, ok := layout.FindComponent(s.layout, id)
	if !ok {
		return s.sel, errors.New(errors.ErrCodeComponentNotFound, "component %q not found", id)
	}
	s.sel = Selection{ComponentID: id, ColumnID: owner}
	return s.sel, nil
}

// SelectColumn selects a column and clears the component selection. An
// empty id clears both.
func (s *Session) SelectColumn(id string) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" && !layout.HasColumn(s.layout, id) {
		return s.sel, errors.New(errors.ErrCodeColumnNotFound, "column %q not found", id)
	}
	s.sel = Selection{ColumnID: id}
	return s.sel, nil
}

// PaletteTarget returns the column a palette add goes to: the selected
// column, else the first root column.
func (s *Session) PaletteTarget() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paletteTarget()
}

func (s *Session) paletteTarget() string {
	if s.sel.ColumnID != "" && layout.HasColumn(s.layout, s.sel.ColumnID) {
		return s.sel.ColumnID
	}
	if len(s.layout.Columns) > 0 {
		return s.layout.Columns[0].ID
	}
	return ""
}

// AddFromPalette adds a component of typ with its default props to the
// palette target.
func (s *Session) AddFromPalette(ctx context.Context, typ string) (Result, error) {
	return s.Apply(ctx, layout.Request{
		Op:       layout.OpAddComponent,
		ColumnID: s.PaletteTarget(),
		Type:     typ,
	})
}

// Replace swaps in a sanitized copy of l, keeping the editing context.
func (s *Session) Replace(ctx context.Context, l layout.Layout) (State, error) {
	return s.load(ctx, "replace", layout.Sanitize(l), nil)
}

// Reset returns to the default layout and clears the editing context.
func (s *Session) Reset(ctx context.Context) (State, error) {
	return s.load(ctx, "reset", layout.Default(), &Context{})
}

// LoadTemplate opens a copy of t's layout for editing.
func (s *Session) LoadTemplate(ctx context.Context, t theme.Template) (State, error) {
	return s.load(ctx, "template", layout.Sanitize(t.Layout), &Context{
		SitePart:     t.SitePart,
		TemplateID:   t.ID,
		TemplateName: t.Name,
	})
}

// CreateNew starts a blank layout for part.
func (s *Session) CreateNew(ctx context.Context, part theme.SitePart) (State, error) {
	if !part.Valid() {
		return s.State(), errors.New(errors.ErrCodeInvalidInput, "unknown site part %q", part)
	}
	return s.load(ctx, "new", layout.Default(), &Context{SitePart: part})
}

// Bind records that the current layout was saved as t, without touching
// the layout.
func (s *Session) Bind(ctx context.Context, t theme.Template) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = Context{SitePart: t.SitePart, TemplateID: t.ID, TemplateName: t.Name}
	return s.state(), s.changed(ctx)
}

func (s *Session) load(ctx context.Context, source string, l layout.Layout, c *Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout = l
	s.sel = Selection{}
	if c != nil {
		s.ctx = *c
	}
	observability.Editor().OnLoad(ctx, source)
	s.logger.Debug("loaded layout", "source", source, "layout", s.layout.String())
	return s.state(), s.changed(ctx)
}
