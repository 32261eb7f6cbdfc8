package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/pagesmith/pkg/buildinfo"
	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/pipeline"
	"github.com/matzehuels/pagesmith/pkg/registry"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// PaletteEntry is one component type in the palette.
type PaletteEntry struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// PaletteGroup is one palette category.
type PaletteGroup struct {
	Category registry.Category `json:"category"`
	Entries  []PaletteEntry    `json:"entries"`
}

// SaveTemplateRequest is the body of POST /api/templates. An empty
// SitePart uses the part being edited.
type SaveTemplateRequest struct {
	Name     string         `json:"name"`
	SitePart theme.SitePart `json:"sitePart,omitempty"`
	Category string         `json:"category,omitempty"`
}

// SaveTemplateResponse is returned by POST /api/templates.
type SaveTemplateResponse struct {
	Template theme.Template `json:"template"`
	State    editor.State   `json:"state"`
}

type conditionRequest struct {
	Condition string `json:"condition"`
}

type nameRequest struct {
	Name string `json:"name"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}{"ok", buildinfo.Get()})
}

// --- layout ---

func (s *Server) getLayout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.State())
}

func (s *Server) putLayout(w http.ResponseWriter, r *http.Request) {
	l, err := layout.Read(r.Body)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidLayout, err, "invalid layout"))
		return
	}
	st, err := s.session.Replace(r.Context(), l)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) applyOp(w http.ResponseWriter, r *http.Request) {
	var req layout.Request
	if !s.decode(w, r, &req) {
		return
	}
	res, err := s.session.Apply(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) resetLayout(w http.ResponseWriter, r *http.Request) {
	st, err := s.session.Reset(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) exportLayout(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := pipeline.DefaultFormat
	if v := q.Get("format"); v != "" {
		formats := pipeline.ParseFormats(v)
		if len(formats) != 1 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "export one format at a time, got %q", v))
			return
		}
		format = formats[0]
	}
	opts := pipeline.Options{Formats: []string{format}}
	var err error
	if opts.Detailed, err = boolParam(q.Get("detailed")); err != nil {
		s.writeError(w, err)
		return
	}
	if opts.Refresh, err = boolParam(q.Get("refresh")); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Export(r.Context(), s.session.Snapshot(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("ETag", strconv.Quote(res.Hash))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", "Layout"+pipeline.Extension(format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func boolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "invalid boolean %q", v)
	}
	return b, nil
}

func (s *Server) putSelection(w http.ResponseWriter, r *http.Request) {
	var sel editor.Selection
	if !s.decode(w, r, &sel) {
		return
	}
	var (
		got editor.Selection
		err error
	)
	if sel.ComponentID != "" {
		got, err = s.session.SelectComponent(sel.ComponentID)
	} else {
		got, err = s.session.SelectColumn(sel.ColumnID)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, got)
}

// --- palette ---

func (s *Server) getPalette(w http.ResponseWriter, r *http.Request) {
	groups := s.session.Registry().Search(r.URL.Query().Get("q"))
	out := make([]PaletteGroup, 0, len(groups))
	for _, g := range groups {
		pg := PaletteGroup{Category: g.Category, Entries: make([]PaletteEntry, 0, len(g.Definitions))}
		for _, d := range g.Definitions {
			pg.Entries = append(pg.Entries, PaletteEntry{
				Type:        d.Type,
				Label:       d.Label,
				Icon:        d.Icon,
				Description: d.Description,
			})
		}
		out = append(out, pg)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addFromPalette(w http.ResponseWriter, r *http.Request) {
	typ := chi.URLParam(r, "type")
	if !s.session.Registry().Has(typ) {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "unknown component type %q", typ))
		return
	}
	res, err := s.session.AddFromPalette(r.Context(), typ)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// --- site parts and templates ---

func (s *Server) getSiteParts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Catalog().Parts())
}

func (s *Server) createNew(w http.ResponseWriter, r *http.Request) {
	part, ok := theme.ParseSitePart(chi.URLParam(r, "part"))
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "unknown site part %q", chi.URLParam(r, "part")))
		return
	}
	st, err := s.session.CreateNew(r.Context(), part)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	var part theme.SitePart
	if v := r.URL.Query().Get("part"); v != "" {
		p, ok := theme.ParseSitePart(v)
		if !ok {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "unknown site part %q", v))
			return
		}
		part = p
	}
	out := s.Catalog().ForPart(part)
	if out == nil {
		out = []theme.Template{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) saveTemplate(w http.ResponseWriter, r *http.Request) {
	var req SaveTemplateRequest
	if !s.decode(w, r, &req) {
		return
	}
	st := s.session.State()
	part := req.SitePart
	if part == "" {
		part = st.Context.SitePart
	}
	if part == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "no site part given and none is being edited"))
		return
	}
	if p, ok := theme.ParseSitePart(string(part)); ok {
		part = p
	}

	var saved theme.Template
	_, err := s.updateCatalog(r.Context(), func(c theme.Catalog) (theme.Catalog, error) {
		next, t, err := c.Save(req.Name, part, st.Layout, req.Category)
		saved = t
		return next, err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	bound, err := s.session.Bind(r.Context(), saved)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("template saved", "id", saved.ID, "name", saved.Name, "part", saved.SitePart)
	writeJSON(w, http.StatusCreated, SaveTemplateResponse{Template: saved, State: bound})
}

func (s *Server) loadTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, ok := s.Catalog().Find(id)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeTemplateNotFound, "template %q not found", id))
		return
	}
	st, err := s.session.LoadTemplate(r.Context(), t)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) activateTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.respondTemplate(w, r, id, func(c theme.Catalog) (theme.Catalog, error) {
		return c.SetActive(id)
	})
}

func (s *Server) setCondition(w http.ResponseWriter, r *http.Request) {
	var req conditionRequest
	if !s.decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	s.respondTemplate(w, r, id, func(c theme.Catalog) (theme.Catalog, error) {
		return c.UpdateCondition(id, req.Condition)
	})
}

func (s *Server) renameTemplate(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !s.decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	s.respondTemplate(w, r, id, func(c theme.Catalog) (theme.Catalog, error) {
		return c.Rename(id, req.Name)
	})
}

// respondTemplate applies fn and responds with the updated template id.
func (s *Server) respondTemplate(w http.ResponseWriter, r *http.Request, id string, fn func(theme.Catalog) (theme.Catalog, error)) {
	c, err := s.updateCatalog(r.Context(), fn)
	if err != nil {
		s.writeError(w, err)
		return
	}
	t, _ := c.Find(id)
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.updateCatalog(r.Context(), func(c theme.Catalog) (theme.Catalog, error) {
		return c.Delete(id)
	}); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- categories ---

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Catalog().Categories)
}

func (s *Server) addCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !s.decode(w, r, &req) {
		return
	}
	var added theme.Category
	if _, err := s.updateCatalog(r.Context(), func(c theme.Catalog) (theme.Catalog, error) {
		next, cat, err := c.AddCategory(req.Name)
		added = cat
		return next, err
	}); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) renameCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !s.decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	c, err := s.updateCatalog(r.Context(), func(c theme.Catalog) (theme.Catalog, error) {
		return c.RenameCategory(id, req.Name)
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	cat, _ := c.FindCategory(id)
	writeJSON(w, http.StatusOK, cat)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.updateCatalog(r.Context(), func(c theme.Catalog) (theme.Catalog, error) {
		return c.DeleteCategory(id)
	}); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- encoding ---

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}
