package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/pipeline"
	"github.com/matzehuels/pagesmith/pkg/store"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

type fixture struct {
	srv   *Server
	store *store.Documents
	sess  *editor.Session
}

func newFixture(t *testing.T, opts editor.Options) *fixture {
	t.Helper()
	ctx := context.Background()
	st := store.New(store.NewMemory(), nil)
	sess, err := store.Resume(ctx, st, opts)
	require.NoError(t, err)
	srv, err := New(ctx, sess, st, pipeline.NewRunner(nil, nil, nil, nil), nil)
	require.NoError(t, err)
	return &fixture{srv: srv, store: st, sess: sess}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code errors.Code) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decode[errorResponse](t, rec)
	assert.Equal(t, code, body.Code)
	assert.NotEmpty(t, body.Error)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, editor.Options{})
	rec := f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "build")
}

func TestGetLayout(t *testing.T) {
	f := newFixture(t, editor.Options{})
	rec := f.do(t, http.MethodGet, "/api/layout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[editor.State](t, rec)
	assert.Equal(t, layout.Default(), st.Layout)
}

func TestApplyOpSavesState(t *testing.T) {
	f := newFixture(t, editor.Options{})
	rec := f.do(t, http.MethodPost, "/api/layout/ops", layout.Request{
		Op: layout.OpAddComponent, ColumnID: "column-1", Type: "button",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[editor.Result](t, rec)
	require.NotEmpty(t, res.Outcome.CreatedID)
	assert.Equal(t, res.Outcome.CreatedID, res.Selection.ComponentID)

	saved, err := f.store.LoadState(context.Background())
	require.NoError(t, err)
	assert.True(t, layout.HasComponent(saved.Layout, res.Outcome.CreatedID))
}

func TestApplyOpErrors(t *testing.T) {
	f := newFixture(t, editor.Options{Strict: true})

	rec := f.do(t, http.MethodPost, "/api/layout/ops", `{"op":`)
	requireError(t, rec, http.StatusBadRequest, errors.ErrCodeInvalidInput)

	rec = f.do(t, http.MethodPost, "/api/layout/ops", layout.Request{Op: "explode"})
	requireError(t, rec, http.StatusBadRequest, errors.ErrCodeInvalidOperation)

	rec = f.do(t, http.MethodPost, "/api/layout/ops", layout.Request{Op: layout.OpDeleteColumn, ColumnID: "nope"})
	requireError(t, rec, http.StatusNotFound, errors.ErrCodeColumnNotFound)

	rec = f.do(t, http.MethodPost, "/api/layout/ops", layout.Request{Op: layout.OpDeleteColumn, ColumnID: "column-1"})
	requireError(t, rec, http.StatusConflict, errors.ErrCodeConflict)
}

func TestPutLayoutSanitizes(t *testing.T) {
	f := newFixture(t, editor.Options{})
	rec := f.do(t, http.MethodPut, "/api/layout", `{"columns":[{"id":"a","width":40},{"id":"a"}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	st := decode[editor.State](t, rec)
	assert.NoError(t, layout.Validate(st.Layout))
	assert.Len(t, st.Layout.Columns, 2)

	rec = f.do(t, http.MethodPut, "/api/layout", "not json")
	requireError(t, rec, http.StatusBadRequest, errors.ErrCodeInvalidLayout)
}

func TestResetLayout(t *testing.T) {
	f := newFixture(t, editor.Options{})
	_, err := f.sess.AddFromPalette(context.Background(), "text")
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/api/layout/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, layout.Default(), decode[editor.State](t, rec).Layout)
}

func TestExport(t *testing.T) {
	f := newFixture(t, editor.Options{})
	_, err := f.sess.AddFromPalette(context.Background(), "text")
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/layout/export", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, pipeline.ContentType(pipeline.FormatTSX), rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))
	assert.Contains(t, rec.Body.String(), "export default function")

	rec = f.do(t, http.MethodGet, "/api/layout/export?format=json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	l, err := layout.Unmarshal(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, layout.CountComponents(l))

	rec = f.do(t, http.MethodGet, "/api/layout/export?format=dot&detailed=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "digraph Layout {"))
}

func TestExportErrors(t *testing.T) {
	f := newFixture(t, editor.Options{})
	requireError(t, f.do(t, http.MethodGet, "/api/layout/export?format=png", nil), http.StatusBadRequest, errors.ErrCodeInvalidFormat)
	requireError(t, f.do(t, http.MethodGet, "/api/layout/export?format=tsx,json", nil), http.StatusBadRequest, errors.ErrCodeInvalidFormat)
	requireError(t, f.do(t, http.MethodGet, "/api/layout/export?detailed=maybe", nil), http.StatusBadRequest, errors.ErrCodeInvalidInput)
}

func TestSelection(t *testing.T) {
	f := newFixture(t, editor.Options{})
	res, err := f.sess.AddFromPalette(context.Background(), "text")
	require.NoError(t, err)

	rec := f.do(t, http.MethodPut, "/api/selection", editor.Selection{ColumnID: "column-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, editor.Selection{ColumnID: "column-1"}, decode[editor.Selection](t, rec))

	rec = f.do(t, http.MethodPut, "/api/selection", editor.Selection{ComponentID: res.Outcome.CreatedID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, editor.Selection{ComponentID: res.Outcome.CreatedID, ColumnID: "column-1"}, decode[editor.Selection](t, rec))

	rec = f.do(t, http.MethodPut, "/api/selection", editor.Selection{ComponentID: "ghost"})
	requireError(t, rec, http.StatusNotFound, errors.ErrCodeComponentNotFound)
}

func TestPalette(t *testing.T) {
	f := newFixture(t, editor.Options{})
	rec := f.do(t, http.MethodGet, "/api/palette", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	groups := decode[[]PaletteGroup](t, rec)
	require.NotEmpty(t, groups)
	assert.Equal(t, "Basic", string(groups[0].Category))

	rec = f.do(t, http.MethodGet, "/api/palette?q=button", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var types []string
	for _, g := range decode[[]PaletteGroup](t, rec) {
		for _, e := range g.Entries {
			types = append(types, e.Type)
		}
	}
	assert.Contains(t, types, "button")
	assert.NotContains(t, types, "image")

	rec = f.do(t, http.MethodPost, "/api/palette/button", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	res := decode[editor.Result](t, rec)
	comp, owner, ok := layout.FindComponent(res.Layout, res.Outcome.CreatedID)
	require.True(t, ok)
	assert.Equal(t, "column-1", owner)
	assert.Equal(t, "button", comp.Type)

	requireError(t, f.do(t, http.MethodPost, "/api/palette/sparkles", nil), http.StatusBadRequest, errors.ErrCodeInvalidInput)
}

func TestTemplateLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, editor.Options{})

	rec := f.do(t, http.MethodPost, "/api/siteparts/site-header/new", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	_, err := f.sess.AddFromPalette(ctx, "navbar-menu")
	require.NoError(t, err)

	rec = f.do(t, http.MethodPost, "/api/templates", SaveTemplateRequest{Name: "Main header"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	saved := decode[SaveTemplateResponse](t, rec)
	assert.Equal(t, theme.SiteHeader, saved.Template.SitePart)
	assert.True(t, saved.Template.IsActive)
	assert.Equal(t, "Entire Site", saved.Template.DisplayCondition)
	assert.Equal(t, saved.Template.ID, saved.State.Context.TemplateID)

	cat, err := f.store.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, cat.Templates, 1, "catalog saved")

	rec = f.do(t, http.MethodGet, "/api/templates?part=site-header", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]theme.Template](t, rec), 1)

	rec = f.do(t, http.MethodGet, "/api/templates?part=footer", nil)
	requireError(t, rec, http.StatusBadRequest, errors.ErrCodeInvalidInput)

	rec = f.do(t, http.MethodGet, "/api/siteparts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	parts := decode[[]theme.PartStatus](t, rec)
	require.Len(t, parts, len(theme.SiteParts))
	require.NotNil(t, parts[1].Active)
	assert.Equal(t, saved.Template.ID, parts[1].Active.ID)

	rec = f.do(t, http.MethodPost, "/api/layout/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	id := saved.Template.ID
	rec = f.do(t, http.MethodPost, "/api/templates/"+id+"/load", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[editor.State](t, rec)
	assert.Equal(t, 1, layout.CountComponents(st.Layout))
	assert.Equal(t, "Main header", st.Context.TemplateName)

	rec = f.do(t, http.MethodPut, "/api/templates/"+id+"/condition", conditionRequest{Condition: "Homepage"})
	requireError(t, rec, http.StatusBadRequest, errors.ErrCodeInvalidCondition)

	rec = f.do(t, http.MethodPut, "/api/templates/"+id+"/name", nameRequest{Name: "Header v2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Header v2", decode[theme.Template](t, rec).Name)

	rec = f.do(t, http.MethodDelete, "/api/templates/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, f.srv.Catalog().Templates)

	requireError(t, f.do(t, http.MethodPost, "/api/templates/"+id+"/load", nil), http.StatusNotFound, errors.ErrCodeTemplateNotFound)
	requireError(t, f.do(t, http.MethodPut, "/api/templates/"+id+"/active", nil), http.StatusNotFound, errors.ErrCodeTemplateNotFound)
}

func TestActivateTemplate(t *testing.T) {
	f := newFixture(t, editor.Options{})
	first := decode[SaveTemplateResponse](t, f.do(t, http.MethodPost, "/api/templates", SaveTemplateRequest{Name: "One", SitePart: theme.Cart}))
	second := decode[SaveTemplateResponse](t, f.do(t, http.MethodPost, "/api/templates", SaveTemplateRequest{Name: "Two", SitePart: theme.Cart}))
	require.NotEqual(t, first.Template.ID, second.Template.ID)

	rec := f.do(t, http.MethodPut, "/api/templates/"+first.Template.ID+"/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[theme.Template](t, rec).IsActive)

	active, ok := f.srv.Catalog().ActiveFor(theme.Cart)
	require.True(t, ok)
	assert.Equal(t, first.Template.ID, active.ID)
}

func TestSaveTemplateErrors(t *testing.T) {
	f := newFixture(t, editor.Options{})
	rec := f.do(t, http.MethodPost, "/api/templates", SaveTemplateRequest{Name: "Orphan"})
	requireError(t, rec, http.StatusBadRequest, errors.ErrCodeInvalidInput)

	rec = f.do(t, http.MethodPost, "/api/templates", SaveTemplateRequest{Name: "", SitePart: theme.Homepage})
	requireError(t, rec, http.StatusBadRequest, errors.ErrCodeInvalidInput)

	rec = f.do(t, http.MethodPost, "/api/templates", SaveTemplateRequest{Name: "X", SitePart: theme.Homepage, Category: "nope"})
	requireError(t, rec, http.StatusNotFound, errors.ErrCodeCategoryNotFound)

	assert.Empty(t, f.srv.Catalog().Templates)
}

func TestCategories(t *testing.T) {
	f := newFixture(t, editor.Options{})

	rec := f.do(t, http.MethodPost, "/api/categories", nameRequest{Name: "Seasonal"})
	require.Equal(t, http.StatusCreated, rec.Code)
	cat := decode[theme.Category](t, rec)

	rec = f.do(t, http.MethodPut, "/api/categories/"+cat.ID, nameRequest{Name: "Holidays"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Holidays", decode[theme.Category](t, rec).Name)

	rec = f.do(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]theme.Category](t, rec), 2)

	requireError(t, f.do(t, http.MethodDelete, "/api/categories/"+theme.GeneralCategoryID, nil), http.StatusConflict, errors.ErrCodeConflict)

	rec = f.do(t, http.MethodDelete, "/api/categories/"+cat.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	requireError(t, f.do(t, http.MethodDelete, "/api/categories/"+cat.ID, nil), http.StatusNotFound, errors.ErrCodeCategoryNotFound)
}

type failingBackend struct{ *store.Memory }

func (failingBackend) Put(context.Context, string, []byte) error {
	return stderrors.New("read-only")
}

func TestCatalogNotUpdatedWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	st := store.New(failingBackend{store.NewMemory()}, nil)
	srv, err := New(ctx, editor.New(layout.Default(), editor.Options{}), st, pipeline.NewRunner(nil, nil, nil, nil), nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"name":"Seasonal"}`)
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/categories", body))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Len(t, srv.Catalog().Categories, 1)
}

func TestNotFoundRoute(t *testing.T) {
	f := newFixture(t, editor.Options{})
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/nope", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, f.do(t, http.MethodPatch, "/api/layout", nil).Code)
}
