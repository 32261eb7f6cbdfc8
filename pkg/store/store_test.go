package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	f, err := NewFile(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	return map[string]Backend{"memory": NewMemory(), "file": f}
}

func stubNow(t *testing.T) time.Time {
	t.Helper()
	fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })
	return fixed
}

func TestBackendContract(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Get(ctx, "k")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, b.Put(ctx, "k", []byte(`{"a":1}`)))
			require.NoError(t, b.Put(ctx, "k", []byte(`{"a":2}`)))
			data, err := b.Get(ctx, "k")
			require.NoError(t, err)
			assert.JSONEq(t, `{"a":2}`, string(data))

			require.NoError(t, b.Delete(ctx, "k"))
			require.NoError(t, b.Delete(ctx, "k"))
			_, err = b.Get(ctx, "k")
			assert.ErrorIs(t, err, ErrNotFound)
			assert.NoError(t, b.Close())
		})
	}
}

func TestStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	savedAt := stubNow(t)
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(b, nil)

			_, err := s.LoadState(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			l, id := layout.AddComponent(layout.Default(), "column-1", "button", layout.Props{"text": "<Go>"})
			want := State{
				Layout:    l,
				Selection: editor.Selection{ComponentID: id, ColumnID: "column-1"},
				Context:   editor.Context{SitePart: theme.SiteHeader, TemplateID: "template-1"},
			}
			require.NoError(t, s.SaveState(ctx, want))

			got, err := s.LoadState(ctx)
			require.NoError(t, err)
			want.SavedAt = savedAt
			assert.Equal(t, want, got)

			require.NoError(t, s.ResetState(ctx))
			_, err = s.LoadState(ctx)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLoadStateSanitizes(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Put(ctx, StateKey, []byte(`{"layout":{"columns":[{"id":"a","width":40}]}}`)))

	st, err := New(m, nil).LoadState(ctx)
	require.NoError(t, err)
	require.NoError(t, layout.Validate(st.Layout))
	assert.Equal(t, 12, st.Layout.Columns[0].Width)
	assert.Equal(t, layout.DefaultContainerWidth, st.Layout.ContainerWidth)
}

func TestLoadStateCorrupt(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Put(ctx, StateKey, []byte(`{"layout":`)))

	st, err := New(m, nil).LoadState(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Equal(t, layout.Default(), st.Layout)
}

func TestCatalogRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(b, nil)

			empty, err := s.LoadCatalog(ctx)
			require.NoError(t, err)
			assert.Equal(t, theme.NewCatalog(), empty)

			c, blog, err := empty.AddCategory("Blog")
			require.NoError(t, err)
			c, _, err = c.Save("Post", theme.SinglePost, layout.Default(), blog.ID)
			require.NoError(t, err)
			require.NoError(t, s.SaveCatalog(ctx, c))

			got, err := s.LoadCatalog(ctx)
			require.NoError(t, err)
			require.Len(t, got.Templates, 1)
			assert.Equal(t, c.Categories, got.Categories)
			assert.Equal(t, c.Templates[0].ID, got.Templates[0].ID)
			assert.True(t, c.Templates[0].CreatedAt.Equal(got.Templates[0].CreatedAt))
			assert.Equal(t, blog.ID, got.Templates[0].Category)
		})
	}
}

func TestLoadCatalogCorrupt(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Put(ctx, TemplatesKey, []byte(`[{"id":`)))

	c, err := New(m, nil).LoadCatalog(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Equal(t, theme.NewCatalog(), c)
}

func TestFileLayout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)
	s := New(f, nil)
	require.NoError(t, s.SaveState(ctx, State{Layout: layout.Default()}))

	data, err := os.ReadFile(filepath.Join(dir, StateKey+".json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"containerWidth":"auto"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")

	_, err = NewFile("")
	assert.Error(t, err)
}

func TestEditorConversion(t *testing.T) {
	st := editor.State{
		Layout:    layout.Default(),
		Selection: editor.Selection{ColumnID: "column-1"},
		Context:   editor.Context{SitePart: theme.Cart},
	}
	assert.Equal(t, st, FromEditor(st).Editor())
}
