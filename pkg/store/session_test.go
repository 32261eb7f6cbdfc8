package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

func TestResumeFresh(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemory(), nil)

	sess, err := Resume(ctx, s, editor.Options{})
	require.NoError(t, err)
	assert.Equal(t, layout.Default(), sess.Snapshot())

	_, err = s.LoadState(ctx)
	assert.ErrorIs(t, err, ErrNotFound, "nothing saved until the first change")
}

func TestResumeSavesChanges(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemory(), nil)

	sess, err := Resume(ctx, s, editor.Options{})
	require.NoError(t, err)
	_, err = sess.CreateNew(ctx, theme.SiteFooter)
	require.NoError(t, err)
	res, err := sess.AddFromPalette(ctx, "hero-title")
	require.NoError(t, err)

	saved, err := s.LoadState(ctx)
	require.NoError(t, err)
	assert.True(t, layout.HasComponent(saved.Layout, res.Outcome.CreatedID))
	assert.Equal(t, theme.SiteFooter, saved.Context.SitePart)

	again, err := Resume(ctx, s, editor.Options{})
	require.NoError(t, err)
	assert.Equal(t, sess.Selection(), again.Selection())
	assert.Equal(t, sess.State().Context, again.State().Context)
	assert.Equal(t, sess.Snapshot().String(), again.Snapshot().String())
}

func TestResumeCorrupt(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()
	require.NoError(t, b.Put(ctx, StateKey, []byte("{nope")))

	sess, err := Resume(ctx, New(b, nil), editor.Options{})
	require.NoError(t, err)
	assert.Equal(t, layout.Default(), sess.Snapshot())
}
