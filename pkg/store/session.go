package store

import (
	"context"
	"errors"

	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/layout"
)

// SaveOnChange returns an [editor.ChangeFunc] that saves every change to s.
func SaveOnChange(s Store) editor.ChangeFunc {
	return func(ctx context.Context, st editor.State) error {
		return s.SaveState(ctx, FromEditor(st))
	}
}

// Resume returns a session continuing the state saved in s and saving
// every change back to it. A missing or corrupt state starts from the
// default layout.
func Resume(ctx context.Context, s Store, opts editor.Options) (*editor.Session, error) {
	opts.OnChange = SaveOnChange(s)
	st, err := s.LoadState(ctx)
	switch {
	case err == nil:
		return editor.Restore(st.Editor(), opts), nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCorrupt):
		return editor.New(layout.Default(), opts), nil
	default:
		return nil, err
	}
}
