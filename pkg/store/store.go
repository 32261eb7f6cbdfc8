// Package store persists the editor state and the template catalog.
//
// Everything is stored as JSON documents under three well-known keys:
// the editor state ([StateKey]), the templates ([TemplatesKey]) and the
// template categories ([CategoriesKey]). A [Backend] only needs to move
// bytes; [Documents] implements [Store] on top of any backend and owns the
// encoding, repair and instrumentation.
//
// Backends:
//   - [Memory]: process memory, for tests and throwaway sessions
//   - [File]: one JSON file per key in a directory, for the CLI
//   - store/redis: shared storage for multi-instance API deployments
//   - store/mongo: one MongoDB document per key
//
// Data read back is always repaired: layouts are sanitized and catalogs
// normalized, so a hand-edited or older file never breaks the editor.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

// Document keys.
const (
	StateKey      = "react-ui-builder-state"
	TemplatesKey  = "ui-builder-templates"
	CategoriesKey = "ui-builder-categories"
)

// Keys lists every document key.
var Keys = []string{StateKey, TemplatesKey, CategoriesKey}

// Sentinel errors.
var (
	// ErrNotFound is returned when no document is stored under a key.
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when a stored document cannot be decoded.
	// The accompanying value is still usable (a default layout or an
	// empty catalog).
	ErrCorrupt = errors.New("corrupt document")
)

// State is the persisted editor state.
type State struct {
	Layout    layout.Layout    `json:"layout"`
	Selection editor.Selection `json:"selection"`
	Context   editor.Context   `json:"context"`
	SavedAt   time.Time        `json:"savedAt"`
}

// FromEditor converts an editor state for saving.
func FromEditor(st editor.State) State {
	return State{Layout: st.Layout, Selection: st.Selection, Context: st.Context}
}

// Editor converts a loaded state for [editor.Restore].
func (s State) Editor() editor.State {
	return editor.State{Layout: s.Layout, Selection: s.Selection, Context: s.Context}
}

// Store persists editor state and the template catalog.
type Store interface {
	// LoadState returns the saved state, or ErrNotFound if none was saved.
	// A corrupt state yields a default layout together with ErrCorrupt.
	LoadState(ctx context.Context) (State, error)

	// SaveState saves st, stamping SavedAt.
	SaveState(ctx context.Context, st State) error

	// ResetState removes the saved state.
	ResetState(ctx context.Context) error

	// LoadCatalog returns the saved catalog. A missing catalog is an empty
	// one with the general category; a corrupt one is returned empty
	// together with ErrCorrupt.
	LoadCatalog(ctx context.Context) (theme.Catalog, error)

	// SaveCatalog saves c.
	SaveCatalog(ctx context.Context, c theme.Catalog) error

	// Close releases the backend.
	Close() error
}

// Backend moves raw documents.
type Backend interface {
	// Name identifies the backend in logs and metrics.
	Name() string
	// Get returns the document under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the document under key.
	Put(ctx context.Context, key string, data []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
