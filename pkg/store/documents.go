package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/observability"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

// Documents implements [Store] over a [Backend].
type Documents struct {
	backend Backend
	logger  *log.Logger
}

// New returns a store over b. A nil logger discards.
func New(b Backend, logger *log.Logger) *Documents {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Documents{backend: b, logger: logger}
}

// Backend returns the underlying backend.
func (d *Documents) Backend() Backend { return d.backend }

var now = time.Now

// LoadState implements Store.
func (d *Documents) LoadState(ctx context.Context) (State, error) {
	var st State
	if err := d.get(ctx, StateKey, &st); err != nil {
		if errors.Is(err, ErrCorrupt) {
			d.logger.Warn("saved state is corrupt, starting from the default layout", "backend", d.backend.Name(), "error", err)
			return State{Layout: layout.Default()}, err
		}
		return State{}, err
	}
	st.Layout = layout.Sanitize(st.Layout)
	return st, nil
}

// SaveState implements Store.
func (d *Documents) SaveState(ctx context.Context, st State) error {
	st.SavedAt = now().UTC()
	return d.put(ctx, StateKey, st)
}

// ResetState implements Store.
func (d *Documents) ResetState(ctx context.Context) error {
	if err := d.backend.Delete(ctx, StateKey); err != nil {
		return fmt.Errorf("delete %s: %w", StateKey, err)
	}
	return nil
}

// LoadCatalog implements Store.
func (d *Documents) LoadCatalog(ctx context.Context) (theme.Catalog, error) {
	var c theme.Catalog
	var corrupt error
	for key, dst := range map[string]any{TemplatesKey: &c.Templates, CategoriesKey: &c.Categories} {
		err := d.get(ctx, key, dst)
		switch {
		case err == nil, errors.Is(err, ErrNotFound):
		case errors.Is(err, ErrCorrupt):
			d.logger.Warn("saved catalog is corrupt, ignoring it", "key", key, "error", err)
			corrupt = err
		default:
			return theme.NewCatalog(), err
		}
	}
	if corrupt != nil {
		return theme.NewCatalog(), corrupt
	}
	return c.Normalize(), nil
}

// SaveCatalog implements Store.
func (d *Documents) SaveCatalog(ctx context.Context, c theme.Catalog) error {
	if err := d.put(ctx, TemplatesKey, c.Templates); err != nil {
		return err
	}
	return d.put(ctx, CategoriesKey, c.Categories)
}

// Close implements Store.
func (d *Documents) Close() error { return d.backend.Close() }

func (d *Documents) get(ctx context.Context, key string, dst any) error {
	start := time.Now()
	data, err := d.backend.Get(ctx, key)
	observability.Store().OnLoad(ctx, d.backend.Name(), key, time.Since(start), err)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorrupt, key, err)
	}
	d.logger.Debug("loaded", "backend", d.backend.Name(), "key", key, "bytes", len(data))
	return nil
}

func (d *Documents) put(ctx context.Context, key string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	start := time.Now()
	err := d.backend.Put(ctx, key, buf.Bytes())
	observability.Store().OnSave(ctx, d.backend.Name(), key, buf.Len(), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	d.logger.Debug("saved", "backend", d.backend.Name(), "key", key, "bytes", buf.Len())
	return nil
}

var _ Store = (*Documents)(nil)
