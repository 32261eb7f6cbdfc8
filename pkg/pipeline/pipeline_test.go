package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagesmith/pkg/cache"
	"github.com/matzehuels/pagesmith/pkg/codegen"
	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/registry"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"tsx", false},
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", true},
		{"TSX", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	assert.Equal(t, []string{"tsx"}, ParseFormats(""))
	assert.Equal(t, []string{"tsx", "svg"}, ParseFormats("TSX, svg,,tsx"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/svg+xml", ContentType(FormatSVG))
	assert.Equal(t, "application/json", ContentType(FormatJSON))
	assert.Equal(t, "application/octet-stream", ContentType("zip"))
	assert.Equal(t, ".tsx", Extension(FormatTSX))
}

func page() layout.Layout {
	l := layout.UpdateContainerWidth(layout.Default(), "960px")
	l, _ = layout.AddComponent(l, "column-1", "button", layout.Props{"text": "Go"})
	return l
}

func TestExport(t *testing.T) {
	r := NewRunner(nil, nil, nil, nil)
	l := page()

	res, err := r.Export(context.Background(), l, Options{Formats: []string{"tsx", "json", "dot"}})
	require.NoError(t, err)

	assert.Equal(t, codegen.Generate(l, registry.Default()), string(res.Artifacts["tsx"]))
	back, err := layout.Unmarshal(res.Artifacts["json"])
	require.NoError(t, err)
	assert.Equal(t, l, back)
	assert.True(t, strings.HasPrefix(string(res.Artifacts["dot"]), "digraph Layout {"))

	hash, _ := cache.LayoutHash(l)
	assert.Equal(t, hash, res.Hash)
	assert.Equal(t, 1, res.Stats.Columns)
	assert.Equal(t, 1, res.Stats.Components)
	assert.Empty(t, res.CacheInfo.Hits)
}

func TestExportDefaultsToTSX(t *testing.T) {
	r := NewRunner(nil, nil, nil, nil)
	res, err := r.Export(context.Background(), layout.Default(), Options{})
	require.NoError(t, err)
	assert.Len(t, res.Artifacts, 1)
	assert.Contains(t, string(res.Artifacts["tsx"]), "export default function GeneratedUI()")
}

func TestExportRejectsFormat(t *testing.T) {
	r := NewRunner(nil, nil, nil, nil)
	_, err := r.Export(context.Background(), layout.Default(), Options{Formats: []string{"pdf"}})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestExportUnknownTypes(t *testing.T) {
	r := NewRunner(nil, nil, nil, nil)
	l, _ := layout.AddComponent(layout.Default(), "column-1", "sparkle-text", nil)
	res, err := r.Export(context.Background(), l, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"sparkle-text"}, res.Unknown)
}

func TestExportUnknownTypesFromCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil, nil, nil)
	l, _ := layout.AddComponent(layout.Default(), "column-1", "sparkle-text", nil)

	first, err := r.Export(ctx, l, Options{})
	require.NoError(t, err)
	require.Empty(t, first.CacheInfo.Hits)

	second, err := r.Export(ctx, l, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{FormatTSX}, second.CacheInfo.Hits)
	assert.Equal(t, first.Unknown, second.Unknown)
	assert.Equal(t, []string{"sparkle-text"}, second.Unknown)
}

func TestExportCaching(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil, nil, nil)
	l := page()
	opts := Options{Formats: []string{"tsx", "json"}}

	first, err := r.Export(ctx, l, opts)
	require.NoError(t, err)
	assert.False(t, first.CacheInfo.AllHit(opts.Formats))

	second, err := r.Export(ctx, l.Clone(), opts)
	require.NoError(t, err)
	assert.True(t, second.CacheInfo.AllHit(opts.Formats))
	assert.Equal(t, first.Artifacts, second.Artifacts)

	refreshed, err := r.Export(ctx, l, Options{Formats: opts.Formats, Refresh: true})
	require.NoError(t, err)
	assert.Empty(t, refreshed.CacheInfo.Hits)

	changed, err := r.Export(ctx, layout.UpdateContainerWidth(l, "auto"), opts)
	require.NoError(t, err)
	assert.Empty(t, changed.CacheInfo.Hits, "a different layout never hits")
}

func TestExportCacheSeparatesRegistries(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewFileCache(t.TempDir())
	l := page()

	_, err := NewRunner(c, nil, nil, nil).Export(ctx, l, Options{})
	require.NoError(t, err)

	custom := registry.New(registry.Definition{
		Type:   "button",
		Render: func(registry.View, registry.Context) string { return "<button />" },
	})
	res, err := NewRunner(c, nil, nil, custom).Export(ctx, l, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.CacheInfo.Hits)
	assert.Contains(t, string(res.Artifacts["tsx"]), "<button />")
}

type failingCache struct{ cache.NullCache }

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, cache.ErrNetwork
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return cache.ErrNetwork
}

func TestExportSurvivesCacheFailures(t *testing.T) {
	r := NewRunner(failingCache{}, nil, nil, nil)
	res, err := r.Export(context.Background(), page(), Options{Formats: []string{"json"}})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Artifacts["json"])
}

func TestExportCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(nil, nil, nil, nil).Export(ctx, page(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCode(t *testing.T) {
	r := NewRunner(nil, nil, nil, nil)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := r.Code(context.Background(), page())
			assert.NoError(t, err)
			assert.Contains(t, code, "<Button>Go</Button>")
		}()
	}
	wg.Wait()
}
