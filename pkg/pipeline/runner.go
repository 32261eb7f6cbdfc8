package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pagesmith/pkg/cache"
	"github.com/matzehuels/pagesmith/pkg/codegen"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/observability"
	"github.com/matzehuels/pagesmith/pkg/registry"
	"github.com/matzehuels/pagesmith/pkg/render/outline"
)

// DefaultTTL is how long artifacts stay cached.
const DefaultTTL = 24 * time.Hour

// Runner exports layouts with caching. It holds no per-export state, so
// one Runner may serve concurrent exports.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Registry *registry.Registry
	TTL      time.Duration

	registryKey string
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer, a nil logger discards and a nil registry uses
// registry.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger, reg *registry.Registry) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if reg == nil {
		reg = registry.Default()
	}
	return &Runner{
		Cache:       c,
		Keyer:       keyer,
		Logger:      logger,
		Registry:    reg,
		TTL:         DefaultTTL,
		registryKey: cache.Hash([]byte(strings.Join(reg.Types(), ","))),
	}
}

// Export renders l in every requested format. Cached artifacts are reused
// unless opts.Refresh is set; cache failures are logged and never fail the
// export.
func (r *Runner) Export(ctx context.Context, l layout.Layout, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	start := time.Now()
	observability.Generate().OnGenerateStart(ctx, opts.Formats)

	res, err := r.export(ctx, l, opts)
	size := 0
	if res != nil {
		for _, a := range res.Artifacts {
			size += len(a)
		}
	}
	observability.Generate().OnGenerateComplete(ctx, opts.Formats, size, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	res.Stats.Duration = time.Since(start)
	r.Logger.Info("exported",
		"formats", opts.Formats,
		"bytes", size,
		"cached", len(res.CacheInfo.Hits),
		"duration", res.Stats.Duration.Round(time.Millisecond))
	return res, nil
}

func (r *Runner) export(ctx context.Context, l layout.Layout, opts Options) (*Result, error) {
	hash, err := cache.LayoutHash(l)
	if err != nil {
		return nil, fmt.Errorf("hash layout: %w", err)
	}
	res := &Result{
		Hash:      hash,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Stats:     Stats{Columns: layout.CountColumns(l), Components: layout.CountComponents(l)},
	}

	var dot string
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := r.Keyer.ArtifactKey(hash, r.keyOpts(format, opts))
		if !opts.Refresh {
			if data, ok := r.cached(ctx, key, format); ok {
				res.Artifacts[format] = data
				res.CacheInfo.Hits = append(res.CacheInfo.Hits, format)
				if format == FormatTSX {
					r.reportUnknown(res, codegen.UnknownTypes(l, r.Registry))
				}
				continue
			}
		}

		var data []byte
		switch format {
		case FormatTSX:
			out := codegen.Run(l, r.Registry)
			data = []byte(out.Code)
			r.reportUnknown(res, out.Unknown)
		case FormatJSON:
			if data, err = layout.Marshal(l); err != nil {
				return nil, fmt.Errorf("json: %w", err)
			}
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = outline.ToDOT(l, outline.Options{Detailed: opts.Detailed, Registry: r.Registry})
			}
			data = []byte(dot)
			if format == FormatSVG {
				if data, err = outline.RenderSVG(ctx, dot); err != nil {
					return nil, fmt.Errorf("svg: %w", err)
				}
			}
		}
		res.Artifacts[format] = data
		r.store(ctx, key, format, data)
	}
	return res, nil
}

func (r *Runner) reportUnknown(res *Result, types []string) {
	res.Unknown = types
	if len(types) > 0 {
		r.Logger.Warn("unknown component types rendered as placeholders", "types", types)
	}
}

func (r *Runner) keyOpts(format string, opts Options) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Registry: r.registryKey}
	if format == FormatDOT || format == FormatSVG {
		k.Detailed = opts.Detailed
	}
	return k
}

func (r *Runner) cached(ctx context.Context, key, format string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "format", format, "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, format)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, format)
	r.Logger.Debug("cache hit", "format", format)
	return data, true
}

func (r *Runner) store(ctx context.Context, key, format string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "format", format, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, format, len(data))
}

// Code is a shortcut for exporting only the generated component.
func (r *Runner) Code(ctx context.Context, l layout.Layout) (string, error) {
	res, err := r.Export(ctx, l, Options{Formats: []string{FormatTSX}})
	if err != nil {
		return "", err
	}
	return string(res.Artifacts[FormatTSX]), nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
