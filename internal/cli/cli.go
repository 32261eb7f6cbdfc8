// Package cli implements the pagesmith command-line interface.
//
// Every command works on the persisted editor state: it loads the
// configuration, opens the configured store, resumes the editing session,
// applies its change and lets the session save the result. Consecutive
// invocations therefore edit the same page.
//
// # Commands
//
//   - init: write a default configuration and start a blank page
//   - show: print the current layout tree
//   - column, component, container-width: edit the layout
//   - generate: export TSX, JSON, DOT or SVG
//   - palette: list the component types
//   - template, category: manage the theme builder's saved templates
//   - serve: run the HTTP API
//   - edit: interactive terminal editor
//   - cache: manage the artifact cache
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pagesmith/pkg/cache"
	"github.com/matzehuels/pagesmith/pkg/config"
	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/pipeline"
	"github.com/matzehuels/pagesmith/pkg/store"
	"github.com/matzehuels/pagesmith/pkg/store/mongo"
	"github.com/matzehuels/pagesmith/pkg/store/redis"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	strict     bool
}

// New creates a CLI writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the configuration named by --config, or the default one.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if c.strict {
		cfg.Editor.Strict = true
	}
	return cfg, nil
}

// env is everything a command needs to read or change the page.
type env struct {
	cfg     config.Config
	store   store.Store
	session *editor.Session
}

func (e *env) Close() error { return e.store.Close() }

// open loads the configuration, opens the store and resumes the session.
func (c *CLI) open(ctx context.Context) (*env, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	st, err := openStore(ctx, cfg.Store, c.Logger)
	if err != nil {
		return nil, err
	}
	sess, err := store.Resume(ctx, st, editor.Options{Strict: cfg.Editor.Strict, Logger: c.Logger})
	if err != nil {
		st.Close()
		return nil, err
	}
	c.Logger.Debug("session resumed", "backend", cfg.Store.Backend, "layout", sess.Snapshot().String())
	return &env{cfg: cfg, store: st, session: sess}, nil
}

// openStore opens the configured backend.
func openStore(ctx context.Context, cfg config.StoreConfig, logger *log.Logger) (store.Store, error) {
	var (
		b   store.Backend
		err error
	)
	switch cfg.Backend {
	case config.BackendMemory:
		b = store.NewMemory()
	case config.BackendFile:
		b, err = store.NewFile(cfg.Dir)
	case config.BackendRedis:
		b, err = redis.New(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case config.BackendMongo:
		b, err = mongo.New(ctx, mongo.Config{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	return store.New(b, logger), nil
}

// newRunner creates a pipeline runner with the configured cache.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, noCache bool) *pipeline.Runner {
	var keyer cache.Keyer
	if cfg.Cache.Namespace != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.Namespace+":")
	}
	r := pipeline.NewRunner(c.newCache(ctx, cfg, noCache), keyer, c.Logger, nil)
	r.TTL = cfg.Cache.TTL.Duration
	return r
}

// newCache opens the configured cache. An unreachable cache disables
// caching instead of failing the command.
func (c *CLI) newCache(ctx context.Context, cfg config.Config, noCache bool) cache.Cache {
	if noCache || !cfg.Cache.IsEnabled() {
		return cache.NewNullCache()
	}
	var (
		cc  cache.Cache
		err error
	)
	switch cfg.Cache.Backend {
	case config.BackendRedis:
		cc, err = cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
			Prefix:   cfg.Store.Redis.Prefix + "cache:",
		})
	default:
		cc, err = cache.NewFileCache(cfg.Cache.Dir)
	}
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "backend", cfg.Cache.Backend, "error", err)
		return cache.NewNullCache()
	}
	return cc
}

// updateCatalog loads the catalog, applies fn and saves the result.
func (c *CLI) updateCatalog(ctx context.Context, e *env, fn func(theme.Catalog) (theme.Catalog, error)) (theme.Catalog, error) {
	cat, err := c.loadCatalog(ctx, e)
	if err != nil {
		return cat, err
	}
	next, err := fn(cat)
	if err != nil {
		return cat, err
	}
	if err := e.store.SaveCatalog(ctx, next); err != nil {
		return cat, fmt.Errorf("save catalog: %w", err)
	}
	return next, nil
}

func (c *CLI) loadCatalog(ctx context.Context, e *env) (theme.Catalog, error) {
	cat, err := e.store.LoadCatalog(ctx)
	if errors.Is(err, store.ErrCorrupt) {
		printWarning("Saved templates are corrupt; starting from an empty catalog")
		return cat, nil
	}
	return cat, err
}
