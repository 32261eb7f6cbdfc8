package observability

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes editor, generate and cache events as debug records to a
// charm logger. Store events go through StoreLog, since both EditorHooks and
// StoreHooks declare OnLoad.
type LogHooks struct {
	Logger *log.Logger
}

// UseLogger registers LogHooks for all hook kinds.
func UseLogger(l *log.Logger) {
	h := LogHooks{Logger: l}
	SetEditorHooks(h)
	SetGenerateHooks(h)
	SetCacheHooks(h)
	SetStoreHooks(StoreLog{Logger: l})
}

func (h LogHooks) OnApply(_ context.Context, op string, applied bool, d time.Duration, err error) {
	h.Logger.Debug("apply", "op", op, "applied", applied, "took", d, "err", err)
}

func (h LogHooks) OnLoad(_ context.Context, source string) {
	h.Logger.Debug("layout replaced", "source", source)
}

func (h LogHooks) OnGenerateStart(_ context.Context, formats []string) {
	h.Logger.Debug("generate", "formats", strings.Join(formats, ","))
}

func (h LogHooks) OnGenerateComplete(_ context.Context, formats []string, size int, d time.Duration, err error) {
	h.Logger.Debug("generated", "formats", strings.Join(formats, ","), "bytes", size, "took", d, "err", err)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "format", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "format", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "format", keyType, "bytes", size)
}

// StoreLog logs store loads and saves. Failures are logged as warnings.
type StoreLog struct {
	Logger *log.Logger
}

func (s StoreLog) OnLoad(_ context.Context, backend, key string, d time.Duration, err error) {
	s.event("store load", err, "backend", backend, "key", key, "took", d)
}

func (s StoreLog) OnSave(_ context.Context, backend, key string, size int, d time.Duration, err error) {
	s.event("store save", err, "backend", backend, "key", key, "bytes", size, "took", d)
}

func (s StoreLog) event(msg string, err error, keyvals ...any) {
	if err != nil {
		s.Logger.Warn(msg, append(keyvals, "err", err)...)
		return
	}
	s.Logger.Debug(msg, keyvals...)
}

var (
	_ EditorHooks   = LogHooks{}
	_ GenerateHooks = LogHooks{}
	_ CacheHooks    = LogHooks{}
	_ StoreHooks    = StoreLog{}
)
