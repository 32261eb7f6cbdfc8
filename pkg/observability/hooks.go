// Package observability provides hooks for metrics, tracing, and logging.
//
// Library packages emit events through the registered hooks. The defaults
// are no-ops. UseLogger registers debug logging for every kind of event;
// other implementations are set individually:
//
//	observability.UseLogger(logger)
//	observability.SetStoreHooks(myStoreMetrics{})
//
// Libraries call hooks to emit events:
//
//	observability.Generate().OnGenerateStart(ctx, formats)
//	// ... generate ...
//	observability.Generate().OnGenerateComplete(ctx, formats, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Editor Hooks
// =============================================================================

// EditorHooks receives events from the editor session.
type EditorHooks interface {
	// OnApply records a layout operation. applied is false for no-ops
	// (unresolved ids, refused deletes).
	OnApply(ctx context.Context, op string, applied bool, duration time.Duration, err error)

	// OnLoad records the current layout being replaced wholesale, e.g.
	// from a template ("template"), a reset ("reset") or an import ("replace").
	OnLoad(ctx context.Context, source string)
}

// =============================================================================
// Generate Hooks
// =============================================================================

// GenerateHooks receives events from code and artifact generation.
type GenerateHooks interface {
	OnGenerateStart(ctx context.Context, formats []string)
	OnGenerateComplete(ctx context.Context, formats []string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from persistence backends.
type StoreHooks interface {
	OnLoad(ctx context.Context, backend, key string, duration time.Duration, err error)
	OnSave(ctx context.Context, backend, key string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEditorHooks is a no-op implementation of EditorHooks.
type NoopEditorHooks struct{}

func (NoopEditorHooks) OnApply(context.Context, string, bool, time.Duration, error) {}
func (NoopEditorHooks) OnLoad(context.Context, string)                              {}

// NoopGenerateHooks is a no-op implementation of GenerateHooks.
type NoopGenerateHooks struct{}

func (NoopGenerateHooks) OnGenerateStart(context.Context, []string) {}
func (NoopGenerateHooks) OnGenerateComplete(context.Context, []string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnLoad(context.Context, string, string, time.Duration, error)      {}
func (NoopStoreHooks) OnSave(context.Context, string, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	editorHooks   EditorHooks   = NoopEditorHooks{}
	generateHooks GenerateHooks = NoopGenerateHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	storeHooks    StoreHooks    = NoopStoreHooks{}
	hooksMu       sync.RWMutex
)

// SetEditorHooks registers custom editor hooks. Nil is ignored.
func SetEditorHooks(h EditorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editorHooks = h
	}
}

// SetGenerateHooks registers custom generate hooks. Nil is ignored.
func SetGenerateHooks(h GenerateHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generateHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetStoreHooks registers custom store hooks. Nil is ignored.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Editor returns the registered editor hooks.
func Editor() EditorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editorHooks
}

// Generate returns the registered generate hooks.
func Generate() GenerateHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generateHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editorHooks = NoopEditorHooks{}
	generateHooks = NoopGenerateHooks{}
	cacheHooks = NoopCacheHooks{}
	storeHooks = NoopStoreHooks{}
}
