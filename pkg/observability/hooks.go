// Package observability provides hooks for metrics, tracing, and logging.
//
// The calculator itself is pure and never reports anything. The runner, the
// caches and the HTTP server emit events through the hooks registered here,
// so a host can attach Prometheus, OpenTelemetry or plain logging without
// notifstack importing any of them.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCalcHooks(&myCalcHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Calc().OnComputeStart(ctx, name, rows)
//	// ... compute ...
//	observability.Calc().OnComputeComplete(ctx, name, count, height, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Calculator Hooks
// =============================================================================

// CalcHooks receives events from runner evaluations.
type CalcHooks interface {
	// OnComputeStart fires before a scenario is evaluated.
	OnComputeStart(ctx context.Context, scenario string, rows int)
	// OnComputeComplete fires after evaluation. err is non-nil when the
	// scenario was rejected.
	OnComputeComplete(ctx context.Context, scenario string, count int, height float64, duration time.Duration, err error)

	// OnSweepComplete fires after a budget sweep.
	OnSweepComplete(ctx context.Context, scenario string, points int, monotonic bool, duration time.Duration)
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
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records the response status and latency.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)

	// OnPanic records a request that panicked and was recovered.
	OnPanic(ctx context.Context, method, route string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCalcHooks is a no-op implementation of CalcHooks.
type NoopCalcHooks struct{}

func (NoopCalcHooks) OnComputeStart(context.Context, string, int) {}
func (NoopCalcHooks) OnComputeComplete(context.Context, string, int, float64, time.Duration, error) {
}
func (NoopCalcHooks) OnSweepComplete(context.Context, string, int, bool, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnPanic(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	calcHooks  CalcHooks  = NoopCalcHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetCalcHooks registers custom calculator hooks.
// This should be called once at application startup.
func SetCalcHooks(h CalcHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		calcHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Calc returns the registered calculator hooks.
func Calc() CalcHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return calcHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	calcHooks = NoopCalcHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
