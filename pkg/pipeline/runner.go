package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/notifstack/pkg/cache"
	"github.com/matzehuels/notifstack/pkg/observability"
	"github.com/matzehuels/notifstack/pkg/scenario"
)

// Runner evaluates scenarios with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner holds no results itself. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute validates sc, computes its plan (from cache when possible) and
// renders the requested formats.
func (r *Runner) Execute(ctx context.Context, sc *scenario.Scenario, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	hooks := observability.Calc()
	hooks.OnComputeStart(ctx, sc.Name, len(sc.Rows))

	start := time.Now()
	key := r.Keyer.ResultKey(sc.Hash(), resultKeyOpts(sc, opts.Resources))

	result, hit := r.cachedResult(ctx, key, opts.Refresh)
	if !hit {
		var err error
		result, err = Compute(sc, opts.Resources)
		if err != nil {
			hooks.OnComputeComplete(ctx, sc.Name, 0, 0, time.Since(start), err)
			return nil, err
		}
		r.store(ctx, key, "result", result, opts.TTL)
	}
	result.Scenario = sc.Name
	result.Stats.Rows = len(sc.Rows)
	result.Stats.ComputeTime = time.Since(start)
	result.CacheInfo.ResultHit = hit
	hooks.OnComputeComplete(ctx, sc.Name, result.Plan.Count, result.Plan.Height, result.Stats.ComputeTime, nil)

	r.Logger.Info("computed stack size",
		"scenario", sc.Name,
		"count", result.Plan.Count,
		"eligible", result.Plan.Eligible,
		"height", result.Plan.Height,
		"lockscreen", result.Plan.OnLockscreen,
		"cached", hit,
		"duration", result.Stats.ComputeTime)

	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		artifacts, err := Render(result, opts.Formats)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)
		r.Logger.Debug("rendered outputs", "formats", opts.Formats, "duration", result.Stats.RenderTime)
	}

	return result, nil
}

// Sweep evaluates sc over a range of notification budgets.
func (r *Runner) Sweep(ctx context.Context, sc *scenario.Scenario, opts Options, sweep SweepOptions) (*SweepResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := sweep.Validate(); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	key := r.Keyer.SweepKey(sc.Hash(), sweepKeyOpts(sc, opts.Resources, sweep))

	var result *SweepResult
	hit := false
	if !opts.Refresh {
		if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
			var cached SweepResult
			if json.Unmarshal(data, &cached) == nil {
				result, hit = &cached, true
			}
		}
	}
	r.recordLookup(ctx, "sweep", hit)

	if !hit {
		var err error
		result, err = ComputeSweep(sc, opts.Resources, sweep)
		if err != nil {
			return nil, err
		}
		r.store(ctx, key, "sweep", result, opts.TTL)
	}
	result.Scenario = sc.Name
	result.CacheInfo.ResultHit = hit

	duration := time.Since(start)
	observability.Calc().OnSweepComplete(ctx, sc.Name, len(result.Points), result.Monotonic, duration)

	if !result.Monotonic {
		r.Logger.Warn("count decreased as budget grew",
			"scenario", sc.Name,
			"space", result.Violation.Space,
			"count", result.Violation.Count)
	}
	r.Logger.Info("swept budgets",
		"scenario", sc.Name,
		"points", len(result.Points),
		"monotonic", result.Monotonic,
		"cached", hit,
		"duration", duration)

	return result, nil
}

// cachedResult looks key up unless refresh is set.
func (r *Runner) cachedResult(ctx context.Context, key string, refresh bool) (*Result, bool) {
	if refresh {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	}
	var result Result
	if err != nil || !hit || json.Unmarshal(data, &result) != nil {
		r.recordLookup(ctx, "result", false)
		return nil, false
	}
	r.recordLookup(ctx, "result", true)
	return &result, true
}

func (r *Runner) recordLookup(ctx context.Context, keyType string, hit bool) {
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType)
	}
}

// store writes v under key. Failures are logged, never returned.
func (r *Runner) store(ctx context.Context, key, keyType string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		r.Logger.Debug("result not cacheable", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
