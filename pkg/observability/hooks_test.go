package observability

import (
	"context"
	"testing"
	"time"
)

type recordingCalc struct {
	NoopCalcHooks
	started   []string
	completed int
}

func (r *recordingCalc) OnComputeStart(_ context.Context, scenario string, _ int) {
	r.started = append(r.started, scenario)
}

func (r *recordingCalc) OnComputeComplete(context.Context, string, int, float64, time.Duration, error) {
	r.completed++
}

type countingCache struct {
	hits, misses, sets int
}

func (c *countingCache) OnCacheHit(context.Context, string)      { c.hits++ }
func (c *countingCache) OnCacheMiss(context.Context, string)     { c.misses++ }
func (c *countingCache) OnCacheSet(context.Context, string, int) { c.sets++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	if _, ok := Calc().(NoopCalcHooks); !ok {
		t.Errorf("Calc() = %T, want NoopCalcHooks", Calc())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}

	// Must not panic.
	Calc().OnComputeStart(ctx, "s", 3)
	Calc().OnSweepComplete(ctx, "s", 10, true, time.Millisecond)
	HTTP().OnPanic(ctx, "POST", "/v1/count", nil)
}

func TestSetHooks(t *testing.T) {
	t.Cleanup(Reset)
	ctx := context.Background()

	calc := &recordingCalc{}
	SetCalcHooks(calc)
	Calc().OnComputeStart(ctx, "lock screen", 4)
	Calc().OnComputeComplete(ctx, "lock screen", 2, 300, time.Millisecond, nil)
	if len(calc.started) != 1 || calc.started[0] != "lock screen" || calc.completed != 1 {
		t.Errorf("recorded %+v", calc)
	}

	cache := &countingCache{}
	SetCacheHooks(cache)
	Cache().OnCacheMiss(ctx, "result")
	Cache().OnCacheSet(ctx, "result", 120)
	Cache().OnCacheHit(ctx, "result")
	if cache.hits != 1 || cache.misses != 1 || cache.sets != 1 {
		t.Errorf("cache hooks = %+v", cache)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	calc := &recordingCalc{}
	SetCalcHooks(calc)
	SetCalcHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if Calc() != CalcHooks(calc) {
		t.Error("SetCalcHooks(nil) replaced registered hooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("SetHTTPHooks(nil) should keep the no-op default")
	}
}
