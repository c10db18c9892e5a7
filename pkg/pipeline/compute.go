package pipeline

import (
	"github.com/matzehuels/notifstack/pkg/cache"
	"github.com/matzehuels/notifstack/pkg/dimens"
	"github.com/matzehuels/notifstack/pkg/errors"
	"github.com/matzehuels/notifstack/pkg/scenario"
)

// Compute evaluates sc without caching. The scenario is validated first;
// a calculator panic that still gets through is returned as an error.
func Compute(sc *scenario.Scenario, res dimens.Resources) (result *Result, err error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	defer func() {
		if rec := recover(); rec != nil {
			result, err = nil, errors.FromPanic(rec)
		}
	}()

	calc := sc.Calculator(res)
	st := sc.Stack(res)

	result = &Result{
		Scenario: sc.Name,
		Hash:     sc.Hash(),
		Plan:     calc.Plan(st, sc.Budget, sc.Lock),
	}
	if sc.Count != nil {
		result.Requested = &Requested{
			Count:  *sc.Count,
			Height: calc.ComputeHeight(st, *sc.Count, sc.Budget.ShelfHeight, sc.Lock),
		}
	}
	result.Stats.Rows = len(sc.Rows)
	return result, nil
}

// ComputeSweep evaluates sc at every notification budget of opts. The
// shelf budget and shelf height stay fixed.
func ComputeSweep(sc *scenario.Scenario, res dimens.Resources, opts SweepOptions) (result *SweepResult, err error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	defer func() {
		if rec := recover(); rec != nil {
			result, err = nil, errors.FromPanic(rec)
		}
	}()

	calc := sc.Calculator(res)
	st := sc.Stack(res)
	n := opts.Points()

	result = &SweepResult{
		Scenario:  sc.Name,
		Hash:      sc.Hash(),
		Options:   opts,
		Points:    make([]SweepPoint, 0, n),
		Monotonic: true,
	}
	b := sc.Budget
	for i := 0; i < n; i++ {
		b.Notifications = opts.From + float64(i)*opts.Step
		count := calc.ComputeMaxCount(st, b, sc.Lock)
		pt := SweepPoint{
			Space:  b.Notifications,
			Count:  count,
			Height: calc.ComputeHeight(st, count, b.ShelfHeight, sc.Lock),
		}
		if i > 0 && result.Monotonic && count < result.Points[i-1].Count {
			result.Monotonic = false
			v := pt
			result.Violation = &v
		}
		result.Points = append(result.Points, pt)
	}
	return result, nil
}

// effectiveDimens returns the divider and gap the scenario will be evaluated
// with, for cache keys.
func effectiveDimens(sc *scenario.Scenario, res dimens.Resources) (divider, gap float64) {
	divider, gap = res.DividerHeight(), res.GapHeight()
	if sc.DividerHeight != nil {
		divider = *sc.DividerHeight
	}
	if sc.GapHeight != nil {
		gap = *sc.GapHeight
	}
	return divider, gap
}

func resultKeyOpts(sc *scenario.Scenario, res dimens.Resources) cache.ResultKeyOpts {
	divider, gap := effectiveDimens(sc, res)
	return cache.ResultKeyOpts{DividerHeight: divider, GapHeight: gap, Count: sc.Count}
}

func sweepKeyOpts(sc *scenario.Scenario, res dimens.Resources, opts SweepOptions) cache.SweepKeyOpts {
	divider, gap := effectiveDimens(sc, res)
	return cache.SweepKeyOpts{DividerHeight: divider, GapHeight: gap, From: opts.From, To: opts.To, Step: opts.Step}
}
