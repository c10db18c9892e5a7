// Package sizecalc computes how many notification rows fit on screen and how
// tall the resulting stack is.
//
// # Overview
//
// Given a [stack.Stack] snapshot, a [Budget] and a lock-state sample, the
// [Calculator] answers two questions for one layout pass:
//
//   - [Calculator.ComputeMaxCount]: the largest k such that the first k
//     eligible rows plus the trailing shelf fit in the budget.
//   - [Calculator.ComputeHeight]: the exact height of k rows plus the shelf.
//
// Hosts call the first to decide which rows to show and the second to report
// the stack height to the enclosing scroll container. Both replay the same
// per-row cost function, so the count and the height always agree.
//
// # Row Sizing
//
// On the lock screen (status bar in keyguard, shade not being dragged) a row
// contributes its minimal height. Everywhere else, and always for sticky
// rows, it contributes its intrinsic height. See [Calculator.SpaceNeeded].
//
// # Separators
//
// The first eligible row pays nothing extra. Every later row pays the divider
// height plus the stack's gap between it and the row above. The shelf pays
// the same separator against the last included row, then its own height.
// When no row fits the shelf still pays the divider, but there is no row
// above it to take a gap from.
//
// # Shelf Height
//
// The shelf height in [Budget] is opaque. Some callers fold an extra divider
// into it before calling; the calculator never assumes either way.
//
// # Packing
//
// ComputeMaxCount is a greedy prefix scan. Row i is accepted when the running
// total fits the notifications budget and the running total plus the shelf
// cost fits the combined notifications + shelf budget. The scan stops at the
// first rejected row.
//
// A zero budget yields zero rows. An unbounded budget (math.MaxFloat64 or
// +Inf) yields every eligible row; callers supply realistic budgets.
//
// # Malformed Input
//
// Negative or NaN heights and budgets, a fraction outside [0, 1], a negative
// gap and a count past the end of the stack are programming errors. The
// calculator panics with an [errors.Error] coded CONTRACT_VIOLATION rather
// than clamping.
//
// # Usage
//
//	calc := sizecalc.New(sizecalc.WithResources(dimens.Defaults()))
//	lock := lockstate.Query(statusBar, transitions)
//	n := calc.ComputeMaxCount(l, sizecalc.Budget{
//	    Notifications: 900,
//	    Shelf:         64,
//	    ShelfHeight:   32,
//	}, lock)
//	h := calc.ComputeHeight(l, n, 32, lock)
//
// [errors.Error]: github.com/matzehuels/notifstack/pkg/errors
package sizecalc
