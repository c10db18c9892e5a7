package sizecalc

import (
	"math"

	"github.com/matzehuels/notifstack/pkg/dimens"
	"github.com/matzehuels/notifstack/pkg/errors"
	"github.com/matzehuels/notifstack/pkg/lockstate"
	"github.com/matzehuels/notifstack/pkg/stack"
)

// Calculator sizes notification stacks. It holds only the divider height and
// is safe for concurrent use.
type Calculator struct {
	dividerHeight float64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithDividerHeight sets the divider height in pixels.
func WithDividerHeight(px float64) Option {
	return func(c *Calculator) { c.dividerHeight = px }
}

// WithResources takes the divider height from density-scaled resources.
func WithResources(r dimens.Resources) Option {
	return func(c *Calculator) { c.dividerHeight = r.DividerHeight() }
}

// New creates a Calculator. The divider height defaults to the default
// resources at density 1.
func New(opts ...Option) *Calculator {
	c := &Calculator{dividerHeight: dimens.Defaults().DividerHeight()}
	for _, opt := range opts {
		opt(c)
	}
	if err := errors.ValidateHeight("divider height", c.dividerHeight); err != nil {
		errors.Violation("%v", err)
	}
	return c
}

// DividerHeight returns the divider height in pixels.
func (c *Calculator) DividerHeight() float64 { return c.dividerHeight }

// SpaceNeeded returns the height the row itself contributes, excluding any
// separator: MinimalHeight on the lock screen unless the row is sticky,
// IntrinsicHeight otherwise.
func (c *Calculator) SpaceNeeded(row stack.Row, onLockscreen bool) float64 {
	mustRow(row)
	if onLockscreen && !row.Sticky {
		return row.MinimalHeight
	}
	return row.IntrinsicHeight
}

// Cost returns the row's content plus its leading separator when it sits at
// visibleIndex below previous.
func (c *Calculator) Cost(s stack.Stack, row stack.Row, previous stack.Item, visibleIndex int, onLockscreen bool) float64 {
	return c.separator(s, previous, row, visibleIndex) + c.SpaceNeeded(row, onLockscreen)
}

// ComputeMaxCount returns how many eligible rows, taken from the top, fit
// together with the shelf.
func (c *Calculator) ComputeMaxCount(s stack.Stack, b Budget, lock lockstate.Signals) int {
	mustBudget(b)
	mustLock(lock)
	s = bindLock(s, lock)

	count := 0
	c.walk(s, stack.Eligible(s), lock.OnLockscreen(), func(st step) bool {
		if !c.fits(s, st, b) {
			return false
		}
		count++
		return true
	})
	return count
}

// ComputeHeight returns the height of the first count eligible rows plus the
// shelf. count must lie in [0, eligible rows].
func (c *Calculator) ComputeHeight(s stack.Stack, count int, shelfHeight float64, lock lockstate.Signals) float64 {
	mustShelfHeight(shelfHeight)
	mustLock(lock)
	s = bindLock(s, lock)

	rows := stack.Eligible(s)
	if count < 0 || count > len(rows) {
		errors.Violation("count %d out of range [0, %d]", count, len(rows))
	}

	var height float64
	var last stack.Item
	c.walk(s, rows[:count], lock.OnLockscreen(), func(st step) bool {
		height = st.cumulative
		last = st.row
		return true
	})
	return height + c.shelfCost(s, last, count, shelfHeight)
}

// step is one row of the shared cost walk.
type step struct {
	row          stack.Row
	visibleIndex int
	content      float64
	separator    float64
	cumulative   float64
}

// walk replays the per-row cost over rows in order, calling fn until it
// returns false. Both public algorithms go through here.
func (c *Calculator) walk(s stack.Stack, rows []stack.Row, onLockscreen bool, fn func(step) bool) {
	var (
		prev  stack.Item
		total float64
	)
	for i, row := range rows {
		st := step{
			row:          row,
			visibleIndex: i,
			content:      c.SpaceNeeded(row, onLockscreen),
			separator:    c.separator(s, prev, row, i),
		}
		total += st.separator + st.content
		st.cumulative = total
		if !fn(st) {
			return
		}
		prev = row
	}
}

// fits applies the two acceptance checks to a step.
func (c *Calculator) fits(s stack.Stack, st step, b Budget) bool {
	if st.cumulative > b.Notifications {
		return false
	}
	return st.cumulative+c.shelfCost(s, st.row, st.visibleIndex+1, b.ShelfHeight) <= b.Total()
}

// separator is the divider plus gap above current. The first visible item
// has none.
func (c *Calculator) separator(s stack.Stack, previous, current stack.Item, visibleIndex int) float64 {
	if visibleIndex == 0 {
		return 0
	}
	gap := s.Gap(previous, current, visibleIndex)
	if math.IsNaN(gap) || gap < 0 {
		errors.Violation("gap at visible index %d must be >= 0, got %v", visibleIndex, gap)
	}
	return c.dividerHeight + gap
}

// shelfCost is the space the shelf takes when it follows count rows, the
// last of which is last (nil when count is 0). The divider is always paid;
// an empty stack has no gap before the shelf.
func (c *Calculator) shelfCost(s stack.Stack, last stack.Item, count int, shelfHeight float64) float64 {
	if count == 0 {
		return c.dividerHeight + shelfHeight
	}
	return c.separator(s, last, stack.Shelf, count) + shelfHeight
}

// bindLock samples a lock-aware stack at lock, so gaps and row sizing see
// the same signals.
func bindLock(s stack.Stack, lock lockstate.Signals) stack.Stack {
	if la, ok := s.(stack.LockAware); ok {
		return la.WithLock(lock)
	}
	return s
}

func mustRow(row stack.Row) {
	if err := row.Validate(); err != nil {
		errors.Violation("%v", err)
	}
}

func mustLock(lock lockstate.Signals) {
	if err := lock.Validate(); err != nil {
		errors.Violation("%v", err)
	}
}

func mustShelfHeight(h float64) {
	if err := errors.ValidateHeight("shelf height", h); err != nil {
		errors.Violation("%v", err)
	}
}
