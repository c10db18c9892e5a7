package stack

import (
	"github.com/matzehuels/notifstack/pkg/errors"
	"github.com/matzehuels/notifstack/pkg/lockstate"
)

// List is an in-memory stack snapshot whose gaps follow section boundaries.
type List struct {
	Rows []Row

	// GapHeight separates two adjacent items from different sections.
	GapHeight float64

	// LockscreenGapHeight replaces GapHeight on the keyguard. While the shade
	// is being dragged open the gap moves linearly from this value to
	// GapHeight. Nil means GapHeight everywhere.
	LockscreenGapHeight *float64

	// ShelfSection is the section the shelf belongs to. Empty means the
	// shelf continues the last row's section and never gets a gap.
	ShelfSection string

	// Lock is the lock-state sample Gap interpolates with when the list is
	// queried directly. The calculator rebinds it to the signals of each call.
	Lock lockstate.Signals
}

// LockAware is a Stack whose gaps depend on the lock state.
type LockAware interface {
	Stack
	WithLock(lock lockstate.Signals) Stack
}

var _ LockAware = (*List)(nil)

// WithLock returns a shallow copy of l sampled at lock.
func (l *List) WithLock(lock lockstate.Signals) Stack {
	cp := *l
	cp.Lock = lock
	return &cp
}

// RowCount returns the number of rows, eligible or not.
func (l *List) RowCount() int { return len(l.Rows) }

// RowAt returns the row at index. Out-of-range indexes are a caller bug.
func (l *List) RowAt(index int) Row {
	if index < 0 || index >= len(l.Rows) {
		errors.Violation("row index %d out of range [0, %d)", index, len(l.Rows))
	}
	return l.Rows[index]
}

// Gap returns the section gap when current begins a new section, else 0.
// The first visible item never gets a gap.
func (l *List) Gap(previous, current Item, visibleIndex int) float64 {
	if visibleIndex == 0 || previous == nil || current == nil {
		return 0
	}
	if !l.beginsSection(previous, current) {
		return 0
	}
	return l.gapForLocation()
}

func (l *List) beginsSection(previous, current Item) bool {
	prev, ok := previous.(Row)
	if !ok {
		return false
	}
	if IsShelf(current) {
		return l.ShelfSection != "" && l.ShelfSection != prev.Section
	}
	cur, ok := current.(Row)
	if !ok {
		return false
	}
	return cur.Section != prev.Section
}

func (l *List) gapForLocation() float64 {
	if l.LockscreenGapHeight == nil || l.Lock.State != lockstate.Keyguard {
		return l.GapHeight
	}
	f := l.Lock.FractionToShade
	return *l.LockscreenGapHeight + (l.GapHeight-*l.LockscreenGapHeight)*f
}

// Validate checks every row and the gap heights.
func (l *List) Validate() error {
	if err := errors.ValidateHeight("gap_height", l.GapHeight); err != nil {
		return err
	}
	if l.LockscreenGapHeight != nil {
		if err := errors.ValidateHeight("lockscreen_gap_height", *l.LockscreenGapHeight); err != nil {
			return err
		}
	}
	for _, r := range l.Rows {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return l.Lock.Validate()
}
