package sizecalc

import (
	"github.com/matzehuels/notifstack/pkg/lockstate"
	"github.com/matzehuels/notifstack/pkg/stack"
)

// Step is the cost breakdown of one eligible row.
type Step struct {
	RowID        string  `json:"row_id"`
	Section      string  `json:"section,omitempty"`
	VisibleIndex int     `json:"visible_index"`
	Sticky       bool    `json:"sticky,omitempty"`
	Content      float64 `json:"content"`
	Separator    float64 `json:"separator"`
	Cumulative   float64 `json:"cumulative"`
	ShelfCost    float64 `json:"shelf_cost"`
	Accepted     bool    `json:"accepted"`
}

// Plan explains one ComputeMaxCount/ComputeHeight evaluation row by row.
// Steps cover every eligible row; rows after the first rejection are listed
// with Accepted false and their costs as if the scan had continued.
type Plan struct {
	Steps        []Step  `json:"steps"`
	Count        int     `json:"count"`
	Height       float64 `json:"height"`
	Eligible     int     `json:"eligible"`
	Skipped      int     `json:"skipped"`
	OnLockscreen bool    `json:"on_lockscreen"`
	Budget       Budget  `json:"budget"`
}

// Truncated reports whether some eligible rows did not fit.
func (p Plan) Truncated() bool { return p.Count < p.Eligible }

// Plan evaluates the stack once and records every step. Count and Height
// equal what ComputeMaxCount and ComputeHeight return for the same inputs.
func (c *Calculator) Plan(s stack.Stack, b Budget, lock lockstate.Signals) Plan {
	mustBudget(b)
	mustLock(lock)
	s = bindLock(s, lock)

	rows := stack.Eligible(s)
	p := Plan{
		Steps:        make([]Step, 0, len(rows)),
		Eligible:     len(rows),
		Skipped:      s.RowCount() - len(rows),
		OnLockscreen: lock.OnLockscreen(),
		Budget:       b,
	}

	var (
		stopped bool
		height  float64
		last    stack.Item
	)
	c.walk(s, rows, p.OnLockscreen, func(st step) bool {
		accepted := !stopped && c.fits(s, st, b)
		if accepted {
			p.Count++
			height = st.cumulative
			last = st.row
		} else {
			stopped = true
		}
		p.Steps = append(p.Steps, Step{
			RowID:        st.row.ID,
			Section:      st.row.Section,
			VisibleIndex: st.visibleIndex,
			Sticky:       st.row.Sticky,
			Content:      st.content,
			Separator:    st.separator,
			Cumulative:   st.cumulative,
			ShelfCost:    c.shelfCost(s, st.row, st.visibleIndex+1, b.ShelfHeight),
			Accepted:     accepted,
		})
		return true
	})
	p.Height = height + c.shelfCost(s, last, p.Count, b.ShelfHeight)
	return p
}
