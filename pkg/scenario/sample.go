package scenario

import (
	"github.com/matzehuels/notifstack/pkg/dimens"
	"github.com/matzehuels/notifstack/pkg/lockstate"
	"github.com/matzehuels/notifstack/pkg/sizecalc"
	"github.com/matzehuels/notifstack/pkg/stack"
)

// Sample returns a small lock-screen scenario sized from res: a sticky
// full-screen alert followed by three rows in two sections.
func Sample(res dimens.Resources) *Scenario {
	row := res.RowHeight()
	gap := res.GapHeight()
	divider := res.DividerHeight()
	shelf := res.ShelfHeight()
	lockGap := res.LockscreenGapHeight()

	return &Scenario{
		Name:                "lock screen sample",
		Description:         "sticky alert, two people rows and one alerting row",
		LockscreenGapHeight: &lockGap,
		ShelfSection:        "shelf",
		Budget: sizecalc.Budget{
			Notifications: 3*row + 2*(divider+gap),
			Shelf:         divider + gap + shelf,
			ShelfHeight:   shelf,
		},
		Lock: lockstate.Locked,
		Rows: []stack.Row{
			{ID: "call", Section: "heads_up", MinimalHeight: row / 2, IntrinsicHeight: row * 1.5, Sticky: true},
			{ID: "chat", Section: "people", MinimalHeight: row / 2, IntrinsicHeight: row},
			{ID: "sms", Section: "people", MinimalHeight: row / 2, IntrinsicHeight: row},
			{ID: "mail", Section: "alerting", MinimalHeight: row / 2, IntrinsicHeight: row},
		},
	}
}
